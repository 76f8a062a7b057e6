package model

// BlogPost is one front-matter file under content/blog.
// Slug comes from the file name; everything else from the front matter,
// except Content which is the body below it.
type BlogPost struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Author    string   `json:"author"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Image     string   `json:"image,omitempty"`
	Excerpt   string   `json:"excerpt"`
	Published bool     `json:"published"`
	Content   string   `json:"content"`

	// Transient: rendered body, only set for single-post reads
	HTML string `json:"html,omitempty"`
}
