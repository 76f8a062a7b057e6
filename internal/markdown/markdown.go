// Package markdown turns blog post files into model.BlogPost values and
// renders Markdown bodies to sanitized HTML. Nothing here touches the
// filesystem.
package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	"github.com/mavisigorta/backend/internal/model"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// postMeta mirrors the front matter block of a post.
type postMeta struct {
	Title     string   `yaml:"title" toml:"title" json:"title"`
	Date      string   `yaml:"date" toml:"date" json:"date"`
	Author    string   `yaml:"author" toml:"author" json:"author"`
	Category  string   `yaml:"category" toml:"category" json:"category"`
	Tags      []string `yaml:"tags" toml:"tags" json:"tags"`
	Image     string   `yaml:"image" toml:"image" json:"image"`
	Excerpt   string   `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	Published *bool    `yaml:"published" toml:"published" json:"published"`
}

// ParsePost splits data into front matter and body and builds the post.
// Files without a front matter block parse to a post with an empty title
// whose Content is the whole file.
func ParsePost(slug string, data []byte) (*model.BlogPost, error) {
	var meta postMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, fmt.Errorf("markdown: front matter of %s: %w", slug, err)
	}

	post := &model.BlogPost{
		Slug:      slug,
		Title:     meta.Title,
		Date:      meta.Date,
		Author:    meta.Author,
		Category:  meta.Category,
		Tags:      meta.Tags,
		Image:     meta.Image,
		Excerpt:   meta.Excerpt,
		Published: true,
		Content:   string(body),
	}
	if meta.Published != nil {
		post.Published = *meta.Published
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post, nil
}

// SlugFromFilename strips a post extension; ok is false for other files.
func SlugFromFilename(name string) (slug string, ok bool) {
	for _, ext := range PostExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext), true
		}
	}
	return "", false
}

// PostExtensions lists the file extensions treated as blog posts, in lookup order.
var PostExtensions = []string{".mdx", ".md"}

var (
	renderer     goldmark.Markdown
	policy       *bluemonday.Policy
	rendererOnce sync.Once
)

func setup() {
	rendererOnce.Do(func() {
		renderer = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		)
		policy = bluemonday.UGCPolicy()
		policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	})
}

// Render converts a Markdown body to HTML and sanitizes the result.
func Render(src string) (string, error) {
	setup()
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markdown: render: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}
