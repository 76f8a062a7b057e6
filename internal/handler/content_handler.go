package handler

import (
	"net/http"
	"strconv"

	"github.com/mavisigorta/backend/internal/model"
	"github.com/mavisigorta/backend/internal/service"
)

// ContentConfig holds configuration for the ContentHandler.
type ContentConfig struct {
	// AllowDrafts lets GET /api/blog?drafts=true list unpublished posts.
	// Only enabled outside production.
	AllowDrafts bool
}

// ContentHandler serves the read-only site content.
type ContentHandler struct {
	content service.ContentService
	cfg     ContentConfig
}

// NewContentHandler creates a ContentHandler with the given service.
func NewContentHandler(content service.ContentService, cfg ContentConfig) *ContentHandler {
	return &ContentHandler{content: content, cfg: cfg}
}

// Settings handles GET /api/settings. Falls back to the built-in defaults.
func (h *ContentHandler) Settings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.SiteSettings(r.Context()))
}

// Courses handles GET /api/courses. ?popular=true narrows to popular courses.
func (h *ContentHandler) Courses(w http.ResponseWriter, r *http.Request) {
	if popular, _ := strconv.ParseBool(r.URL.Query().Get("popular")); popular {
		writeJSON(w, http.StatusOK, h.content.PopularCourses(r.Context()))
		return
	}
	writeJSON(w, http.StatusOK, h.content.Courses(r.Context()))
}

// Course handles GET /api/courses/{id}.
func (h *ContentHandler) Course(w http.ResponseWriter, r *http.Request) {
	course, ok := h.content.CourseByID(r.Context(), r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// Instructors handles GET /api/instructors.
func (h *ContentHandler) Instructors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Instructors(r.Context()))
}

// Instructor handles GET /api/instructors/{id}.
func (h *ContentHandler) Instructor(w http.ResponseWriter, r *http.Request) {
	instructor, ok := h.content.InstructorByID(r.Context(), r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, instructor)
}

// FAQs handles GET /api/faqs.
func (h *ContentHandler) FAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.FAQs(r.Context()))
}

// BlogPosts handles GET /api/blog.
// Query params: category, tag (both case-insensitive, combined with AND),
// limit (positive int, newest first) and drafts (non-production only).
func (h *ContentHandler) BlogPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category, tag := q.Get("category"), q.Get("tag")

	limit := 0
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = n
	}
	drafts, _ := strconv.ParseBool(q.Get("drafts"))
	drafts = drafts && h.cfg.AllowDrafts

	var posts []model.BlogPost
	switch {
	case category != "" && tag != "":
		posts = intersectBySlug(
			h.content.PostsByCategory(r.Context(), category),
			h.content.PostsByTag(r.Context(), tag),
		)
	case category != "":
		posts = h.content.PostsByCategory(r.Context(), category)
	case tag != "":
		posts = h.content.PostsByTag(r.Context(), tag)
	case drafts:
		posts = h.content.BlogPosts(r.Context(), true)
	case limit > 0:
		writeJSON(w, http.StatusOK, h.content.RecentBlogPosts(r.Context(), limit))
		return
	default:
		posts = h.content.BlogPosts(r.Context(), false)
	}

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	writeJSON(w, http.StatusOK, posts)
}

// BlogPost handles GET /api/blog/{slug}. The body is returned rendered.
func (h *ContentHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.content.BlogPostBySlug(r.Context(), r.PathValue("slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// BlogSlugs handles GET /api/blog/slugs.
func (h *ContentHandler) BlogSlugs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.BlogSlugs(r.Context()))
}

// Categories handles GET /api/blog/categories.
func (h *ContentHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Categories(r.Context()))
}

// Tags handles GET /api/blog/tags.
func (h *ContentHandler) Tags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Tags(r.Context()))
}

// intersectBySlug keeps the posts of a that also appear in b, in a's order.
func intersectBySlug(a, b []model.BlogPost) []model.BlogPost {
	inB := make(map[string]bool, len(b))
	for _, p := range b {
		inB[p.Slug] = true
	}
	out := []model.BlogPost{}
	for _, p := range a {
		if inB[p.Slug] {
			out = append(out, p)
		}
	}
	return out
}
