package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/mavisigorta/backend/internal/markdown"
	"github.com/mavisigorta/backend/internal/model"
	"github.com/mavisigorta/backend/internal/repository"
	"golang.org/x/text/cases"
)

// contentServiceImpl is the production implementation of ContentService.
type contentServiceImpl struct {
	repo repository.ContentRepository
}

// NewContentService creates a ContentService backed by the given repository.
func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentServiceImpl{repo: repo}
}

func (s *contentServiceImpl) Courses(ctx context.Context) []model.Course {
	courses, err := s.repo.Courses(ctx)
	if err != nil {
		slog.Error("content: read courses failed", "error", err)
		return []model.Course{}
	}
	if courses == nil {
		return []model.Course{}
	}
	return courses
}

func (s *contentServiceImpl) CourseByID(ctx context.Context, id string) (model.Course, bool) {
	for _, c := range s.Courses(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

func (s *contentServiceImpl) PopularCourses(ctx context.Context) []model.Course {
	popular := []model.Course{}
	for _, c := range s.Courses(ctx) {
		if c.Popular {
			popular = append(popular, c)
		}
	}
	return popular
}

func (s *contentServiceImpl) Instructors(ctx context.Context) []model.Instructor {
	instructors, err := s.repo.Instructors(ctx)
	if err != nil {
		slog.Error("content: read instructors failed", "error", err)
		return []model.Instructor{}
	}
	if instructors == nil {
		return []model.Instructor{}
	}
	return instructors
}

func (s *contentServiceImpl) InstructorByID(ctx context.Context, id string) (model.Instructor, bool) {
	for _, in := range s.Instructors(ctx) {
		if in.ID == id {
			return in, true
		}
	}
	return model.Instructor{}, false
}

func (s *contentServiceImpl) FAQs(ctx context.Context) []model.FAQ {
	faqs, err := s.repo.FAQs(ctx)
	if err != nil {
		slog.Error("content: read faqs failed", "error", err)
		return []model.FAQ{}
	}
	if faqs == nil {
		return []model.FAQ{}
	}
	return faqs
}

func (s *contentServiceImpl) SiteSettings(ctx context.Context) model.SiteSettings {
	settings, err := s.repo.SiteSettings(ctx)
	if err != nil {
		slog.Error("content: read settings failed, using defaults", "error", err)
		return model.DefaultSiteSettings()
	}
	return *settings
}

func (s *contentServiceImpl) BlogSlugs(ctx context.Context) []string {
	slugs, err := s.repo.BlogSlugs(ctx)
	if err != nil {
		slog.Error("content: read blog directory failed", "error", err)
		return []string{}
	}
	if slugs == nil {
		return []string{}
	}
	return slugs
}

func (s *contentServiceImpl) BlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, bool) {
	post, ok := s.readPost(ctx, slug)
	if !ok {
		return model.BlogPost{}, false
	}
	html, err := markdown.Render(post.Content)
	if err != nil {
		slog.Warn("content: render blog post failed", "slug", slug, "error", err)
	}
	post.HTML = html
	return post, true
}

func (s *contentServiceImpl) readPost(ctx context.Context, slug string) (model.BlogPost, bool) {
	post, err := s.repo.BlogPost(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Warn("content: blog post not found", "slug", slug)
		} else {
			slog.Error("content: read blog post failed", "slug", slug, "error", err)
		}
		return model.BlogPost{}, false
	}
	return *post, true
}

func (s *contentServiceImpl) BlogPosts(ctx context.Context, includeUnpublished bool) []model.BlogPost {
	posts := []model.BlogPost{}
	for _, slug := range s.BlogSlugs(ctx) {
		post, ok := s.readPost(ctx, slug)
		if !ok {
			continue
		}
		if !includeUnpublished && !post.Published {
			continue
		}
		posts = append(posts, post)
	}
	SortPostsByDate(posts)
	return posts
}

func (s *contentServiceImpl) RecentBlogPosts(ctx context.Context, limit int) []model.BlogPost {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	posts := s.BlogPosts(ctx, false)
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

func (s *contentServiceImpl) PostsByCategory(ctx context.Context, category string) []model.BlogPost {
	fold := cases.Fold()
	want := fold.String(category)

	matched := []model.BlogPost{}
	for _, p := range s.BlogPosts(ctx, false) {
		if fold.String(p.Category) == want {
			matched = append(matched, p)
		}
	}
	return matched
}

func (s *contentServiceImpl) PostsByTag(ctx context.Context, tag string) []model.BlogPost {
	fold := cases.Fold()
	want := fold.String(tag)

	matched := []model.BlogPost{}
	for _, p := range s.BlogPosts(ctx, false) {
		if slices.ContainsFunc(p.Tags, func(t string) bool { return fold.String(t) == want }) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (s *contentServiceImpl) Categories(ctx context.Context) []string {
	var values []string
	for _, p := range s.BlogPosts(ctx, false) {
		values = append(values, p.Category)
	}
	return uniqueInOrder(values)
}

func (s *contentServiceImpl) Tags(ctx context.Context) []string {
	var values []string
	for _, p := range s.BlogPosts(ctx, false) {
		values = append(values, p.Tags...)
	}
	return uniqueInOrder(values)
}

func (s *contentServiceImpl) LegalDocument(ctx context.Context, name string) (string, bool) {
	src, err := s.repo.LegalDocument(ctx, name)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Error("content: read legal document failed", "name", name, "error", err)
		}
		return "", false
	}
	html, err := markdown.Render(src)
	if err != nil {
		slog.Error("content: render legal document failed", "name", name, "error", err)
		return "", false
	}
	return html, true
}

// uniqueInOrder drops empty and repeated values, keeping first occurrences.
func uniqueInOrder(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := []string{}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

var postDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePostDate parses a front matter date in any of the accepted layouts.
func ParsePostDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range postDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortPostsByDate orders posts newest first. Posts with unparseable dates go
// after dated ones, compared as strings. Equal dates are ordered by slug.
func SortPostsByDate(posts []model.BlogPost) {
	slices.SortStableFunc(posts, func(a, b model.BlogPost) int {
		ta, okA := ParsePostDate(a.Date)
		tb, okB := ParsePostDate(b.Date)
		switch {
		case okA && okB:
			if c := tb.Compare(ta); c != 0 {
				return c
			}
		case okA:
			return -1
		case okB:
			return 1
		default:
			if c := strings.Compare(b.Date, a.Date); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Slug, b.Slug)
	})
}
