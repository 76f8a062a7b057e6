package service

import (
	"context"

	"github.com/mavisigorta/backend/internal/model"
)

// DefaultRecentLimit is the number of posts RecentBlogPosts returns for a
// non-positive limit.
const DefaultRecentLimit = 3

// ContentService serves site content to handlers. None of its methods fail:
// read errors are logged and replaced with an empty collection, an absent
// result, or the default site settings.
type ContentService interface {
	Courses(ctx context.Context) []model.Course
	// CourseByID returns the first course with the given id.
	CourseByID(ctx context.Context, id string) (model.Course, bool)
	PopularCourses(ctx context.Context) []model.Course

	Instructors(ctx context.Context) []model.Instructor
	InstructorByID(ctx context.Context, id string) (model.Instructor, bool)

	FAQs(ctx context.Context) []model.FAQ
	SiteSettings(ctx context.Context) model.SiteSettings

	BlogSlugs(ctx context.Context) []string
	// BlogPostBySlug returns the post with its body rendered into HTML.
	BlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, bool)
	// BlogPosts returns posts newest first, ties broken by slug.
	BlogPosts(ctx context.Context, includeUnpublished bool) []model.BlogPost
	RecentBlogPosts(ctx context.Context, limit int) []model.BlogPost
	PostsByCategory(ctx context.Context, category string) []model.BlogPost
	PostsByTag(ctx context.Context, tag string) []model.BlogPost
	Categories(ctx context.Context) []string
	Tags(ctx context.Context) []string

	// LegalDocument returns the rendered HTML of a legal page.
	LegalDocument(ctx context.Context, name string) (string, bool)
}
