package repository

import (
	"context"

	"github.com/mavisigorta/backend/internal/model"
)

// Pinger reports whether the content backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ContentRepository reads the site's content files. Every method returns the
// underlying error; deciding what to show instead is up to the caller.
type ContentRepository interface {
	Courses(ctx context.Context) ([]model.Course, error)
	Instructors(ctx context.Context) ([]model.Instructor, error)
	FAQs(ctx context.Context) ([]model.FAQ, error)
	SiteSettings(ctx context.Context) (*model.SiteSettings, error)

	// BlogSlugs returns one slug per post file, sorted, without duplicates.
	BlogSlugs(ctx context.Context) ([]string, error)
	// BlogPost returns ErrNotFound when no file exists for slug.
	BlogPost(ctx context.Context, slug string) (*model.BlogPost, error)

	// LegalDocument returns the Markdown source of legal/<name>.md.
	LegalDocument(ctx context.Context, name string) (string, error)
}
