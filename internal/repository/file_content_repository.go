package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/mavisigorta/backend/internal/markdown"
	"github.com/mavisigorta/backend/internal/model"
	"github.com/mavisigorta/backend/internal/storage"
)

// Content file layout, relative to the content root.
const (
	CoursesFile     = "courses.json"
	InstructorsFile = "instructors.json"
	FAQsFile        = "faqs.json"
	SettingsFile    = "settings.json"
	BlogDir         = "blog"
	LegalDir        = "legal"
)

// FileContentRepository implements ContentRepository on top of a storage.Source.
type FileContentRepository struct {
	src storage.Source
}

// NewFileContentRepository creates a FileContentRepository reading from src.
func NewFileContentRepository(src storage.Source) *FileContentRepository {
	return &FileContentRepository{src: src}
}

func (r *FileContentRepository) Courses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.readJSON(ctx, CoursesFile, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *FileContentRepository) Instructors(ctx context.Context) ([]model.Instructor, error) {
	var instructors []model.Instructor
	if err := r.readJSON(ctx, InstructorsFile, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

func (r *FileContentRepository) FAQs(ctx context.Context) ([]model.FAQ, error) {
	var faqs []model.FAQ
	if err := r.readJSON(ctx, FAQsFile, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *FileContentRepository) SiteSettings(ctx context.Context) (*model.SiteSettings, error) {
	var settings *model.SiteSettings
	if err := r.readJSON(ctx, SettingsFile, &settings); err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("parse %s: empty document", SettingsFile)
	}
	return settings, nil
}

func (r *FileContentRepository) BlogSlugs(ctx context.Context) ([]string, error) {
	names, err := r.src.ReadDir(ctx, BlogDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(names))
	slugs := make([]string, 0, len(names))
	for _, name := range names {
		slug, ok := markdown.SlugFromFilename(name)
		if !ok || slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

func (r *FileContentRepository) BlogPost(ctx context.Context, slug string) (*model.BlogPost, error) {
	if !validName(slug) {
		return nil, fmt.Errorf("blog post %q: %w", slug, ErrNotFound)
	}

	for _, ext := range markdown.PostExtensions {
		data, err := r.src.ReadFile(ctx, path.Join(BlogDir, slug+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return markdown.ParsePost(slug, data)
	}
	return nil, fmt.Errorf("blog post %q: %w", slug, ErrNotFound)
}

func (r *FileContentRepository) LegalDocument(ctx context.Context, name string) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf("legal document %q: %w", name, ErrNotFound)
	}
	data, err := r.src.ReadFile(ctx, path.Join(LegalDir, name+".md"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("legal document %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *FileContentRepository) readJSON(ctx context.Context, name string, v any) error {
	data, err := r.src.ReadFile(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// validName rejects names that could address a file outside their directory.
func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}
