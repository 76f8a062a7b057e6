// Package contentcheck finds mistakes in a content directory that the site
// itself would silently paper over: unparseable files, duplicate ids and
// posts missing the fields the blog pages rely on.
package contentcheck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mavisigorta/backend/internal/model"
	"github.com/mavisigorta/backend/internal/repository"
	"github.com/mavisigorta/backend/internal/service"
)

// Problem is one finding. Warnings do not fail a check run.
type Problem struct {
	File    string
	Message string
	Warning bool
}

func (p Problem) String() string {
	level := "error"
	if p.Warning {
		level = "warning"
	}
	return fmt.Sprintf("%s: %s: %s", level, p.File, p.Message)
}

// Report collects the problems of one run.
type Report struct {
	Problems []Problem
}

// Failed reports whether any problem is an error.
func (r *Report) Failed() bool {
	for _, p := range r.Problems {
		if !p.Warning {
			return true
		}
	}
	return false
}

func (r *Report) errorf(file, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{File: file, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(file, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{File: file, Message: fmt.Sprintf(format, args...), Warning: true})
}

// readFailed records err against file. A missing file is only a warning
// since the site falls back to empty content for it.
func (r *Report) readFailed(file string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		r.warnf(file, "file not found")
		return
	}
	r.errorf(file, "%v", err)
}

// Run checks every content file repo can reach.
func Run(ctx context.Context, repo repository.ContentRepository) *Report {
	r := &Report{}
	checkCourses(ctx, repo, r)
	checkInstructors(ctx, repo, r)
	checkFAQs(ctx, repo, r)
	if _, err := repo.SiteSettings(ctx); err != nil {
		r.readFailed(repository.SettingsFile, err)
	}
	checkPosts(ctx, repo, r)
	return r
}

func checkCourses(ctx context.Context, repo repository.ContentRepository, r *Report) {
	courses, err := repo.Courses(ctx)
	if err != nil {
		r.readFailed(repository.CoursesFile, err)
		return
	}
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
		if !c.VehicleType.Valid() {
			r.errorf(repository.CoursesFile, "course %q: unknown vehicleType %q", c.ID, c.VehicleType)
		}
		if c.Title == "" {
			r.errorf(repository.CoursesFile, "course %q: missing title", c.ID)
		}
	}
	checkIDs(repository.CoursesFile, "course", ids, r)
}

func checkInstructors(ctx context.Context, repo repository.ContentRepository, r *Report) {
	instructors, err := repo.Instructors(ctx)
	if err != nil {
		r.readFailed(repository.InstructorsFile, err)
		return
	}
	ids := make([]string, len(instructors))
	for i, in := range instructors {
		ids[i] = in.ID
	}
	checkIDs(repository.InstructorsFile, "instructor", ids, r)
}

func checkFAQs(ctx context.Context, repo repository.ContentRepository, r *Report) {
	faqs, err := repo.FAQs(ctx)
	if err != nil {
		r.readFailed(repository.FAQsFile, err)
		return
	}
	ids := make([]string, len(faqs))
	for i, f := range faqs {
		ids[i] = f.ID
	}
	checkIDs(repository.FAQsFile, "faq", ids, r)
}

// checkIDs reports empty and repeated ids. Lookups return the first of a
// set of duplicates, so later entries are unreachable.
func checkIDs(file, kind string, ids []string, r *Report) {
	first := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			r.errorf(file, "%s #%d: missing id", kind, i+1)
			continue
		}
		if j, ok := first[id]; ok {
			r.errorf(file, "%s #%d: duplicate id %q (first used by #%d)", kind, i+1, id, j+1)
			continue
		}
		first[id] = i
	}
}

func checkPosts(ctx context.Context, repo repository.ContentRepository, r *Report) {
	slugs, err := repo.BlogSlugs(ctx)
	if err != nil {
		r.readFailed(repository.BlogDir, err)
		return
	}
	for _, slug := range slugs {
		file := repository.BlogDir + "/" + slug
		post, err := repo.BlogPost(ctx, slug)
		if err != nil {
			r.errorf(file, "%v", err)
			continue
		}
		checkPost(file, post, r)
	}
}

func checkPost(file string, post *model.BlogPost, r *Report) {
	if post.Title == "" {
		r.errorf(file, "missing title")
	}
	if post.Date == "" {
		r.errorf(file, "missing date")
	} else if _, ok := service.ParsePostDate(post.Date); !ok {
		r.warnf(file, "date %q is not in a known layout; the post will sort last", post.Date)
	}
	if post.Published && post.Excerpt == "" {
		r.warnf(file, "published post has no excerpt")
	}
}
