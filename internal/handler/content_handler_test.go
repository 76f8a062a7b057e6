package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mavisigorta/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock ContentService
// ---------------------------------------------------------------------------

type mockContentService struct {
	courses     []model.Course
	instructors []model.Instructor
	faqs        []model.FAQ
	settings    model.SiteSettings
	posts       []model.BlogPost // already sorted, published and drafts mixed
	legal       map[string]string

	recentLimit int
}

func (m *mockContentService) Courses(ctx context.Context) []model.Course {
	if m.courses == nil {
		return []model.Course{}
	}
	return m.courses
}

func (m *mockContentService) CourseByID(ctx context.Context, id string) (model.Course, bool) {
	for _, c := range m.courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

func (m *mockContentService) PopularCourses(ctx context.Context) []model.Course {
	out := []model.Course{}
	for _, c := range m.courses {
		if c.Popular {
			out = append(out, c)
		}
	}
	return out
}

func (m *mockContentService) Instructors(ctx context.Context) []model.Instructor {
	if m.instructors == nil {
		return []model.Instructor{}
	}
	return m.instructors
}

func (m *mockContentService) InstructorByID(ctx context.Context, id string) (model.Instructor, bool) {
	for _, in := range m.instructors {
		if in.ID == id {
			return in, true
		}
	}
	return model.Instructor{}, false
}

func (m *mockContentService) FAQs(ctx context.Context) []model.FAQ {
	if m.faqs == nil {
		return []model.FAQ{}
	}
	return m.faqs
}

func (m *mockContentService) SiteSettings(ctx context.Context) model.SiteSettings {
	return m.settings
}

func (m *mockContentService) BlogSlugs(ctx context.Context) []string {
	out := []string{}
	for _, p := range m.posts {
		out = append(out, p.Slug)
	}
	return out
}

func (m *mockContentService) BlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, bool) {
	for _, p := range m.posts {
		if p.Slug == slug {
			p.HTML = "<p>" + p.Content + "</p>"
			return p, true
		}
	}
	return model.BlogPost{}, false
}

func (m *mockContentService) BlogPosts(ctx context.Context, includeUnpublished bool) []model.BlogPost {
	return m.filter(func(p model.BlogPost) bool { return includeUnpublished || p.Published })
}

func (m *mockContentService) RecentBlogPosts(ctx context.Context, limit int) []model.BlogPost {
	m.recentLimit = limit
	posts := m.BlogPosts(ctx, false)
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

func (m *mockContentService) PostsByCategory(ctx context.Context, category string) []model.BlogPost {
	return m.filter(func(p model.BlogPost) bool {
		return p.Published && strings.EqualFold(p.Category, category)
	})
}

func (m *mockContentService) PostsByTag(ctx context.Context, tag string) []model.BlogPost {
	return m.filter(func(p model.BlogPost) bool {
		if !p.Published {
			return false
		}
		for _, t := range p.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	})
}

func (m *mockContentService) Categories(ctx context.Context) []string {
	return []string{}
}

func (m *mockContentService) Tags(ctx context.Context) []string {
	return []string{}
}

func (m *mockContentService) LegalDocument(ctx context.Context, name string) (string, bool) {
	doc, ok := m.legal[name]
	return doc, ok
}

func (m *mockContentService) filter(keep func(model.BlogPost) bool) []model.BlogPost {
	out := []model.BlogPost{}
	for _, p := range m.posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func testPosts() []model.BlogPost {
	return []model.BlogPost{
		{Slug: "konut-taslak", Date: "2024-06-01", Category: "Konut", Tags: []string{"konut"}},
		{Slug: "saglik-ipuclari", Date: "2024-05-10", Category: "Sağlık", Tags: []string{"sağlık"}, Published: true},
		{Slug: "kasko-rehberi", Date: "2024-03-01", Category: "Kasko", Tags: []string{"kasko", "araç"}, Published: true},
		{Slug: "trafik-zorunlu", Date: "2024-03-01", Category: "Kasko", Tags: []string{"trafik", "araç"}, Published: true},
	}
}

// newContentMux wires the content routes the same way cmd/server does.
func newContentMux(h *ContentHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/settings", h.Settings)
	mux.HandleFunc("GET /api/courses", h.Courses)
	mux.HandleFunc("GET /api/courses/{id}", h.Course)
	mux.HandleFunc("GET /api/instructors", h.Instructors)
	mux.HandleFunc("GET /api/instructors/{id}", h.Instructor)
	mux.HandleFunc("GET /api/faqs", h.FAQs)
	mux.HandleFunc("GET /api/blog", h.BlogPosts)
	mux.HandleFunc("GET /api/blog/slugs", h.BlogSlugs)
	mux.HandleFunc("GET /api/blog/categories", h.Categories)
	mux.HandleFunc("GET /api/blog/tags", h.Tags)
	mux.HandleFunc("GET /api/blog/{slug}", h.BlogPost)
	return mux
}

func serve(t *testing.T, mux http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeSlugs(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var posts []model.BlogPost
	if err := json.NewDecoder(rec.Body).Decode(&posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	slugs := make([]string, len(posts))
	for i, p := range posts {
		slugs[i] = p.Slug
	}
	return slugs
}

// ---------------------------------------------------------------------------
// Courses, instructors, FAQs, settings
// ---------------------------------------------------------------------------

func TestContentHandler_Courses(t *testing.T) {
	svc := &mockContentService{courses: []model.Course{
		{ID: "kasko", Title: "Kasko", VehicleType: model.VehicleBoth, Popular: true},
		{ID: "trafik", Title: "Trafik", VehicleType: model.VehicleManual},
	}}
	mux := newContentMux(NewContentHandler(svc, ContentConfig{}))

	rec := serve(t, mux, "/api/courses")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var courses []model.Course
	if err := json.NewDecoder(rec.Body).Decode(&courses); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(courses) != 2 {
		t.Errorf("expected 2 courses, got %d", len(courses))
	}

	rec = serve(t, mux, "/api/courses?popular=true")
	courses = nil
	if err := json.NewDecoder(rec.Body).Decode(&courses); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "kasko" {
		t.Errorf("expected only the popular course, got %+v", courses)
	}
}

func TestContentHandler_CourseByID(t *testing.T) {
	svc := &mockContentService{courses: []model.Course{{ID: "kasko", Title: "Kasko"}}}
	mux := newContentMux(NewContentHandler(svc, ContentConfig{}))

	rec := serve(t, mux, "/api/courses/kasko")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var c model.Course
	if err := json.NewDecoder(rec.Body).Decode(&c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Title != "Kasko" {
		t.Errorf("expected Kasko, got %q", c.Title)
	}

	if rec := serve(t, mux, "/api/courses/konut"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown course, got %d", rec.Code)
	}
}

func TestContentHandler_EmptyListsAreArrays(t *testing.T) {
	mux := newContentMux(NewContentHandler(&mockContentService{}, ContentConfig{}))

	for _, path := range []string{
		"/api/courses",
		"/api/courses?popular=true",
		"/api/instructors",
		"/api/faqs",
		"/api/blog",
		"/api/blog/slugs",
		"/api/blog/categories",
		"/api/blog/tags",
	} {
		rec := serve(t, mux, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
			continue
		}
		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Errorf("%s: expected [], got %s", path, got)
		}
	}
}

func TestContentHandler_InstructorByID(t *testing.T) {
	svc := &mockContentService{instructors: []model.Instructor{{ID: "ayse", Name: "Ayşe Yılmaz"}}}
	mux := newContentMux(NewContentHandler(svc, ContentConfig{}))

	if rec := serve(t, mux, "/api/instructors/ayse"); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec := serve(t, mux, "/api/instructors/mehmet"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestContentHandler_Settings(t *testing.T) {
	svc := &mockContentService{settings: model.DefaultSiteSettings()}
	mux := newContentMux(NewContentHandler(svc, ContentConfig{}))

	rec := serve(t, mux, "/api/settings")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got model.SiteSettings
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SiteName != model.DefaultSiteSettings().SiteName {
		t.Errorf("expected default site name, got %q", got.SiteName)
	}
}

// ---------------------------------------------------------------------------
// Blog
// ---------------------------------------------------------------------------

func TestContentHandler_BlogPosts_PublishedOnly(t *testing.T) {
	mux := newContentMux(NewContentHandler(&mockContentService{posts: testPosts()}, ContentConfig{}))

	got := decodeSlugs(t, serve(t, mux, "/api/blog"))
	want := "saglik-ipuclari,kasko-rehberi,trafik-zorunlu"
	if strings.Join(got, ",") != want {
		t.Errorf("expected %s, got %v", want, got)
	}
}

func TestContentHandler_BlogPosts_Drafts(t *testing.T) {
	posts := testPosts()

	prod := newContentMux(NewContentHandler(&mockContentService{posts: posts}, ContentConfig{}))
	if got := decodeSlugs(t, serve(t, prod, "/api/blog?drafts=true")); len(got) != 3 {
		t.Errorf("drafts must stay hidden in production, got %v", got)
	}

	dev := newContentMux(NewContentHandler(&mockContentService{posts: posts}, ContentConfig{AllowDrafts: true}))
	got := decodeSlugs(t, serve(t, dev, "/api/blog?drafts=true"))
	if len(got) != 4 || got[0] != "konut-taslak" {
		t.Errorf("expected drafts in development, got %v", got)
	}
}

func TestContentHandler_BlogPosts_Filters(t *testing.T) {
	mux := newContentMux(NewContentHandler(&mockContentService{posts: testPosts()}, ContentConfig{}))

	tests := []struct {
		query string
		want  string
	}{
		{"category=kasko", "kasko-rehberi,trafik-zorunlu"},
		{"tag=ARA%C3%87", "kasko-rehberi,trafik-zorunlu"},
		{"category=Kasko&tag=trafik", "trafik-zorunlu"},
		{"category=kasko&limit=1", "kasko-rehberi"},
		{"tag=konut", ""},
	}
	for _, tt := range tests {
		got := strings.Join(decodeSlugs(t, serve(t, mux, "/api/blog?"+tt.query)), ",")
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.query, tt.want, got)
		}
	}
}

func TestContentHandler_BlogPosts_Limit(t *testing.T) {
	svc := &mockContentService{posts: testPosts()}
	mux := newContentMux(NewContentHandler(svc, ContentConfig{}))

	got := decodeSlugs(t, serve(t, mux, "/api/blog?limit=2"))
	if strings.Join(got, ",") != "saglik-ipuclari,kasko-rehberi" {
		t.Errorf("unexpected recent posts %v", got)
	}
	if svc.recentLimit != 2 {
		t.Errorf("expected RecentBlogPosts(2), got limit %d", svc.recentLimit)
	}

	for _, bad := range []string{"0", "-1", "abc"} {
		if rec := serve(t, mux, "/api/blog?limit="+bad); rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", bad, rec.Code)
		}
	}
}

func TestContentHandler_BlogPostBySlug(t *testing.T) {
	posts := testPosts()
	posts[1].Content = "Sağlık sigortası"
	mux := newContentMux(NewContentHandler(&mockContentService{posts: posts}, ContentConfig{}))

	rec := serve(t, mux, "/api/blog/saglik-ipuclari")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var p model.BlogPost
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.HTML != "<p>Sağlık sigortası</p>" {
		t.Errorf("expected rendered html, got %q", p.HTML)
	}

	if rec := serve(t, mux, "/api/blog/yok"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestContentHandler_BlogSlugsNotShadowedBySlugRoute(t *testing.T) {
	mux := newContentMux(NewContentHandler(&mockContentService{posts: testPosts()}, ContentConfig{}))

	rec := serve(t, mux, "/api/blog/slugs")
	var slugs []string
	if err := json.NewDecoder(rec.Body).Decode(&slugs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(slugs) != 4 {
		t.Errorf("expected slug list, got %v", slugs)
	}
}
