package contentcheck

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/mavisigorta/backend/internal/repository"
	"github.com/mavisigorta/backend/internal/storage"
)

func runOn(t *testing.T, files fstest.MapFS) *Report {
	t.Helper()
	repo := repository.NewFileContentRepository(storage.NewFSStorage(files))
	return Run(context.Background(), repo)
}

func messages(r *Report) string {
	var lines []string
	for _, p := range r.Problems {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}

func TestRun_CleanContent(t *testing.T) {
	r := runOn(t, fstest.MapFS{
		"courses.json":     {Data: []byte(`[{"id":"kasko","title":"Kasko","vehicleType":"both"}]`)},
		"instructors.json": {Data: []byte(`[{"id":"ayse","name":"Ayşe"}]`)},
		"faqs.json":        {Data: []byte(`[{"id":"1","question":"?","answer":"!"}]`)},
		"settings.json":    {Data: []byte(`{"siteName":"Mavi Sigorta"}`)},
		"blog/ilk.md":      {Data: []byte("---\ntitle: İlk\ndate: 2024-01-15\nexcerpt: Kısa\n---\nMetin\n")},
	})

	if len(r.Problems) != 0 || r.Failed() {
		t.Errorf("expected no problems, got:\n%s", messages(r))
	}
}

func TestRun_ReportsDuplicatesAndInvalidValues(t *testing.T) {
	r := runOn(t, fstest.MapFS{
		"courses.json": {Data: []byte(`[
			{"id":"kasko","title":"Kasko","vehicleType":"both"},
			{"id":"kasko","title":"Kasko 2","vehicleType":"manuel"},
			{"id":"trafik","title":"Trafik","vehicleType":"tractor"}
		]`)},
		"faqs.json":     {Data: []byte(`[{"id":"1"},{"id":"1"},{"id":""}]`)},
		"settings.json": {Data: []byte(`{}`)},
		"blog/a.md":     {Data: []byte("---\ndate: 2024-01-15\nexcerpt: x\n---\n")},
		"blog/b.md":     {Data: []byte("---\ntitle: B\nexcerpt: x\n---\n")},
	})

	if !r.Failed() {
		t.Fatal("expected the check to fail")
	}
	out := messages(r)
	for _, want := range []string{
		`course #2: duplicate id "kasko" (first used by #1)`,
		`unknown vehicleType "tractor"`,
		`faq #2: duplicate id "1"`,
		"faq #3: missing id",
		"blog/a: missing title",
		"blog/b: missing date",
		"warning: instructors.json: file not found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRun_ParseErrors(t *testing.T) {
	r := runOn(t, fstest.MapFS{
		"courses.json":  {Data: []byte(`[{"id":`)},
		"settings.json": {Data: []byte(`not json`)},
		"blog/bad.md":   {Data: []byte("---\ntitle: [unclosed\n---\n")},
	})

	out := messages(r)
	for _, want := range []string{"error: courses.json:", "error: settings.json:", "error: blog/bad:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRun_MissingFilesOnlyWarn(t *testing.T) {
	r := runOn(t, fstest.MapFS{})

	if r.Failed() {
		t.Errorf("missing files should only warn, got:\n%s", messages(r))
	}
	if len(r.Problems) == 0 {
		t.Error("expected warnings for missing files")
	}
}
