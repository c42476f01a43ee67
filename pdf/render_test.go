package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"pkt.systems/cvdash"
	"pkt.systems/cvdash/internal/pdfcheck"
)

// loadSample copies the sample resume into a temp dir next to a generated
// photo and loads it from there.
func loadSample(t *testing.T) *cvdash.Document {
	t.Helper()
	src, err := pdfcheck.SampleDocument()
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	raw, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	dir := t.TempDir()
	if err := pdfcheck.WritePNG(filepath.Join(dir, "photo.png"), 64, 64); err != nil {
		t.Fatalf("write photo: %v", err)
	}
	path := filepath.Join(dir, "cv_data.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	doc, err := cvdash.Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	return doc
}

func TestRenderPDFWithCoreFonts(t *testing.T) {
	doc := loadSample(t)
	var out bytes.Buffer
	report, err := Render(RenderRequest{Document: doc, Writer: &out, Config: DefaultConfig()})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected pdf header: %q", out.Bytes()[:8])
	}
	pages, err := pdfcheck.PageCount(out.Bytes())
	if err != nil {
		t.Fatalf("page count: %v", err)
	}
	if pages != report.Pages {
		t.Fatalf("report says %d pages, pdf has %d", report.Pages, pages)
	}
	var titles []string
	for _, b := range report.Blocks {
		titles = append(titles, b.Title)
	}
	want := []string{
		TitleSummary, TitleSkills, TitleExperience, TitleProjects,
		TitleWorkshops, TitleCertifications, TitlePublications, TitleHobbies,
	}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("unexpected section order:\n got %v\nwant %v", titles, want)
	}
}

func TestRenderPageCountForLongDocument(t *testing.T) {
	doc := docWithExperiences(t, 40)
	var out bytes.Buffer
	report, err := Render(RenderRequest{Document: doc, Writer: &out})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	pages, err := pdfcheck.PageCount(out.Bytes())
	if err != nil {
		t.Fatalf("page count: %v", err)
	}
	if report.Pages < 3 || pages != report.Pages {
		t.Fatalf("unexpected page count: report=%d pdf=%d", report.Pages, pages)
	}
}

func TestRenderSkipsEmptySections(t *testing.T) {
	doc := parseDoc(t, `{"name":"Jo Doe","title":"Engineer","location":"Oslo",
		"work_experience":"not a list","projects":[],"skills":{}}`)
	var out bytes.Buffer
	report, err := Render(RenderRequest{Document: doc, Writer: &out})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if report.Pages != 1 || len(report.Blocks) != 0 {
		t.Fatalf("expected a single header-only page, got %+v", report)
	}
}

func TestRenderPDFSkipsUnsupportedRunes(t *testing.T) {
	doc := parseDoc(t, `{"name":"Åsa Öberg","title":"Engineer","location":"Malmö",
		"summary":{"content":"Emoji 😀 should be ignored."}}`)
	var out bytes.Buffer
	if _, err := Render(RenderRequest{Document: doc, Writer: &out}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected pdf header: %q", out.Bytes()[:8])
	}
}

func TestRenderFailsOnMissingPhoto(t *testing.T) {
	doc := parseDoc(t, `{"name":"Jo Doe","title":"Engineer","location":"Oslo","photo":{"path":"missing.png"}}`)
	var out bytes.Buffer
	_, err := Render(RenderRequest{Document: doc, Writer: &out})
	if err == nil || !strings.Contains(err.Error(), "photo") {
		t.Fatalf("expected photo error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %d bytes", out.Len())
	}
}

func TestRenderRejectsBadRequests(t *testing.T) {
	if _, err := Render(RenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil document")
	}
	doc := parseDoc(t, minimalDoc)
	if _, err := Render(RenderRequest{Document: doc}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	cfg := DefaultConfig()
	cfg.FontFamily = "Comic"
	if _, err := Render(RenderRequest{Document: doc, Writer: &bytes.Buffer{}, Config: cfg}); err == nil {
		t.Fatalf("expected error for non-core font without font files")
	}
	cfg = DefaultConfig()
	cfg.RegularFont = "/tmp/regular.ttf"
	cfg.BoldFontBytes = []byte{1}
	if _, err := Render(RenderRequest{Document: doc, Writer: &bytes.Buffer{}, Config: cfg}); err == nil {
		t.Fatalf("expected error when mixing font paths and bytes")
	}
}

func TestRenderRejectsLayoutsWithoutRoomForRows(t *testing.T) {
	doc := parseDoc(t, `{"name":"Jo Doe","title":"Engineer","location":"Oslo",
		"certifications":[{"text":"CKA"}]}`)
	for _, cfg := range []Config{{Margin: 90}, {FontSize: 400}} {
		var out bytes.Buffer
		_, err := Render(RenderRequest{Document: doc, Writer: &out, Config: cfg})
		if err == nil || !strings.Contains(err.Error(), "no room") {
			t.Fatalf("config %+v: expected layout error, got %v", cfg, err)
		}
		if out.Len() != 0 {
			t.Fatalf("config %+v: expected no output, got %d bytes", cfg, out.Len())
		}
	}
	if _, err := Render(RenderRequest{Document: doc, Writer: &bytes.Buffer{}, Config: Config{Margin: 20}}); err != nil {
		t.Fatalf("margin 20 should still render: %v", err)
	}
}

func TestPhotoDrawnOnEveryPage(t *testing.T) {
	doc := loadSample(t)
	cfg := DefaultConfig()
	l, rec := newTestLayout(t, cfg, doc)
	photo, err := preparePhoto(rec.Fpdf, doc.PhotoPath())
	if err != nil {
		t.Fatalf("prepare photo: %v", err)
	}
	l.photo = photo
	blocks := planBlocks(doc, cfg)
	blocks = append(blocks, plannedBlock{kind: kindSection, title: "Notes", text: strings.Repeat("note ", 3000)})
	if err := l.run(blocks); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if l.pageNum < 2 || len(rec.images) != l.pageNum {
		t.Fatalf("expected one photo per page, got %d photos on %d pages", len(rec.images), l.pageNum)
	}
}

func TestImageTypeForPath(t *testing.T) {
	cases := map[string]string{
		"/tmp/foo.png":  "PNG",
		"/tmp/foo.jpg":  "JPG",
		"/tmp/foo.jpeg": "JPG",
		"/tmp/foo.gif":  "",
	}
	for path, want := range cases {
		if got := imageTypeForPath(path); got != want {
			t.Fatalf("imageTypeForPath(%q) = %q, want %q", path, got, want)
		}
	}
	if err := validateImagePath("/tmp/foo.gif"); err == nil {
		t.Fatalf("expected validation error for unsupported image type")
	}
}
