package cvdash

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePath = "testdata/sample.json"

func loadSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Load(samplePath)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	return doc
}

func TestLoadSample(t *testing.T) {
	doc := loadSample(t)
	if doc.Name != "Alex Morgan" {
		t.Fatalf("unexpected name %q", doc.Name)
	}
	if problems := doc.Problems(); len(problems) != 0 {
		t.Fatalf("expected no problems in sample, got %v", problems)
	}
	want, err := filepath.Abs(filepath.Join("testdata", "photo.png"))
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	if got := doc.PhotoPath(); got != want {
		t.Fatalf("expected photo %q, got %q", want, got)
	}
	if doc.WorkExperience.Len() != 2 {
		t.Fatalf("expected 2 experiences, got %d", doc.WorkExperience.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseRequiresIdentity(t *testing.T) {
	_, err := Parse([]byte(`{"title":"Engineer"}`), "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := make(map[string]string)
	for _, fe := range verr.Errors {
		fields[fe.Field] = fe.Message
	}
	if fields["name"] != "is required" || fields["location"] != "is required" {
		t.Fatalf("expected name and location to be required, got %v", fields)
	}
	if _, ok := fields["title"]; ok {
		t.Fatalf("title was provided, got %v", fields)
	}
}

func TestLoadReportsBadContactURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	raw := "{" + identityJSON + `,"contact":{"email":{"text":"me","url":"not a url"}}}`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError through Load, got %v", err)
	}
	if len(verr.Errors) != 1 || verr.Errors[0].Field != "contact.email.url" {
		t.Fatalf("unexpected field errors %+v", verr.Errors)
	}
	if !strings.Contains(err.Error(), "not a url") {
		t.Fatalf("expected offending value in message, got %v", err)
	}
}

func TestParseRejectsBrokenJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"name":`), ""); err == nil {
		t.Fatalf("expected decode error")
	}
}
