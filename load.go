package cvdash

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ValidationError reports identity or link fields that failed validation.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one failed field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

var validate = validator.New()

// Load reads and parses a resume document from path. The photo path is
// resolved relative to the file's directory.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read resume %s", path)
	}
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	doc, err := Parse(raw, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "load resume %s", path)
	}
	return doc, nil
}

// Parse decodes a resume document. baseDir anchors a relative photo path and
// may be empty.
func Parse(raw []byte, baseDir string) (*Document, error) {
	if err := ValidateInput(raw); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode resume json")
	}
	doc.baseDir = baseDir
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks required identity fields and link shapes.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate resume")
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   jsonFieldPath(fe.Namespace()),
			Message: validationMessage(fe),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	default:
		return fmt.Sprintf("failed %q", fe.Tag())
	}
}

var fieldNames = map[string]string{
	"Name":     "name",
	"Title":    "title",
	"Location": "location",
	"Contact":  "contact",
	"Email":    "email",
	"LinkedIn": "linkedin",
	"GitHub":   "github",
	"URL":      "url",
}

// jsonFieldPath turns "Document.Contact.Email.URL" into "contact.email.url".
func jsonFieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if name, ok := fieldNames[p]; ok {
			parts[i] = name
		} else {
			parts[i] = strings.ToLower(p)
		}
	}
	return strings.Join(parts, ".")
}
