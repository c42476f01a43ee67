package cvdash

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

// SchemaError lists every place the raw document departs from the resume
// JSON Schema.
type SchemaError struct {
	Errors []FieldError
}

func (se *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, fe := range se.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

// Schema returns the embedded resume JSON Schema.
func Schema() []byte {
	out := make([]byte, len(resumeSchema))
	copy(out, resumeSchema)
	return out
}

// ValidateSchema checks raw JSON against the embedded schema. Unlike Parse,
// which degrades malformed lists to placeholders, this reports them.
func ValidateSchema(raw []byte) error {
	if err := ValidateInput(raw); err != nil {
		return err
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(resumeSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return errors.Wrap(err, "schema validation")
	}
	if result.Valid() {
		return nil
	}
	se := &SchemaError{}
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "(root)" {
			field = "$"
		}
		se.Errors = append(se.Errors, FieldError{Field: field, Message: re.Description()})
	}
	return se
}
