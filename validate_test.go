package cvdash

import "testing"

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsEmpty(t *testing.T) {
	if err := ValidateInput([]byte(" \n\t")); err != ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestParseSurfacesInputErrors(t *testing.T) {
	if _, err := Parse([]byte{0x00, 0x01}, ""); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput from Parse, got %v", err)
	}
}
