// Package pdfcheck inspects rendered PDFs and prepares fixtures for tests.
package pdfcheck

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	lpdf "github.com/ledongthuc/pdf"
)

// FindModuleRoot walks up from the working directory to the directory
// holding go.mod.
func FindModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}

// SampleDocument returns the path of the bundled sample resume.
func SampleDocument() (string, error) {
	root, err := FindModuleRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "testdata", "sample.json"), nil
}

// PageCount parses data as a PDF and returns its number of pages.
func PageCount(data []byte) (int, error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return 0, fmt.Errorf("missing %%PDF header")
	}
	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("parse pdf: %w", err)
	}
	return r.NumPage(), nil
}

// WritePNG writes an opaque w x h PNG to path.
func WritePNG(path string, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(40 + x%200), G: 90, B: uint8(120 + y%100), A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
