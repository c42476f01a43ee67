package pdf

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pkt.systems/cvdash"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Document *cvdash.Document
	Writer   io.Writer
	Config   Config
}

// Render draws the resume as a PDF to req.Writer.
func Render(req RenderRequest) (*Report, error) {
	if req.Document == nil {
		return nil, fmt.Errorf("pdf render: document is nil")
	}
	if req.Writer == nil {
		return nil, fmt.Errorf("pdf render: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if cfg.FontFamily == "" || cfg.FontSize <= 0 || cfg.LineHeight <= 0 {
		return nil, fmt.Errorf("pdf render: invalid font configuration")
	}
	if cfg.MinBlockHeight <= 0 || cfg.HeaderHeight <= 0 {
		return nil, fmt.Errorf("pdf render: invalid page layout")
	}

	fpdf, family, err := newFpdf(cfg)
	if err != nil {
		return nil, err
	}
	doc := req.Document
	fpdf.SetTitle(doc.Name+" - Resume", true)
	fpdf.SetAuthor(doc.Name, true)
	fpdf.SetCreator("cvdash", true)

	pageW, pageH := fpdf.GetPageSize()
	if pageW-2*cfg.Margin < 20 || cfg.Margin+cfg.HeaderHeight+cfg.MinBlockHeight > pageH-cfg.Margin {
		return nil, fmt.Errorf("pdf render: page too small for layout (%.0fx%.0f %s)", pageW, pageH, cfg.Unit)
	}
	// A page must hold the table head row and one body line above the
	// footer band.
	rowH := fpdf.PointConvert(cfg.FontSize)*cfg.LineHeight + 2*cfg.CellPadding
	if contentTop, footerTop := cfg.Margin+cfg.HeaderHeight, pageH-2*cfg.Margin; contentTop+2*rowH > footerTop {
		return nil, fmt.Errorf("pdf render: margin %.1f and font size %.1f leave no room for table rows (%.1f of %.1f %s used)",
			cfg.Margin, cfg.FontSize, contentTop+2*rowH, footerTop, cfg.Unit)
	}

	photo, err := preparePhoto(fpdf, doc.PhotoPath())
	if err != nil {
		return nil, err
	}

	enc, byteChars := textEncoder(encodeCore), true
	if family == utf8FontFamily {
		enc, byteChars = encodeUTF8, false
	}
	report, err := layoutDocument(fpdf, cfg, doc, photo, family, enc, byteChars)
	if err != nil {
		return nil, err
	}
	if err := fpdf.Output(req.Writer); err != nil {
		return nil, fmt.Errorf("pdf render: output: %w", err)
	}
	return report, nil
}

// newFpdf creates the document and registers fonts. It returns the font
// family the layout must select.
func newFpdf(cfg Config) (*gofpdf.Fpdf, string, error) {
	hasPath := cfg.RegularFont != "" || cfg.BoldFont != ""
	hasBytes := len(cfg.RegularFontBytes) > 0 || len(cfg.BoldFontBytes) > 0
	if hasPath && hasBytes {
		return nil, "", fmt.Errorf("pdf render: cannot mix font paths with embedded font bytes")
	}
	if hasBytes && (len(cfg.RegularFontBytes) == 0 || len(cfg.BoldFontBytes) == 0) {
		return nil, "", fmt.Errorf("pdf render: missing embedded font bytes")
	}
	if hasPath && (cfg.RegularFont == "" || cfg.BoldFont == "") {
		return nil, "", fmt.Errorf("pdf render: missing font paths")
	}
	useCoreFont := !hasPath && !hasBytes
	if useCoreFont && !isCoreFont(cfg.FontFamily) {
		return nil, "", fmt.Errorf("pdf render: core font family required when font paths are empty")
	}

	pdf := gofpdf.New(cfg.Orientation, cfg.Unit, cfg.PageSize, "")
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, cfg.Margin)
	pdf.SetCellMargin(0)
	if cfg.DisableCompression {
		pdf.SetCompression(false)
	}

	family := cfg.FontFamily
	switch {
	case hasBytes:
		family = utf8FontFamily
		pdf.AddUTF8FontFromBytes(family, "", cfg.RegularFontBytes)
		pdf.AddUTF8FontFromBytes(family, "B", cfg.BoldFontBytes)
	case hasPath:
		fontDir := filepath.Dir(cfg.RegularFont)
		if filepath.Dir(cfg.BoldFont) != fontDir {
			return nil, "", fmt.Errorf("pdf render: font paths must be in the same directory")
		}
		for _, p := range []string{cfg.RegularFont, cfg.BoldFont} {
			if err := ensureFontFile(p); err != nil {
				return nil, "", fmt.Errorf("pdf render: %w", err)
			}
		}
		family = utf8FontFamily
		pdf.SetFontLocation(fontDir)
		pdf.AddUTF8Font(family, "", filepath.Base(cfg.RegularFont))
		pdf.AddUTF8Font(family, "B", filepath.Base(cfg.BoldFont))
	}
	pdf.SetFont(family, "", cfg.FontSize)
	if err := pdf.Error(); err != nil {
		return nil, "", fmt.Errorf("pdf render: font setup failed: %w", err)
	}
	charWidth := pdf.GetStringWidth("M")
	if math.IsNaN(charWidth) || charWidth <= 0 {
		return nil, "", fmt.Errorf("pdf render: invalid font metrics (charWidth=%v)", charWidth)
	}
	return pdf, family, nil
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Times", "Arial":
		return true
	default:
		return false
	}
}

func ensureFontFile(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".ttf" {
		return fmt.Errorf("font %s must be a .ttf file", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("font missing: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("font path %s is a directory", path)
	}
	return nil
}

func validateImagePath(path string) error {
	if imageTypeForPath(path) == "" {
		return fmt.Errorf("photo must be PNG or JPEG")
	}
	return nil
}

func imageTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "PNG"
	case ".jpg", ".jpeg":
		return "JPG"
	default:
		return ""
	}
}

// preparePhoto registers the header photo once so every page can reuse it.
// An empty path means no photo.
func preparePhoto(pdf *gofpdf.Fpdf, path string) (*photoImage, error) {
	if path == "" {
		return nil, nil
	}
	if err := validateImagePath(path); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("pdf render: photo: %w", err)
	}
	opts := gofpdf.ImageOptions{
		ImageType: imageTypeForPath(path),
		ReadDpi:   true,
	}
	info := pdf.RegisterImageOptions(path, opts)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf render: load photo: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("pdf render: load photo %s", path)
	}
	if w, h := info.Extent(); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("pdf render: invalid photo dimensions")
	}
	return &photoImage{path: path, opts: opts}, nil
}
