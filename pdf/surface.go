package pdf

import "github.com/jung-kurt/gofpdf"

// surface is the subset of *gofpdf.Fpdf the layout draws with.
type surface interface {
	AddPage()
	PageNo() int
	GetPageSize() (float64, float64)
	SetFont(familyStr, styleStr string, size float64)
	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetLineWidth(width float64)
	Text(x, y float64, txtStr string)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, styleStr string)
	GetStringWidth(s string) float64
	PointConvert(pt float64) float64
	ImageOptions(imageNameStr string, x, y, w, h float64, flow bool, options gofpdf.ImageOptions, link int, linkStr string)
	Error() error
}

var _ surface = (*gofpdf.Fpdf)(nil)
