package pdf

import (
	"math"
	"strings"
)

// tableRow is a row wrapped to its column widths.
type tableRow struct {
	cells [][]string
	head  bool
	fill  bool
}

func (r tableRow) lines() int {
	n := 1
	for _, c := range r.cells {
		if len(c) > n {
			n = len(c)
		}
	}
	return n
}

// drawTable draws t with its head row at top and returns the bottom edge of
// the last body row. Rows that would cross into the footer band move to a
// new page, where the head row repeats; a row taller than a whole page is
// split between lines.
func (l *layout) drawTable(t Table, top float64) float64 {
	widths := l.columnWidths(t)
	pad := l.cfg.CellPadding

	l.applyStyle(l.styleHead())
	head := tableRow{head: true, fill: true, cells: l.wrapCells(t.Columns, widths)}
	l.applyStyle(l.styleBody())
	rows := make([]tableRow, len(t.Rows))
	for i, cells := range t.Rows {
		rows[i] = tableRow{fill: i%2 == 0, cells: l.wrapCells(cells, widths)}
	}

	lh := l.lineHeight(l.cfg.FontSize)
	headH := float64(head.lines())*lh + 2*pad

	y := top
	if y+headH > l.footerTop() {
		l.addPage()
		y = l.y
	}
	y = l.drawRow(head, widths, y, 0, head.lines())

	for _, row := range rows {
		total := row.lines()
		h := float64(total)*lh + 2*pad
		if y+h <= l.footerTop() {
			y = l.drawRow(row, widths, y, 0, total)
			continue
		}
		// A row that fits on a fresh page moves there whole.
		if l.contentTop()+headH+h <= l.footerTop() {
			y = l.continueTable(head, widths)
			y = l.drawRow(row, widths, y, 0, total)
			continue
		}
		from, fresh := 0, false
		for from < total {
			n := int(math.Floor((l.footerTop()-y-2*pad)/lh + 1e-9))
			if n < 1 && !fresh {
				y = l.continueTable(head, widths)
				fresh = true
				continue
			}
			// Nothing fits below the head row even on a fresh page; draw one
			// line per page.
			if n < 1 {
				n = 1
			}
			fresh = false
			to := from + n
			if to > total {
				to = total
			}
			y = l.drawRow(row, widths, y, from, to)
			from = to
			if from < total {
				y = l.continueTable(head, widths)
				fresh = true
			}
		}
	}
	l.y = y
	return y
}

// continueTable starts a new page and repeats the head row below the header.
func (l *layout) continueTable(head tableRow, widths []float64) float64 {
	l.addPage()
	return l.drawRow(head, widths, l.y, 0, head.lines())
}

// drawRow draws lines [from, to) of row at y and returns the row's bottom.
func (l *layout) drawRow(row tableRow, widths []float64, y float64, from, to int) float64 {
	st := l.styleBody()
	fill := l.cfg.AltRowFillRGB
	if row.head {
		st = l.styleHead()
		fill = l.cfg.HeadFillRGB
	}
	pad := l.cfg.CellPadding
	lh := l.lineHeight(st.size)
	h := float64(to-from)*lh + 2*pad

	if row.fill {
		l.pdf.SetFillColor(fill[0], fill[1], fill[2])
		x := l.cfg.Margin
		for _, w := range widths {
			l.pdf.Rect(x, y, w, h, "F")
			x += w
		}
	}
	l.applyStyle(st)
	ascent := 0.3 * l.pdf.PointConvert(st.size)
	x := l.cfg.Margin
	for i, w := range widths {
		var cell []string
		if i < len(row.cells) {
			cell = row.cells[i]
		}
		for j := from; j < to && j < len(cell); j++ {
			baseline := y + pad + float64(j-from)*lh + 0.5*lh + ascent
			l.pdf.Text(x+pad, baseline, cell[j])
		}
		x += w
	}
	return y + h
}

// wrapCells wraps each cell to its column's inner width with the active
// style.
func (l *layout) wrapCells(cells []string, widths []float64) [][]string {
	out := make([][]string, len(widths))
	for i, w := range widths {
		if i >= len(cells) {
			out[i] = []string{""}
			continue
		}
		inner := w - 2*l.cfg.CellPadding
		if inner < 1 {
			inner = 1
		}
		out[i] = l.wrap(cells[i], inner)
	}
	return out
}

// columnWidths sizes columns from their content so they fill the content
// width. Every column first gets room for its longest word; what is left is
// shared in proportion to how much wider each column would like to be.
func (l *layout) columnWidths(t Table) []float64 {
	n := len(t.Columns)
	natural := make([]float64, n)
	minimum := make([]float64, n)
	measure := func(i int, s string) {
		for _, line := range splitLines(s) {
			line = l.enc(line)
			natural[i] = math.Max(natural[i], l.pdf.GetStringWidth(line))
			for _, word := range strings.Fields(line) {
				minimum[i] = math.Max(minimum[i], l.pdf.GetStringWidth(word))
			}
		}
	}
	l.applyStyle(l.styleHead())
	for i, c := range t.Columns {
		measure(i, c)
	}
	l.applyStyle(l.styleBody())
	for _, row := range t.Rows {
		for i := 0; i < n && i < len(row); i++ {
			measure(i, row[i])
		}
	}

	avail := l.contentWidth()
	pad := 2 * l.cfg.CellPadding
	var sumNatural, sumMin float64
	for i := range natural {
		natural[i] += pad
		minimum[i] = math.Min(minimum[i]+pad, natural[i])
		sumNatural += natural[i]
		sumMin += minimum[i]
	}
	widths := make([]float64, n)
	switch {
	case n == 0:
	case sumNatural <= 0:
		for i := range widths {
			widths[i] = avail / float64(n)
		}
	case sumNatural <= avail:
		for i := range widths {
			widths[i] = natural[i] * avail / sumNatural
		}
	case sumMin >= avail:
		for i := range widths {
			widths[i] = minimum[i] * avail / sumMin
		}
	default:
		slack := avail - sumMin
		want := sumNatural - sumMin
		for i := range widths {
			widths[i] = minimum[i] + (natural[i]-minimum[i])*slack/want
		}
	}
	return widths
}
