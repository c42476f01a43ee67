package pdf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pkt.systems/cvdash"
)

var errFinalized = errors.New("document already finalized")

// buildState tracks one export: Idle, then Building while pages are added,
// then Finalized once every section is drawn.
type buildState uint8

const (
	stateIdle buildState = iota
	stateBuilding
	stateFinalized
)

// Report describes the drawn document.
type Report struct {
	Pages  int
	Blocks []Block
}

// Block records where one section landed. Top is the cursor before the
// section title; Bottom is the cursor after the last drawn line or row,
// before section spacing.
type Block struct {
	Title     string
	Kind      string
	StartPage int
	EndPage   int
	Top       float64
	Bottom    float64
	Rows      int
}

type photoImage struct {
	path string
	opts gofpdf.ImageOptions
}

type layout struct {
	pdf       surface
	cfg       Config
	doc       *cvdash.Document
	photo     *photoImage
	family    string
	enc       textEncoder
	byteChars bool

	state     buildState
	pageNum   int
	pageW     float64
	pageH     float64
	y         float64
	lastStyle pdfStyle
	styleSet  bool
	blocks    []Block
}

func newLayout(s surface, cfg Config, doc *cvdash.Document, photo *photoImage, family string, enc textEncoder, byteChars bool) *layout {
	l := &layout{
		pdf:       s,
		cfg:       cfg,
		doc:       doc,
		photo:     photo,
		family:    family,
		enc:       enc,
		byteChars: byteChars,
	}
	l.pageW, l.pageH = s.GetPageSize()
	return l
}

// layoutDocument draws every planned section and returns the report. The
// surface is left ready for output.
func layoutDocument(s surface, cfg Config, doc *cvdash.Document, photo *photoImage, family string, enc textEncoder, byteChars bool) (*Report, error) {
	l := newLayout(s, cfg, doc, photo, family, enc, byteChars)
	if err := l.run(planBlocks(doc, cfg)); err != nil {
		return nil, err
	}
	return &Report{Pages: l.pageNum, Blocks: l.blocks}, nil
}

func (l *layout) run(blocks []plannedBlock) error {
	if l.state != stateIdle {
		return errFinalized
	}
	l.state = stateBuilding
	l.addPage()
	for _, b := range blocks {
		switch b.kind {
		case kindTable:
			l.tableSection(b.table)
		default:
			l.textSection(b.title, b.text, b.highlight)
		}
		if err := l.pdf.Error(); err != nil {
			return fmt.Errorf("pdf render: draw %s: %w", b.title, err)
		}
	}
	l.state = stateFinalized
	return nil
}

func (l *layout) contentTop() float64 {
	return l.cfg.Margin + l.cfg.HeaderHeight
}

// printableBottom is the limit used by the block-level page break check.
func (l *layout) printableBottom() float64 {
	return l.pageH - l.cfg.Margin
}

// footerTop is the lowest position lines and table rows may reach; the band
// below it belongs to the footer.
func (l *layout) footerTop() float64 {
	return l.pageH - 2*l.cfg.Margin
}

func (l *layout) contentWidth() float64 {
	return l.pageW - 2*l.cfg.Margin
}

func (l *layout) addPage() {
	if l.state == stateFinalized {
		return
	}
	l.pdf.AddPage()
	l.pageNum++
	l.drawHeader()
	l.drawFooter()
	l.y = l.contentTop()
}

// ensureBlock starts a new page when fewer than MinBlockHeight units remain
// above the printable bottom.
func (l *layout) ensureBlock() {
	if l.y+l.cfg.MinBlockHeight > l.printableBottom() {
		l.addPage()
	}
}

func (l *layout) drawHeader() {
	m := l.cfg.Margin
	step := l.cfg.HeaderLineStep
	x := m + l.cfg.PhotoSize + step
	if l.photo != nil {
		l.pdf.ImageOptions(l.photo.path, m, m, l.cfg.PhotoSize, l.cfg.PhotoSize, false, l.photo.opts, 0, "")
	}
	l.applyStyle(l.styleName())
	l.text(x, m+step, l.doc.Name)
	l.applyStyle(l.styleJobTitle())
	l.text(x, m+2*step, l.doc.Title)
	l.applyStyle(l.styleBody())
	l.text(x, m+3*step, "Location: "+l.doc.Location)
	l.text(x, m+4*step, "Email: "+l.doc.Contact.Email.Text)
	l.text(x, m+5*step, "LinkedIn: "+l.doc.Contact.LinkedIn.Text)
	l.text(x, m+6*step, "GitHub: "+l.doc.Contact.GitHub.Text)
	l.pdf.SetDrawColor(l.cfg.TextRGB[0], l.cfg.TextRGB[1], l.cfg.TextRGB[2])
	l.pdf.SetLineWidth(l.cfg.RuleWidth)
	ruleY := m + l.cfg.HeaderHeight - step
	l.pdf.Line(m, ruleY, l.pageW-m, ruleY)
}

func (l *layout) drawFooter() {
	l.applyStyle(l.styleFooter())
	label := l.enc(fmt.Sprintf("Page %d", l.pageNum))
	w := l.pdf.GetStringWidth(label)
	l.pdf.Text(l.pageW/2-w/2, l.pageH-l.cfg.Margin, label)
}

func (l *layout) text(x, y float64, s string) {
	l.pdf.Text(x, y, l.enc(s))
}

func (l *layout) sectionTitle(title string) {
	l.applyStyle(l.styleTitle())
	l.text(l.cfg.Margin, l.y, title)
	l.y += l.cfg.SectionSpacing
}

// textSection draws a title and a wrapped paragraph. Lines that would reach
// the footer band continue on a new page.
func (l *layout) textSection(title, body, highlight string) {
	l.ensureBlock()
	block := Block{Title: title, Kind: kindSection.String(), StartPage: l.pageNum, Top: l.y}
	l.sectionTitle(title)

	st := l.styleBody()
	l.applyStyle(st)
	lh := l.lineHeight(st.size)
	end := l.paragraph(body, lh)
	l.y = end + l.cfg.SectionSpacing

	if highlight != "" {
		l.applyStyle(l.styleBold())
		last := l.paragraph(highlight, lh)
		// SectionSpacing below the last highlight baseline, however many
		// lines the highlight wrapped to.
		l.y = last - lh + l.cfg.SectionSpacing
		end = last
	}
	block.Bottom = end
	block.EndPage = l.pageNum
	l.blocks = append(l.blocks, block)
}

// paragraph draws wrapped text with the first baseline at the cursor and
// returns the position one line below the last baseline.
func (l *layout) paragraph(text string, lh float64) float64 {
	lines := l.wrap(text, l.contentWidth())
	baseline := l.y
	for _, line := range lines {
		if baseline > l.footerTop() {
			st := l.lastStyle
			l.addPage()
			l.applyStyle(st)
			baseline = l.y
		}
		l.pdf.Text(l.cfg.Margin, baseline, line)
		baseline += lh
	}
	return baseline
}

func (l *layout) tableSection(t Table) {
	l.ensureBlock()
	block := Block{Title: t.Title, Kind: kindTable.String(), StartPage: l.pageNum, Top: l.y, Rows: len(t.Rows)}
	l.sectionTitle(t.Title)
	bottom := l.drawTable(t, l.y)
	block.Bottom = bottom
	block.EndPage = l.pageNum
	l.blocks = append(l.blocks, block)
	l.y = bottom + l.cfg.SectionSpacing
}

// wrap splits text into lines no wider than width. Explicit newlines are
// kept; words wider than a line are broken between characters. The result
// is already encoded for the active font. Lines are split before encoding
// because the encoders drop control characters, newlines included.
func (l *layout) wrap(text string, width float64) []string {
	var out []string
	for _, para := range splitLines(text) {
		out = append(out, l.wrapParagraph(l.enc(para), width)...)
	}
	return out
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
}

func (l *layout) wrapParagraph(para string, width float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := ""
	for _, w := range words {
		for l.pdf.GetStringWidth(w) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			head, rest := l.splitWord(w, width)
			lines = append(lines, head)
			w = rest
		}
		if w == "" {
			continue
		}
		if cur == "" {
			cur = w
			continue
		}
		candidate := cur + " " + w
		if l.pdf.GetStringWidth(candidate) <= width {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// splitWord returns the longest prefix of w that fits width, at least one
// character, and the remainder.
func (l *layout) splitWord(w string, width float64) (string, string) {
	cuts := l.charBoundaries(w)
	best := cuts[0]
	for _, c := range cuts {
		if l.pdf.GetStringWidth(w[:c]) > width {
			break
		}
		best = c
	}
	return w[:best], w[best:]
}

// charBoundaries lists the byte offsets after each character. Core font
// strings are single-byte encoded; UTF-8 font strings are split on runes.
func (l *layout) charBoundaries(w string) []int {
	var cuts []int
	if l.byteChars {
		for i := 1; i <= len(w); i++ {
			cuts = append(cuts, i)
		}
		return cuts
	}
	for i := range w {
		if i > 0 {
			cuts = append(cuts, i)
		}
	}
	return append(cuts, len(w))
}
