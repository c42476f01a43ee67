package cvdash

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"pkt.systems/cvdash/internal/palette"
)

const (
	minWidth      = 20
	entryIndent   = 2
	bodyIndent    = 4
	skillBarCells = 20
	skillNameCols = 18
)

// RenderRequest contains inputs for terminal rendering.
type RenderRequest struct {
	Document *Document
	Writer   io.Writer
	Width    int
	Theme    Theme
	Options  []RenderOption
}

// Render writes the interactive view of a resume as ANSI text.
func Render(req RenderRequest) error {
	if req.Document == nil {
		return fmt.Errorf("render: document is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	width := req.Width
	if width < minWidth {
		width = minWidth
	}
	var cfg renderConfig
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	bw := bufio.NewWriter(req.Writer)
	r := &termRenderer{w: bw, width: width, styles: theme.Styles(), cfg: cfg}
	r.view(req.Document)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

type termRenderer struct {
	w      *bufio.Writer
	width  int
	styles Styles
	cfg    renderConfig
}

func (r *termRenderer) paint(st Style, s string) string {
	if st.Prefix == "" || s == "" {
		return s
	}
	return st.Prefix + s + palette.Reset
}

func (r *termRenderer) line(s string) {
	r.w.WriteString(s)
	r.w.WriteByte('\n')
}

func (r *termRenderer) blank() {
	r.w.WriteByte('\n')
}

// para wraps plain text to the width left after indentation, then styles
// every wrapped line on its own so resets never leak across line breaks.
func (r *termRenderer) para(st Style, text string, pad int) {
	limit := r.width - pad
	if limit < 1 {
		limit = 1
	}
	wrapped := wordwrap.String(text, limit)
	for _, l := range strings.Split(wrapped, "\n") {
		r.line(indent.String(r.paint(st, l), uint(pad)))
	}
}

// bullet wraps text behind a marker with a hanging indent.
func (r *termRenderer) bullet(st Style, marker, text string, pad int) {
	markerCols := ansi.PrintableRuneWidth(marker)
	limit := r.width - pad - markerCols
	if limit < 1 {
		limit = 1
	}
	lines := strings.Split(wordwrap.String(text, limit), "\n")
	for i, l := range lines {
		prefix := strings.Repeat(" ", markerCols)
		if i == 0 {
			prefix = r.paint(r.styles.Muted, marker)
		}
		r.line(strings.Repeat(" ", pad) + prefix + r.paint(st, l))
	}
}

func (r *termRenderer) link(l Link, pad int) {
	text := l.Text
	if text == "" {
		text = l.URL
	}
	if r.cfg.osc8 && l.URL != "" {
		r.line(strings.Repeat(" ", pad) + r.paint(r.styles.LinkText, hyperlink(text, l.URL)))
		return
	}
	out := r.paint(r.styles.LinkText, text)
	if l.URL != "" && l.URL != text {
		room := r.width - pad - ansi.PrintableRuneWidth(text) - 3
		if room > 8 {
			out += " " + r.paint(r.styles.LinkURL, "<"+fitURL(l.URL, room)+">")
		}
	}
	r.line(strings.Repeat(" ", pad) + out)
}

func (r *termRenderer) view(doc *Document) {
	v := BuildView(doc)
	r.header(v)
	for _, sec := range v.Sections {
		r.blank()
		r.section(doc, sec)
	}
}

func (r *termRenderer) header(v View) {
	r.line(r.paint(r.styles.Name, truncateWithEllipsis(v.Name, r.width)))
	if v.Title != "" {
		r.para(r.styles.Subheading, v.Title, 0)
	}
	if v.Location != "" {
		r.para(r.styles.Muted, v.Location, 0)
	}
	for _, l := range v.Contact {
		r.link(l, 0)
	}
	r.line(r.paint(r.styles.Rule, strings.Repeat("─", r.width)))
}

func (r *termRenderer) section(doc *Document, sec ViewSection) {
	r.line(r.paint(r.styles.Heading, sec.Title))
	if sec.Empty() {
		r.para(r.styles.Placeholder, sec.Placeholder, entryIndent)
		return
	}
	switch sec.ID {
	case SectionSummary:
		r.para(r.styles.Text, sec.Paragraph, entryIndent)
		if sec.Highlight != "" {
			r.blank()
			r.para(r.styles.Highlight, sec.Highlight, entryIndent)
		}
	case SectionSkills:
		r.skills(sec)
	case SectionCertifications:
		for _, item := range sec.Items {
			r.para(r.styles.Text, item, entryIndent)
		}
	case SectionHobbies:
		for _, item := range sec.Items {
			r.bullet(r.styles.Text, "› ", item, entryIndent)
		}
	default:
		for i, e := range sec.Entries {
			if i > 0 {
				r.blank()
			}
			r.entry(e)
		}
		if sec.ID == SectionExperience && r.cfg.timeline {
			r.timeline(Timeline(doc, r.cfg.currentYear))
		}
	}
}

func (r *termRenderer) entry(e Entry) {
	r.para(r.styles.Subheading, e.Title, entryIndent)
	if e.Subtitle != "" {
		r.para(r.styles.Text, e.Subtitle, entryIndent)
	}
	if e.Dates != "" {
		r.para(r.styles.Muted, e.Dates, entryIndent)
	}
	for _, l := range e.Body {
		st := r.styles.Text
		if l.Bold {
			st = r.styles.Strong
		}
		if len(e.Body) > 1 || e.Subtitle != "" {
			r.bullet(st, "• ", l.Text, bodyIndent)
		} else {
			r.para(st, l.Text, bodyIndent)
		}
	}
	if e.Note != "" {
		r.para(r.styles.Muted, e.Note, bodyIndent)
	}
	if len(e.Tags) > 0 {
		tags := make([]string, 0, len(e.Tags))
		for _, t := range e.Tags {
			tags = append(tags, "["+t+"]")
		}
		r.para(r.styles.Tag, strings.Join(tags, " "), bodyIndent)
	}
	for _, l := range e.Links {
		r.link(l, bodyIndent)
	}
}

func (r *termRenderer) skills(sec ViewSection) {
	for _, group := range sec.SkillGroups {
		r.para(r.styles.Subheading, group.Name, entryIndent)
		for _, s := range group.Skills {
			r.line(strings.Repeat(" ", bodyIndent) + padRight(r.paint(r.styles.Text, s.Name), skillNameCols) + " " + r.skillLevel(s))
		}
	}
	if len(sec.Languages) > 0 {
		r.para(r.styles.Subheading, "Languages", entryIndent)
		for _, l := range sec.Languages {
			r.line(strings.Repeat(" ", bodyIndent) + padRight(r.paint(r.styles.Text, l.Name), skillNameCols) + " " + r.paint(r.styles.Muted, l.Proficiency))
		}
	}
}

func (r *termRenderer) skillLevel(s Skill) string {
	if !s.Ranked() {
		return r.paint(r.styles.Placeholder, "unranked")
	}
	level := *s.Level
	filled := level * skillBarCells / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", skillBarCells-filled)
	return r.paint(r.styles.Bar, bar) + " " + r.paint(r.styles.Muted, fmt.Sprintf("%d%%", level))
}

func (r *termRenderer) timeline(spans []Span) {
	if len(spans) == 0 {
		return
	}
	r.blank()
	r.para(r.styles.Subheading, "Timeline", entryIndent)
	for _, s := range spans {
		label := fmt.Sprintf("%d-%d", s.Start, s.End)
		years := s.Years()
		cells := years
		if cells > skillBarCells {
			cells = skillBarCells
		}
		line := padRight(r.paint(r.styles.Muted, label), 10) +
			r.paint(r.styles.Bar, strings.Repeat("█", cells)) +
			" " + r.paint(r.styles.Text, fmt.Sprintf("%s (%s) %dy", s.Organization, s.Role, years))
		r.line(strings.Repeat(" ", bodyIndent) + line)
	}
}
