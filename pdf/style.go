package pdf

// pdfStyle is a font face, size and text color applied before drawing.
type pdfStyle struct {
	fontStyle string
	size      float64
	rgb       [3]int
}

func (l *layout) styleBody() pdfStyle {
	return pdfStyle{size: l.cfg.FontSize, rgb: l.cfg.TextRGB}
}

func (l *layout) styleBold() pdfStyle {
	return pdfStyle{fontStyle: "B", size: l.cfg.FontSize, rgb: l.cfg.TextRGB}
}

func (l *layout) styleTitle() pdfStyle {
	return pdfStyle{fontStyle: "B", size: l.cfg.TitleSize, rgb: l.cfg.TextRGB}
}

func (l *layout) styleName() pdfStyle {
	return pdfStyle{fontStyle: "B", size: l.cfg.NameSize, rgb: l.cfg.TextRGB}
}

func (l *layout) styleJobTitle() pdfStyle {
	return pdfStyle{size: l.cfg.JobTitleSize, rgb: l.cfg.TextRGB}
}

func (l *layout) styleFooter() pdfStyle {
	return pdfStyle{size: l.cfg.FooterSize, rgb: l.cfg.TextRGB}
}

func (l *layout) styleHead() pdfStyle {
	return pdfStyle{fontStyle: "B", size: l.cfg.FontSize, rgb: l.cfg.HeadTextRGB}
}

func (l *layout) applyStyle(st pdfStyle) {
	if l.styleSet && st == l.lastStyle {
		return
	}
	l.pdf.SetFont(l.family, st.fontStyle, st.size)
	l.pdf.SetTextColor(st.rgb[0], st.rgb[1], st.rgb[2])
	l.lastStyle = st
	l.styleSet = true
}

// lineHeight converts a font size in points to a line advance in layout
// units.
func (l *layout) lineHeight(size float64) float64 {
	return l.pdf.PointConvert(size) * l.cfg.LineHeight
}
