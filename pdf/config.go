package pdf

// Config holds PDF rendering settings. Lengths are in Unit; font sizes are
// in points.
type Config struct {
	PageSize           string
	Orientation        string
	Unit               string
	Margin             float64
	FontFamily         string
	FontSize           float64
	TitleSize          float64
	NameSize           float64
	JobTitleSize       float64
	FooterSize         float64
	LineHeight         float64
	HeaderHeight       float64
	HeaderLineStep     float64
	PhotoSize          float64
	MinBlockHeight     float64
	SectionSpacing     float64
	CellPadding        float64
	RuleWidth          float64
	RegularFont        string
	BoldFont           string
	RegularFontBytes   []byte
	BoldFontBytes      []byte
	TextRGB            [3]int
	HeadFillRGB        [3]int
	HeadTextRGB        [3]int
	AltRowFillRGB      [3]int
	ExtendedSections   bool
	DisableCompression bool
}

const utf8FontFamily = "cvdash"

// DefaultConfig returns the A4 portrait layout of the exported resume.
func DefaultConfig() Config {
	return Config{
		PageSize:       "A4",
		Orientation:    "P",
		Unit:           "mm",
		Margin:         10,
		FontFamily:     "Helvetica",
		FontSize:       12,
		TitleSize:      16,
		NameSize:       18,
		JobTitleSize:   14,
		FooterSize:     10,
		LineHeight:     1.15,
		HeaderHeight:   80,
		HeaderLineStep: 10,
		PhotoSize:      40,
		MinBlockHeight: 20,
		SectionSpacing: 10,
		CellPadding:    1.76,
		RuleWidth:      0.5,
		TextRGB:        [3]int{0, 0, 0},
		HeadFillRGB:    [3]int{0, 123, 255},
		HeadTextRGB:    [3]int{255, 255, 255},
		AltRowFillRGB:  [3]int{240, 240, 240},
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Orientation != "" {
		dst.Orientation = src.Orientation
	}
	if src.Unit != "" {
		dst.Unit = src.Unit
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.TitleSize > 0 {
		dst.TitleSize = src.TitleSize
	}
	if src.NameSize > 0 {
		dst.NameSize = src.NameSize
	}
	if src.JobTitleSize > 0 {
		dst.JobTitleSize = src.JobTitleSize
	}
	if src.FooterSize > 0 {
		dst.FooterSize = src.FooterSize
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.HeaderHeight > 0 {
		dst.HeaderHeight = src.HeaderHeight
	}
	if src.HeaderLineStep > 0 {
		dst.HeaderLineStep = src.HeaderLineStep
	}
	if src.PhotoSize > 0 {
		dst.PhotoSize = src.PhotoSize
	}
	if src.MinBlockHeight > 0 {
		dst.MinBlockHeight = src.MinBlockHeight
	}
	if src.SectionSpacing > 0 {
		dst.SectionSpacing = src.SectionSpacing
	}
	if src.CellPadding > 0 {
		dst.CellPadding = src.CellPadding
	}
	if src.RuleWidth > 0 {
		dst.RuleWidth = src.RuleWidth
	}
	if src.RegularFont != "" {
		dst.RegularFont = src.RegularFont
	}
	if src.BoldFont != "" {
		dst.BoldFont = src.BoldFont
	}
	if len(src.RegularFontBytes) > 0 {
		dst.RegularFontBytes = src.RegularFontBytes
	}
	if len(src.BoldFontBytes) > 0 {
		dst.BoldFontBytes = src.BoldFontBytes
	}
	if src.TextRGB != [3]int{} {
		dst.TextRGB = src.TextRGB
	}
	if src.HeadFillRGB != [3]int{} {
		dst.HeadFillRGB = src.HeadFillRGB
	}
	if src.HeadTextRGB != [3]int{} {
		dst.HeadTextRGB = src.HeadTextRGB
	}
	if src.AltRowFillRGB != [3]int{} {
		dst.AltRowFillRGB = src.AltRowFillRGB
	}
	if src.ExtendedSections {
		dst.ExtendedSections = true
	}
	if src.DisableCompression {
		dst.DisableCompression = true
	}
}
