// Package palette holds the ANSI color palettes behind the built-in themes.
package palette

// SGR attributes shared by every palette.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette assigns a 256-color foreground to each semantic role.
type Palette struct {
	Name        string
	Heading     string
	Subheading  string
	Text        string
	Muted       string
	Strong      string
	Highlight   string
	Tag         string
	LinkText    string
	LinkURL     string
	Bar         string
	Placeholder string
	Rule        string
}

func fg(n string) string {
	return "\x1b[38;5;" + n + "m"
}

var (
	// PaletteDefault follows the blue accent of the dashboard page.
	PaletteDefault = Palette{
		Name:        fg("255"),
		Heading:     fg("33"),
		Subheading:  fg("75"),
		Text:        fg("252"),
		Muted:       fg("245"),
		Strong:      fg("231"),
		Highlight:   fg("39"),
		Tag:         fg("117"),
		LinkText:    fg("39"),
		LinkURL:     fg("244"),
		Bar:         fg("33"),
		Placeholder: fg("242"),
		Rule:        fg("238"),
	}
	PaletteGruvbox = Palette{
		Name:        fg("223"),
		Heading:     fg("214"),
		Subheading:  fg("142"),
		Text:        fg("223"),
		Muted:       fg("245"),
		Strong:      fg("229"),
		Highlight:   fg("208"),
		Tag:         fg("108"),
		LinkText:    fg("109"),
		LinkURL:     fg("246"),
		Bar:         fg("142"),
		Placeholder: fg("243"),
		Rule:        fg("239"),
	}
	PaletteNord = Palette{
		Name:        fg("255"),
		Heading:     fg("110"),
		Subheading:  fg("109"),
		Text:        fg("253"),
		Muted:       fg("247"),
		Strong:      fg("255"),
		Highlight:   fg("150"),
		Tag:         fg("152"),
		LinkText:    fg("110"),
		LinkURL:     fg("245"),
		Bar:         fg("67"),
		Placeholder: fg("242"),
		Rule:        fg("59"),
	}
	PaletteDracula = Palette{
		Name:        fg("231"),
		Heading:     fg("141"),
		Subheading:  fg("212"),
		Text:        fg("253"),
		Muted:       fg("103"),
		Strong:      fg("231"),
		Highlight:   fg("84"),
		Tag:         fg("117"),
		LinkText:    fg("117"),
		LinkURL:     fg("103"),
		Bar:         fg("141"),
		Placeholder: fg("60"),
		Rule:        fg("60"),
	}
	PaletteSolarizedLight = Palette{
		Name:        fg("235"),
		Heading:     fg("33"),
		Subheading:  fg("37"),
		Text:        fg("240"),
		Muted:       fg("245"),
		Strong:      fg("235"),
		Highlight:   fg("166"),
		Tag:         fg("64"),
		LinkText:    fg("33"),
		LinkURL:     fg("244"),
		Bar:         fg("37"),
		Placeholder: fg("246"),
		Rule:        fg("250"),
	}
)
