package cvdash

import (
	"sort"
	"strings"

	"pkt.systems/cvdash/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the terminal view.
type Styles struct {
	Name        Style
	Heading     Style
	Subheading  Style
	Text        Style
	Muted       Style
	Strong      Style
	Highlight   Style
	Tag         Style
	LinkText    Style
	LinkURL     Style
	Bar         Style
	Placeholder Style
	Rule        Style
}

// Theme provides named styles for resume rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Name:        style(palette.Bold, p.Name),
		Heading:     style(palette.Bold, p.Heading),
		Subheading:  style(palette.Bold, p.Subheading),
		Text:        style(p.Text),
		Muted:       style(p.Muted),
		Strong:      style(palette.Bold, p.Strong),
		Highlight:   style(palette.Bold, p.Highlight),
		Tag:         style(p.Tag),
		LinkText:    style(palette.Underline, p.LinkText),
		LinkURL:     style(p.LinkURL),
		Bar:         style(p.Bar),
		Placeholder: style(palette.Italic, p.Placeholder),
		Rule:        style(p.Rule),
	}
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"dracula":         theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"boring":          theme{name: "boring", styles: Styles{}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme without any ANSI styling.
func BoringTheme() Theme {
	return builtinThemes["boring"]
}
