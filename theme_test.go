package cvdash

import "testing"

func TestThemeByNameBuiltins(t *testing.T) {
	expected := []string{
		"default",
		"gruvbox",
		"nord",
		"dracula",
		"solarized-light",
		"boring",
	}
	for _, name := range expected {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}

	available := AvailableThemes()
	if len(available) != len(expected) {
		t.Fatalf("expected %d themes, got %v", len(expected), available)
	}
	for i := 1; i < len(available); i++ {
		if available[i-1] > available[i] {
			t.Fatalf("expected sorted theme names, got %v", available)
		}
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	th, ok := ThemeByName("  NORD ")
	if !ok || th.Name() != "nord" {
		t.Fatalf("expected nord, got %v %v", th, ok)
	}
	th, ok = ThemeByName("")
	if !ok || th.Name() != "default" {
		t.Fatalf("expected empty name to select default, got %v", th)
	}
	if _, ok := ThemeByName("missing"); ok {
		t.Fatalf("expected unknown theme to be rejected")
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	if BoringTheme().Styles() != (Styles{}) {
		t.Fatalf("expected boring theme to carry no ANSI prefixes")
	}
	if DefaultTheme().Styles().Heading.Prefix == "" {
		t.Fatalf("expected default theme heading to be styled")
	}
}
