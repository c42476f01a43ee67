package cvdash

import "testing"

func TestDetectOSC8(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "bare", env: nil, want: false},
		{name: "wezterm", env: map[string]string{"TERM_PROGRAM": "WezTerm"}, want: true},
		{name: "kitty", env: map[string]string{"TERM": "xterm-kitty"}, want: true},
		{name: "old vte", env: map[string]string{"VTE_VERSION": "4800"}, want: false},
		{name: "new vte", env: map[string]string{"VTE_VERSION": "6003"}, want: true},
		{name: "opt out", env: map[string]string{"OSC8": "0", "WT_SESSION": "1"}, want: false},
		{name: "override on", env: map[string]string{"CVDASH_OSC8": "1"}, want: true},
		{name: "override off", env: map[string]string{"CVDASH_OSC8": "false", "TERM_PROGRAM": "vscode"}, want: false},
	}
	for _, tc := range cases {
		got := detectOSC8(func(k string) string { return tc.env[k] })
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestHyperlinkFormat(t *testing.T) {
	got := hyperlink("site", "https://example.com")
	want := "\x1b]8;;https://example.com\x1b\\site\x1b]8;;\x1b\\"
	if got != want {
		t.Fatalf("unexpected hyperlink %q", got)
	}
}
