package cvdash

import "testing"

func TestTruncateWithEllipsis(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"Alex Morgan", 5, "Alex…"},
		{"Alex", 1, "…"},
		{"Alex", 0, ""},
	}
	for _, tc := range cases {
		if got := truncateWithEllipsis(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestFitURL(t *testing.T) {
	url := "https://github.com/alexmorgan"
	if got := fitURL(url, 40); got != url {
		t.Fatalf("expected url unchanged, got %q", got)
	}
	if got := fitURL(url, 21); got != "github.com/alexmorgan" {
		t.Fatalf("expected scheme dropped, got %q", got)
	}
	if got := fitURL(url, 10); got != "https://g…" {
		t.Fatalf("expected truncation, got %q", got)
	}
}

func TestPadRightIgnoresEscapes(t *testing.T) {
	got := padRight("\x1b[1mGo\x1b[0m", 5)
	if got != "\x1b[1mGo\x1b[0m   " {
		t.Fatalf("unexpected padding %q", got)
	}
}
