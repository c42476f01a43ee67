package cvdash

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

// fitURL shortens a URL for display, dropping the scheme before truncating.
func fitURL(url string, limit int) string {
	if ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}

// padRight pads s with spaces to width printable columns.
func padRight(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
