package cvdash

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

// osc8Terminals are TERM_PROGRAM values known to render OSC 8 links.
var osc8Terminals = map[string]bool{
	"iTerm.app": true,
	"WezTerm":   true,
	"vscode":    true,
	"ghostty":   true,
}

// DetectOSC8Support reports whether the current terminal likely renders OSC 8
// hyperlinks. CVDASH_OSC8=0 or 1 overrides detection.
func DetectOSC8Support() bool {
	return detectOSC8(os.Getenv)
}

func detectOSC8(getenv func(string) string) bool {
	if v := getenv("CVDASH_OSC8"); v != "" {
		on, err := strconv.ParseBool(v)
		return err == nil && on
	}
	if getenv("OSC8") == "0" {
		return false
	}
	if getenv("DOMTERM") != "" || getenv("WT_SESSION") != "" {
		return true
	}
	if osc8Terminals[getenv("TERM_PROGRAM")] {
		return true
	}
	if strings.Contains(strings.ToLower(getenv("TERM")), "kitty") {
		return true
	}
	if n, err := strconv.Atoi(getenv("VTE_VERSION")); err == nil && n >= 5000 {
		return true
	}
	return false
}

// hyperlink wraps text in an OSC 8 link to url.
func hyperlink(text, url string) string {
	return osc8Start + url + "\x1b\\" + text + osc8End
}
