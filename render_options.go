package cvdash

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8        bool
	timeline    bool
	currentYear int
}

// WithOSC8 enables or disables OSC 8 hyperlinks.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithTimeline appends a year timeline to the work experience section.
// Ongoing roles end at currentYear.
func WithTimeline(currentYear int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.timeline = true
		cfg.currentYear = currentYear
	}
}
