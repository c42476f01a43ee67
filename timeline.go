package cvdash

import (
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// Span is the year range of one work experience entry.
type Span struct {
	Organization string
	Role         string
	Start        int
	End          int
}

// Years returns the inclusive length of the span in years, at least 1.
func (s Span) Years() int {
	if s.End < s.Start {
		return 1
	}
	return s.End - s.Start + 1
}

// Timeline derives year spans from the work experience list. An end date of
// PresentMarker counts as currentYear. Entries without a parseable start
// year are left out; a missing end year collapses to the start year.
func Timeline(doc *Document, currentYear int) []Span {
	if !doc.WorkExperience.Available() {
		return nil
	}
	var out []Span
	for _, e := range doc.WorkExperience.Items {
		start, ok := parseYear(e.Dates.Start)
		if !ok {
			continue
		}
		end := start
		switch {
		case e.Dates.Ongoing():
			end = currentYear
		default:
			if y, ok := parseYear(e.Dates.End); ok {
				end = y
			}
		}
		out = append(out, Span{
			Organization: e.Organization,
			Role:         e.Role.Text,
			Start:        start,
			End:          end,
		})
	}
	return out
}

func parseYear(s string) (int, bool) {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return y, true
}
