package cleaning

import (
	"strings"
	"time"
)

// DateLayoutISO is the canonical output format for cleaned dates.
const DateLayoutISO = "2006-01-02"

// commonLayouts are tried in order when standardizing a date cell. US-style
// month-first layouts come before day-first ones because that is what the
// spreadsheets this tool ingests overwhelmingly use.
var commonLayouts = []string{
	DateLayoutISO,
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006/01/02",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
}

// StandardizeDate normalizes a date string to YYYY-MM-DD. Input that matches
// no known layout is returned unchanged; the core does not validate dates,
// so an odd spelling is passed through rather than dropped.
func StandardizeDate(dateStr string) (string, bool) {
	cleaned := strings.TrimSpace(dateStr)
	if cleaned == "" {
		return dateStr, false
	}

	for _, layout := range commonLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format(DateLayoutISO), true
		}
	}
	return dateStr, false
}
