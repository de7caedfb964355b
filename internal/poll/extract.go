package poll

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// origin is the reference date for numeric date IDs: an ID of n encodes
// origin plus n days.
var origin = time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	trailingDigitsRe = regexp.MustCompile(`(\d+)$`)
	dateRangeRe      = regexp.MustCompile(`(\d{1,2})/(\d{1,2})\s*-\s*(\d{1,2})/(\d{1,2}),\s*(\d{4})`)
	dateSingleRe     = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	anchorRe         = regexp.MustCompile(`(?is)<a[^>]*>(.*?)</a>`)
	tagRe            = regexp.MustCompile(`<[^>]+>`)
	sponsorRe        = regexp.MustCompile(`(?i)\^\s*Sponsor:\s*([^^]+)\^`)
)

// dateStep attempts one extraction strategy and reports whether it
// produced a canonical date.
type dateStep func(s string) (string, bool)

// Strategies in priority order; the first hit wins and a failed parse
// falls through to the next rather than erroring.
var dateSteps = []dateStep{dateFromID, dateFromRange, dateFromSingle}

// ExtractDate converts a raw Dates cell to canonical YYYY-MM-DD form.
// It tries, in order: the numeric day-offset ID after the last '@', the
// end date of an 'MM/DD - MM/DD, YYYY' range, and a lone 'MM/DD/YYYY'.
// Text matching none of these is returned unchanged.
func ExtractDate(s string) string {
	for _, step := range dateSteps {
		if out, ok := step(s); ok {
			return out
		}
	}
	return s
}

func dateFromID(s string) (string, bool) {
	i := strings.LastIndex(s, "@")
	if i < 0 {
		return "", false
	}
	m := trailingDigitsRe.FindStringSubmatch(strings.TrimSpace(s[i+1:]))
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	d := origin.AddDate(0, 0, n)
	if d.Year() > 9999 {
		return "", false
	}
	return d.Format("2006-01-02"), true
}

func dateFromRange(s string) (string, bool) {
	m := dateRangeRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	// The second MM/DD pair plus the year is the poll's end date.
	mm, _ := strconv.Atoi(m[3])
	dd, _ := strconv.Atoi(m[4])
	yyyy, _ := strconv.Atoi(m[5])
	return formatDate(yyyy, mm, dd)
}

func dateFromSingle(s string) (string, bool) {
	m := dateSingleRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	mm, _ := strconv.Atoi(m[1])
	dd, _ := strconv.Atoi(m[2])
	yyyy, _ := strconv.Atoi(m[3])
	return formatDate(yyyy, mm, dd)
}

func formatDate(y, m, d int) (string, bool) {
	if !validDate(y, m, d) {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

// validDate reports whether y/m/d is a real calendar date, catching
// values like month 13 that time.Date would silently normalize.
func validDate(y, m, d int) bool {
	if y < 1 || m < 1 || m > 12 || d < 1 || d > 31 {
		return false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return t.Year() == y && int(t.Month()) == m && t.Day() == d
}

// ExtractPollster reduces a raw Pollster cell to the bare name: the
// inner text of the first anchor tag when one is present, else the text
// before the first caret, else the text with any remaining tags removed.
func ExtractPollster(s string) string {
	if m := anchorRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	if i := strings.Index(s, "^"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}

// ExtractSponsor pulls the content of a caret-delimited "Sponsor: X"
// segment out of a raw Pollster cell, or returns an empty string when
// no such segment exists.
func ExtractSponsor(s string) string {
	if m := sponsorRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
