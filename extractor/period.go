package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// Canonical month table: full names plus three-letter abbreviations,
// matched case-insensitively. A token outside this table is never a month.
var monthNumbers = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5,
	"june": 6, "july": 7, "august": 8, "september": 9, "october": 10,
	"november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7,
	"aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var monthFullNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var (
	monthYearRE    = regexp.MustCompile(`\b([A-Za-z]+)\s+([0-9]{4})\b`)
	dayMonthRE     = regexp.MustCompile(`\b([0-9]{1,2})[/-]([0-9]{1,2})[/-]([0-9]{4})\b`)
	dayNameRE      = regexp.MustCompile(`\b([0-9]{1,2})\s+([A-Za-z]+)\s+([0-9]{4})\b`)
	numericMonthRE = regexp.MustCompile(`\b([0-9]{1,2})[/-]([0-9]{4})\b`)
	bareYearRE     = regexp.MustCompile(`\b(19[0-9]{2}|20[0-9]{2})\b`)
)

// monthNumber validates a putative month token against the canonical table.
func monthNumber(token string) (int, bool) {
	n, ok := monthNumbers[strings.ToLower(strings.TrimSpace(token))]
	return n, ok
}

// monthName returns the full canonical name for 1..12, else "".
func monthName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return monthFullNames[n-1]
}

// decodePeriod resolves a statement-period string like "March 2024",
// "12/2023" or "15/03/2024" into a canonical month name and year. Either
// piece may come back empty/zero when the string does not yield it.
func decodePeriod(s string) (string, int) {
	if m := monthYearRE.FindStringSubmatch(s); m != nil {
		if n, ok := monthNumber(m[1]); ok {
			year, _ := strconv.Atoi(m[2])
			return monthName(n), year
		}
	}
	if m := dayMonthRE.FindStringSubmatch(s); m != nil {
		mm, _ := strconv.Atoi(m[2])
		if name := monthName(mm); name != "" {
			year, _ := strconv.Atoi(m[3])
			return name, year
		}
	}
	if m := numericMonthRE.FindStringSubmatch(s); m != nil {
		mm, _ := strconv.Atoi(m[1])
		if name := monthName(mm); name != "" {
			year, _ := strconv.Atoi(m[2])
			return name, year
		}
	}
	if m := bareYearRE.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		return "", year
	}
	return "", 0
}
