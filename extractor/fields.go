package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/Aashish23092/payslip-engine/dto"
)

var (
	wsRE       = regexp.MustCompile(`\s+`)
	panShapeRE = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
)

// FieldExtractor applies catalog patterns against whole-document text.
type FieldExtractor struct {
	cat *catalog.Catalog
}

func NewFieldExtractor(cat *catalog.Catalog) *FieldExtractor {
	return &FieldExtractor{cat: cat}
}

// Extract normalizes whitespace and runs every catalog pattern except the
// date group (handled by the period fallback chain). First match wins per
// pattern; captures are trimmed and de-comma'd. Absent fields are simply
// absent from the result.
func (f *FieldExtractor) Extract(text string) dto.ExtractedFields {
	text = strings.TrimSpace(wsRE.ReplaceAllString(text, " "))
	fields := make(dto.ExtractedFields)

	groups := []catalog.Group{
		catalog.GroupPersonal,
		catalog.GroupFinancial,
		catalog.GroupEarnings,
		catalog.GroupDeductions,
		catalog.GroupContact,
		catalog.GroupCustom,
	}
	for _, group := range groups {
		for _, entry := range f.cat.Lookup(group) {
			if _, done := fields[entry.Name]; done {
				continue
			}
			m := entry.Regex.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			val := m[0]
			if len(m) > 1 {
				val = m[1]
			}
			val = strings.ReplaceAll(strings.TrimSpace(val), ",", "")
			if val != "" {
				fields[entry.Name] = val
			}
		}
	}

	if _, ok := fields[catalog.FieldPANNumber]; !ok {
		if pan := panShapeRE.FindString(text); pan != "" {
			fields[catalog.FieldPANNumber] = pan
		}
	}

	f.extractPeriod(text, fields)
	return fields
}

// extractPeriod fills statementPeriod, month and year via a strict fallback
// order. The first rule that yields a piece wins; later rules only fill what
// is still missing.
func (f *FieldExtractor) extractPeriod(text string, fields dto.ExtractedFields) {
	var month string
	var year int

	// (a) explicit statement-period phrase
	for _, entry := range f.cat.Lookup(catalog.GroupDate) {
		if entry.Name != catalog.FieldStatementPeriod {
			continue
		}
		if m := entry.Regex.FindStringSubmatch(text); len(m) > 1 {
			period := strings.TrimSpace(m[1])
			fields[catalog.FieldStatementPeriod] = period
			month, year = decodePeriod(period)
		}
	}

	// (b) numeric DD/MM/YYYY anywhere in the document
	if month == "" || year == 0 {
		if m := dayMonthRE.FindStringSubmatch(text); m != nil {
			mm, _ := strconv.Atoi(m[2])
			if name := monthName(mm); name != "" {
				if month == "" {
					month = name
				}
				if year == 0 {
					year, _ = strconv.Atoi(m[3])
				}
			}
		}
	}

	// (c) DD MonthName YYYY
	if month == "" || year == 0 {
		if m := dayNameRE.FindStringSubmatch(text); m != nil {
			if n, ok := monthNumber(m[2]); ok {
				if month == "" {
					month = monthName(n)
				}
				if year == 0 {
					year, _ = strconv.Atoi(m[3])
				}
			}
		}
	}

	// (d) bare MonthName YYYY, discarded unless the token is a real month
	if month == "" || year == 0 {
		for _, m := range monthYearRE.FindAllStringSubmatch(text, -1) {
			n, ok := monthNumber(m[1])
			if !ok {
				continue
			}
			if month == "" {
				month = monthName(n)
			}
			if year == 0 {
				year, _ = strconv.Atoi(m[2])
			}
			break
		}
	}

	// (e) separate "Month: X" / "Year: YYYY" patterns
	for _, entry := range f.cat.Lookup(catalog.GroupDate) {
		switch entry.Name {
		case catalog.FieldMonth:
			if month != "" {
				continue
			}
			if m := entry.Regex.FindStringSubmatch(text); len(m) > 1 {
				if n, ok := monthNumber(m[1]); ok {
					month = monthName(n)
				}
			}
		case catalog.FieldYear:
			if year != 0 {
				continue
			}
			if m := entry.Regex.FindStringSubmatch(text); len(m) > 1 {
				year, _ = strconv.Atoi(m[1])
			}
		}
	}

	// (f) bare 4-digit year as last resort
	if year == 0 {
		if m := bareYearRE.FindStringSubmatch(text); m != nil {
			year, _ = strconv.Atoi(m[1])
		}
	}

	if month != "" {
		fields[catalog.FieldMonth] = month
	}
	if year != 0 {
		fields[catalog.FieldYear] = strconv.Itoa(year)
	}
}
