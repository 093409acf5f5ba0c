package extractor

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/shopspring/decimal"
)

var (
	// CODE AMOUNT row: an uppercase code token (optionally glued to a
	// numeric prefix) followed by a numeric amount.
	rowRE = regexp.MustCompile(`\b([0-9]*[A-Z][A-Z0-9-]+)\s+(?:Rs\.?\s*|₹\s*)?([0-9][0-9,]*(?:\.[0-9]+)?)\b`)

	// CODE AMOUNT CODE AMOUNT pairs for two-column layouts.
	pairRE = regexp.MustCompile(`\b([0-9]*[A-Z][A-Z0-9-]+)\s+([0-9][0-9,]*(?:\.[0-9]+)?)\s+([0-9]*[A-Z][A-Z0-9-]+)\s+([0-9][0-9,]*(?:\.[0-9]+)?)\b`)

	// Merged tokens carrying their amount inside the code, e.g. "3600DSOP"
	// standing alone with no trailing number.
	mergedTokenRE = regexp.MustCompile(`\b([0-9]+[A-Z][A-Z0-9-]*)\b`)

	sectionAnchorRE = regexp.MustCompile(`(?i)\bEARNINGS\b|\bDEDUCTIONS\b|आय|कटौती|Description\s+Amount`)
)

// LineItemExtractor scans body text for CODE AMOUNT rows and produces a raw
// code -> amount map. Every code passes through the Normalizer before being
// used as a key; later matches overwrite earlier ones for the same code.
type LineItemExtractor struct {
	cat  *catalog.Catalog
	norm *Normalizer
}

func NewLineItemExtractor(cat *catalog.Catalog) *LineItemExtractor {
	return &LineItemExtractor{cat: cat, norm: NewNormalizer(cat)}
}

// Extract merges three passes: rows scoped to text following a section
// anchor, an unscoped whole-document pass for payslips without headers, and
// a two-column pass. A final pass picks up merged tokens whose amount lives
// inside the code; an explicit row amount always wins over an embedded one.
func (l *LineItemExtractor) Extract(text string) map[string]decimal.Decimal {
	text = strings.TrimSpace(wsRE.ReplaceAllString(text, " "))
	raw := make(map[string]decimal.Decimal)

	for _, segment := range l.sections(text) {
		l.scanRows(segment, raw)
	}
	l.scanRows(text, raw)

	for _, m := range pairRE.FindAllStringSubmatch(text, -1) {
		l.record(raw, m[1], m[2])
		l.record(raw, m[3], m[4])
	}

	for _, m := range mergedTokenRE.FindAllStringSubmatch(text, -1) {
		clean, embedded, ok := l.norm.Normalize(m[1])
		if !ok {
			continue
		}
		if _, seen := raw[clean]; !seen {
			raw[clean] = embedded
		}
	}

	return raw
}

// sections returns the text slices following each section anchor, each
// scoped up to the next anchor.
func (l *LineItemExtractor) sections(text string) []string {
	anchors := sectionAnchorRE.FindAllStringIndex(text, -1)
	if len(anchors) == 0 {
		return nil
	}
	segments := make([]string, 0, len(anchors))
	for i, loc := range anchors {
		end := len(text)
		if i+1 < len(anchors) {
			end = anchors[i+1][0]
		}
		segments = append(segments, text[loc[1]:end])
	}
	return segments
}

func (l *LineItemExtractor) scanRows(text string, raw map[string]decimal.Decimal) {
	for _, m := range rowRE.FindAllStringSubmatch(text, -1) {
		l.record(raw, m[1], m[2])
	}
}

func (l *LineItemExtractor) record(raw map[string]decimal.Decimal, code, amountStr string) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(amountStr, ",", ""))
	if err != nil {
		return
	}
	// Row amount wins over any value embedded in the code itself.
	clean, _, _ := l.norm.Normalize(code)
	if clean == "" {
		return
	}
	raw[clean] = amount
}
