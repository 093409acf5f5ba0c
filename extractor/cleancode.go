package extractor

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/shopspring/decimal"
)

var allDigitsRE = regexp.MustCompile(`^[0-9]+$`)

// Normalizer decomposes anomalous line codes into a canonical code plus an
// optional embedded value, using the catalog's merged-code patterns.
//
// Numeric-prefix merges ("3600DSOP") yield the alphabetic suffix as the
// clean code and the prefix as the embedded value. Hyphenated merges yield
// the numeric suffix as the embedded value when there is one ("ARR-3600"),
// otherwise the alphabetic suffix is the clean code with no embedded value
// ("ARR-RSHNA" -> "RSHNA").
type Normalizer struct {
	cat *catalog.Catalog
}

func NewNormalizer(cat *catalog.Catalog) *Normalizer {
	return &Normalizer{cat: cat}
}

// Normalize returns the clean code and, when the raw code embedded one, its
// value. ok reports whether an embedded value was found. Codes that match
// neither decomposition rule come back unchanged.
func (n *Normalizer) Normalize(code string) (string, decimal.Decimal, bool) {
	if m := n.cat.MergedPrefixPattern().FindStringSubmatch(code); m != nil {
		if v, err := decimal.NewFromString(m[1]); err == nil {
			return strings.ToUpper(m[2]), v, true
		}
	}
	if m := n.cat.MergedHyphenPattern().FindStringSubmatch(code); m != nil {
		if allDigitsRE.MatchString(m[2]) {
			if v, err := decimal.NewFromString(m[2]); err == nil {
				return m[1], v, true
			}
		}
		return strings.ToUpper(m[2]), decimal.Decimal{}, false
	}
	return code, decimal.Decimal{}, false
}
