package extractor

import (
	"github.com/shopspring/decimal"
)

// Validator rejects amounts outside plausible bounds before aggregation:
// below 2 is noise, above 10,000,000 is implausible for a single line item.
type Validator struct {
	min decimal.Decimal
	max decimal.Decimal
}

func NewValidator() *Validator {
	return &Validator{
		min: decimal.NewFromInt(2),
		max: decimal.NewFromInt(10_000_000),
	}
}

// Validate returns a new map holding only the plausible entries; surviving
// entries are not mutated.
func (v *Validator) Validate(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for code, amount := range m {
		if amount.LessThan(v.min) || amount.GreaterThan(v.max) {
			continue
		}
		out[code] = amount
	}
	return out
}
