package extractor

import (
	"strings"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/shopspring/decimal"
)

// UnknownCodeTracker is notified when a code could not be classified by any
// standard or heuristic rule, so new abbreviations can be reviewed and
// promoted into the standard lists offline.
type UnknownCodeTracker interface {
	TrackUnknown(code string, amount decimal.Decimal)
}

var (
	earningKeywords   = []string{"PAY", "ALLOW", "SALARY", "WAGE"}
	deductionKeywords = []string{"TAX", "FUND", "FEE", "RECOVERY"}
)

// Classifier assigns raw code/amount pairs to earnings or deductions.
// Decision order: blacklists, standard list membership, keyword heuristic,
// default-by-amount. A single reconciliation pass afterwards moves known
// codes that an earlier heuristic mis-bucketed.
type Classifier struct {
	cat     *catalog.Catalog
	tracker UnknownCodeTracker
}

func NewClassifier(cat *catalog.Catalog, tracker UnknownCodeTracker) *Classifier {
	return &Classifier{cat: cat, tracker: tracker}
}

func (c *Classifier) Classify(raw map[string]decimal.Decimal) (map[string]decimal.Decimal, map[string]decimal.Decimal) {
	earnings := make(map[string]decimal.Decimal)
	deductions := make(map[string]decimal.Decimal)
	th := c.cat.Thresholds()

	for code, amount := range raw {
		switch {
		case c.cat.IsBlacklisted(code):
			// never a financial code
		case c.cat.IsStandardEarning(code):
			c.put(earnings, catalog.ContextEarnings, code, amount, th.EarningsMin)
		case c.cat.IsStandardDeduction(code):
			c.put(deductions, catalog.ContextDeductions, code, amount, th.DeductionsMin)
		case containsAny(code, earningKeywords):
			c.put(earnings, catalog.ContextEarnings, code, amount, th.EarningsMin)
		case containsAny(code, deductionKeywords):
			c.put(deductions, catalog.ContextDeductions, code, amount, th.DeductionsMin)
		default:
			if c.tracker != nil {
				c.tracker.TrackUnknown(code, amount)
			}
			if amount.GreaterThanOrEqual(th.EarningsMin) {
				c.put(earnings, catalog.ContextEarnings, code, amount, th.EarningsMin)
			}
		}
	}

	c.reconcile(earnings, deductions)
	return earnings, deductions
}

func (c *Classifier) put(bucket map[string]decimal.Decimal, ctx catalog.Context, code string, amount, min decimal.Decimal) {
	if amount.LessThan(min) {
		return
	}
	if c.cat.IsContextBlacklisted(ctx, code) {
		return
	}
	bucket[code] = amount
}

// reconcile runs exactly once: standard earnings codes found among the
// deductions move to earnings, and vice versa.
func (c *Classifier) reconcile(earnings, deductions map[string]decimal.Decimal) {
	for _, code := range keys(deductions) {
		if c.cat.IsStandardEarning(code) {
			earnings[code] = deductions[code]
			delete(deductions, code)
		}
	}
	for _, code := range keys(earnings) {
		if c.cat.IsStandardDeduction(code) {
			deductions[code] = earnings[code]
			delete(earnings, code)
		}
	}
}

func containsAny(code string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(code, kw) {
			return true
		}
	}
	return false
}

func keys(m map[string]decimal.Decimal) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
