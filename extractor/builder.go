package extractor

import (
	"strconv"
	"time"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/Aashish23092/payslip-engine/dto"
	"github.com/shopspring/decimal"
)

// Builder resolves final totals through explicit precedence chains and
// assembles the output record. It never fails: every unresolved field
// degrades to a documented default (0, "Unknown", current period).
type Builder struct {
	cat *catalog.Catalog
	now func() time.Time
}

func NewBuilder(cat *catalog.Catalog, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{cat: cat, now: now}
}

// candidate is one resolver in a first-match-wins precedence chain.
type candidate func() (decimal.Decimal, bool)

func (b *Builder) Build(fields dto.ExtractedFields, earnings, deductions map[string]decimal.Decimal) dto.PayslipRecord {
	rec := dto.PayslipRecord{Name: "Unknown"}

	b.resolvePeriod(fields, &rec)

	if v, ok := fields[catalog.FieldName]; ok && v != "" {
		rec.Name = v
	}
	rec.AccountNumber = fields[catalog.FieldAccountNumber]
	rec.PANNumber = fields[catalog.FieldPANNumber]

	if v, ok := earnings[catalog.KeyCreditsOverride]; ok {
		rec.Credits = v
	} else {
		rec.Credits = sumItems(earnings)
	}
	if v, ok := deductions[catalog.KeyDebitsOverride]; ok {
		rec.Debits = v
	} else {
		rec.Debits = sumItems(deductions)
	}

	th := b.cat.Thresholds()
	rec.DSOP = resolveChain(th.DSOPMin,
		fieldAmount(fields, catalog.FieldDSOP),
		fieldAmount(fields, catalog.FieldDSOPSubscription),
		mapAmount(deductions, catalog.KeyDSOPOverride),
		mapAmount(deductions, "DSOP"),
		mapAmount(earnings, "DSOP"),
	)
	rec.Tax = resolveChain(th.TaxMin,
		fieldAmount(fields, catalog.FieldITax),
		fieldAmount(fields, catalog.FieldIncomeTaxDeducted),
		mapAmount(deductions, catalog.KeyTaxOverride),
		mapAmount(deductions, "ITAX"),
		mapAmount(earnings, "ITAX"),
	)

	rec.Earnings = stripReserved(earnings)
	rec.Deductions = stripReserved(deductions)
	return rec
}

// resolvePeriod decodes month/year from the statement period, then the
// separate month/year fields, then stamps the current period as a clearly
// flagged fallback.
func (b *Builder) resolvePeriod(fields dto.ExtractedFields, rec *dto.PayslipRecord) {
	var month string
	var year int

	if sp, ok := fields[catalog.FieldStatementPeriod]; ok {
		month, year = decodePeriod(sp)
	}
	if month == "" {
		if m, ok := fields[catalog.FieldMonth]; ok {
			if n, valid := monthNumber(m); valid {
				month = monthName(n)
			}
		}
	}
	if year == 0 {
		if y, ok := fields[catalog.FieldYear]; ok {
			year, _ = strconv.Atoi(y)
		}
	}
	if month == "" {
		month = monthName(int(b.now().Month()))
		rec.PeriodFallback = true
	}
	if year == 0 {
		year = b.now().Year()
		rec.PeriodFallback = true
	}

	rec.Month = month
	rec.Year = year
}

// resolveChain evaluates candidates in order; the first one that yields a
// value at or above min wins. If none qualifies the total is zero.
func resolveChain(min decimal.Decimal, candidates ...candidate) decimal.Decimal {
	for _, resolve := range candidates {
		if v, ok := resolve(); ok && v.GreaterThanOrEqual(min) {
			return v
		}
	}
	return decimal.Zero
}

func fieldAmount(fields dto.ExtractedFields, name string) candidate {
	return func() (decimal.Decimal, bool) {
		s, ok := fields[name]
		if !ok {
			return decimal.Zero, false
		}
		v, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return v, true
	}
}

func mapAmount(m map[string]decimal.Decimal, key string) candidate {
	return func() (decimal.Decimal, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func sumItems(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for code, amount := range m {
		if catalog.IsReservedKey(code) {
			continue
		}
		total = total.Add(amount)
	}
	return total
}

func stripReserved(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for code, amount := range m {
		if catalog.IsReservedKey(code) {
			continue
		}
		out[code] = amount
	}
	return out
}
