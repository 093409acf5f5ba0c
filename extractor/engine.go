// Package extractor turns unstructured payslip text into a structured
// financial record. The pipeline is a pure, synchronous transformation with
// named stages: field extraction, tabular line-item extraction (through the
// clean-code normalizer), classification, validation and aggregation.
package extractor

import (
	"time"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/Aashish23092/payslip-engine/dto"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Engine wires the pipeline stages against one catalog. Safe for concurrent
// use; only catalog.AddPattern mutates shared state.
type Engine struct {
	cat     *catalog.Catalog
	log     zerolog.Logger
	tracker UnknownCodeTracker
	now     func() time.Time

	fields     *FieldExtractor
	items      *LineItemExtractor
	classifier *Classifier
	validator  *Validator
	builder    *Builder
}

type Option func(*Engine)

func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithTracker registers the unknown-abbreviation collaborator.
func WithTracker(t UnknownCodeTracker) Option {
	return func(e *Engine) { e.tracker = t }
}

// WithClock overrides the clock used for period fallbacks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{cat: cat, log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	e.fields = NewFieldExtractor(cat)
	e.items = NewLineItemExtractor(cat)
	e.classifier = NewClassifier(cat, e.tracker)
	e.validator = NewValidator()
	e.builder = NewBuilder(cat, e.now)
	return e
}

// Parse runs the full pipeline over one payslip's text. It never fails: a
// partially matching or unfamiliar layout yields a sparse record rather
// than an error.
func (e *Engine) Parse(text string) dto.PayslipRecord {
	fields := e.fields.Extract(text)
	raw := e.items.Extract(text)

	earnings, deductions := e.classifier.Classify(raw)
	earnings = e.validator.Validate(earnings)
	deductions = e.validator.Validate(deductions)
	e.seedOverrides(fields, earnings, deductions)

	rec := e.builder.Build(fields, earnings, deductions)

	e.log.Debug().
		Int("fields", len(fields)).
		Int("line_items", len(raw)).
		Int("earnings", len(rec.Earnings)).
		Int("deductions", len(rec.Deductions)).
		Str("credits", rec.Credits.String()).
		Str("debits", rec.Debits.String()).
		Msg("payslip parsed")

	return rec
}

// seedOverrides carries organization-supplied grand totals into the maps
// under reserved keys. Runs after validation: the line-item bounds do not
// apply to whole-slip totals.
func (e *Engine) seedOverrides(fields dto.ExtractedFields, earnings, deductions map[string]decimal.Decimal) {
	seed := func(m map[string]decimal.Decimal, field, key string) {
		s, ok := fields[field]
		if !ok {
			return
		}
		if v, err := decimal.NewFromString(s); err == nil {
			m[key] = v
		}
	}
	seed(earnings, catalog.FieldGrossPay, catalog.KeyCreditsOverride)
	seed(deductions, catalog.FieldTotalDeductions, catalog.KeyDebitsOverride)
	seed(deductions, catalog.FieldDSOPTotal, catalog.KeyDSOPOverride)
	seed(deductions, catalog.FieldTaxTotal, catalog.KeyTaxOverride)
}
