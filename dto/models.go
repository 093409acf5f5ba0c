package dto

import (
	"github.com/shopspring/decimal"
)

// Category is the bucket a classified line item lands in.
type Category string

const (
	CategoryEarning   Category = "earning"
	CategoryDeduction Category = "deduction"
	CategoryRejected  Category = "rejected"
)

// ExtractedFields is the flat result of whole-text pattern matching:
// pattern name -> trimmed, de-comma'd capture.
type ExtractedFields map[string]string

// RawLineItem is one CODE AMOUNT row matched in the payslip body.
type RawLineItem struct {
	Code   string
	Amount decimal.Decimal
}

// ClassifiedItem is a line item after classification.
type ClassifiedItem struct {
	Code     string
	Amount   decimal.Decimal
	Category Category
}

// PayslipRecord is the structured output of one extraction run.
// It is fully value-typed: re-running extraction on the same text
// yields an identical record.
type PayslipRecord struct {
	Month         string `json:"month"`
	Year          int    `json:"year"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	PANNumber     string `json:"pan_number"`

	Credits decimal.Decimal `json:"credits"`
	Debits  decimal.Decimal `json:"debits"`
	DSOP    decimal.Decimal `json:"dsop"`
	Tax     decimal.Decimal `json:"tax"`

	Earnings   map[string]decimal.Decimal `json:"earnings"`
	Deductions map[string]decimal.Decimal `json:"deductions"`

	// PeriodFallback is set when no period could be extracted and the
	// record was stamped with the current month/year instead.
	PeriodFallback bool `json:"period_fallback,omitempty"`
}

// TextQuality scores the extracted text so callers can treat sparse
// records as low confidence.
type TextQuality struct {
	LengthScore  float64  `json:"length_score"`
	KeywordScore float64  `json:"keyword_score"`
	FinalScore   float64  `json:"final_score"`
	Issues       []string `json:"issues,omitempty"`
}
