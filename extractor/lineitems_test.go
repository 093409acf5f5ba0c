package extractor

import (
	"testing"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountEqual(t *testing.T, raw map[string]decimal.Decimal, code string, want int64) {
	t.Helper()
	got, ok := raw[code]
	require.True(t, ok, "missing code %s", code)
	assert.True(t, got.Equal(decimal.NewFromInt(want)), "code %s: got %s want %d", code, got, want)
}

func TestExtractLineItemsWithoutHeaders(t *testing.T) {
	raw := NewLineItemExtractor(catalog.New()).Extract("BPAY 5000 DA 1200 DSOP 1500 ITAX 2000")

	require.Len(t, raw, 4)
	amountEqual(t, raw, "BPAY", 5000)
	amountEqual(t, raw, "DA", 1200)
	amountEqual(t, raw, "DSOP", 1500)
	amountEqual(t, raw, "ITAX", 2000)
}

func TestExtractLineItemsSectionScoped(t *testing.T) {
	text := `
		EARNINGS
		DESCRIPTION AMOUNT
		BPAY 136400
		DA 6240
		MSP 15500
		DEDUCTIONS
		DSOP 8184
		AGIF 10000
		ITAX 45,000
	`

	raw := NewLineItemExtractor(catalog.New()).Extract(text)

	amountEqual(t, raw, "BPAY", 136400)
	amountEqual(t, raw, "DA", 6240)
	amountEqual(t, raw, "MSP", 15500)
	amountEqual(t, raw, "DSOP", 8184)
	amountEqual(t, raw, "AGIF", 10000)
	amountEqual(t, raw, "ITAX", 45000)

	// headers never make it in as codes
	_, ok := raw["DESCRIPTION"]
	assert.False(t, ok)
}

func TestExtractLineItemsTwoColumnLayout(t *testing.T) {
	raw := NewLineItemExtractor(catalog.New()).Extract("BPAY 136400 DSOP 8184 MSP 15500 AGIF 10000")

	amountEqual(t, raw, "BPAY", 136400)
	amountEqual(t, raw, "DSOP", 8184)
	amountEqual(t, raw, "MSP", 15500)
	amountEqual(t, raw, "AGIF", 10000)
}

func TestExtractLineItemsNormalizesCodes(t *testing.T) {
	raw := NewLineItemExtractor(catalog.New()).Extract("ARR-RSHNA 5000 3600DSOP 1500")

	// hyphen qualifier stripped; explicit row amount wins over the embedded one
	amountEqual(t, raw, "RSHNA", 5000)
	amountEqual(t, raw, "DSOP", 1500)
}

func TestExtractLineItemsMergedTokenCarriesAmount(t *testing.T) {
	raw := NewLineItemExtractor(catalog.New()).Extract("arrears row 3600DSOP end")

	// no separate amount on the row, so the embedded value is used
	amountEqual(t, raw, "DSOP", 3600)
}

func TestExtractLineItemsLastWriteWins(t *testing.T) {
	raw := NewLineItemExtractor(catalog.New()).Extract("HRA 1000 noise HRA 2000")

	amountEqual(t, raw, "HRA", 2000)
}

func TestExtractLineItemsDecimalAmounts(t *testing.T) {
	raw := NewLineItemExtractor(catalog.New()).Extract("CGHS 337.50")

	got, ok := raw["CGHS"]
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("337.50")))
}
