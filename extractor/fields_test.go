package extractor

import (
	"testing"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFieldsFromStatement(t *testing.T) {
	text := `
		Principal Controller of Defence Accounts (Officers)
		Statement Period: March 2024
		Name: Ravi Kumar
		A/C No - 12345678
		PAN No: ABCDE1234F
		Gross Pay: Rs. 1,61,940
		Net Remittance: 98,756
	`

	fields := NewFieldExtractor(catalog.New()).Extract(text)

	assert.Equal(t, "Ravi Kumar", fields[catalog.FieldName])
	assert.Equal(t, "12345678", fields[catalog.FieldAccountNumber])
	assert.Equal(t, "ABCDE1234F", fields[catalog.FieldPANNumber])
	assert.Equal(t, "161940", fields[catalog.FieldGrossPay])
	assert.Equal(t, "98756", fields[catalog.FieldNetRemittance])
	assert.Equal(t, "March 2024", fields[catalog.FieldStatementPeriod])
	assert.Equal(t, "March", fields[catalog.FieldMonth])
	assert.Equal(t, "2024", fields[catalog.FieldYear])
}

func TestExtractFieldsMisspelledMonthIsRejected(t *testing.T) {
	fields := NewFieldExtractor(catalog.New()).Extract("Pay Period: Marchh 2024")

	// "Marchh" fails the canonical month check; only the year survives
	_, hasMonth := fields[catalog.FieldMonth]
	assert.False(t, hasMonth)
	assert.Equal(t, "2024", fields[catalog.FieldYear])
}

func TestExtractFieldsNumericStatementPeriod(t *testing.T) {
	fields := NewFieldExtractor(catalog.New()).Extract("Statement Period: 12/2023")

	assert.Equal(t, "December", fields[catalog.FieldMonth])
	assert.Equal(t, "2023", fields[catalog.FieldYear])
}

func TestExtractFieldsNumericDateFallback(t *testing.T) {
	fields := NewFieldExtractor(catalog.New()).Extract("Prepared on 15/03/2024 for record")

	assert.Equal(t, "March", fields[catalog.FieldMonth])
	assert.Equal(t, "2024", fields[catalog.FieldYear])
}

func TestExtractFieldsDayMonthNameFallback(t *testing.T) {
	fields := NewFieldExtractor(catalog.New()).Extract("Issued 01 January 2025")

	assert.Equal(t, "January", fields[catalog.FieldMonth])
	assert.Equal(t, "2025", fields[catalog.FieldYear])
}

func TestExtractFieldsBareMonthNameAbbreviation(t *testing.T) {
	fields := NewFieldExtractor(catalog.New()).Extract("Salary for Aug 2023")

	assert.Equal(t, "August", fields[catalog.FieldMonth])
	assert.Equal(t, "2023", fields[catalog.FieldYear])
}

func TestExtractFieldsPANFallbackShape(t *testing.T) {
	// no PAN label anywhere; the bare shape is still picked up
	fields := NewFieldExtractor(catalog.New()).Extract("Taxpayer ref FGHIJ5678K on file")

	assert.Equal(t, "FGHIJ5678K", fields[catalog.FieldPANNumber])
}

func TestExtractFieldsAbsentFieldsAreOmitted(t *testing.T) {
	fields := NewFieldExtractor(catalog.New()).Extract("nothing useful here")

	_, hasName := fields[catalog.FieldName]
	_, hasPAN := fields[catalog.FieldPANNumber]
	assert.False(t, hasName)
	assert.False(t, hasPAN)
}

func TestExtractFieldsUsesRuntimePatterns(t *testing.T) {
	cat := catalog.New()
	require.NoError(t, cat.AddPattern("unitCode", `(?i)Unit\s*:?\s*([A-Z0-9]+)`))

	fields := NewFieldExtractor(cat).Extract("Unit: 4RAJRIF Station HQ")

	assert.Equal(t, "4RAJRIF", fields["unitCode"])
}
