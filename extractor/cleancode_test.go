package extractor

import (
	"testing"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeNumericPrefix(t *testing.T) {
	norm := NewNormalizer(catalog.New())

	clean, embedded, ok := norm.Normalize("3600DSOP")

	assert.Equal(t, "DSOP", clean)
	assert.True(t, ok)
	assert.True(t, embedded.Equal(decimal.NewFromInt(3600)))
}

func TestNormalizeNumericPrefixLowercaseTail(t *testing.T) {
	norm := NewNormalizer(catalog.New())

	clean, embedded, ok := norm.Normalize("1200Hra")

	assert.Equal(t, "HRA", clean)
	assert.True(t, ok)
	assert.True(t, embedded.Equal(decimal.NewFromInt(1200)))
}

func TestNormalizeHyphenatedAbbreviation(t *testing.T) {
	norm := NewNormalizer(catalog.New())

	// alphabetic suffix: the qualifier prefix is dropped, no embedded value
	clean, _, ok := norm.Normalize("ARR-RSHNA")

	assert.Equal(t, "RSHNA", clean)
	assert.False(t, ok)
}

func TestNormalizeHyphenatedNumericSuffix(t *testing.T) {
	norm := NewNormalizer(catalog.New())

	clean, embedded, ok := norm.Normalize("ARR-3600")

	assert.Equal(t, "ARR", clean)
	assert.True(t, ok)
	assert.True(t, embedded.Equal(decimal.NewFromInt(3600)))
}

func TestNormalizePassThrough(t *testing.T) {
	norm := NewNormalizer(catalog.New())

	clean, _, ok := norm.Normalize("HRA")

	assert.Equal(t, "HRA", clean)
	assert.False(t, ok)
}
