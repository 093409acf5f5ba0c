package extractor

import (
	"testing"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTracker struct {
	codes []string
}

func (r *recordingTracker) TrackUnknown(code string, amount decimal.Decimal) {
	r.codes = append(r.codes, code)
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestClassifyStandardCodes(t *testing.T) {
	c := NewClassifier(catalog.New(), nil)

	earnings, deductions := c.Classify(map[string]decimal.Decimal{
		"BPAY": d(5000),
		"DA":   d(1200),
		"DSOP": d(1500),
		"ITAX": d(2000),
	})

	require.Len(t, earnings, 2)
	require.Len(t, deductions, 2)
	assert.True(t, earnings["BPAY"].Equal(d(5000)))
	assert.True(t, earnings["DA"].Equal(d(1200)))
	assert.True(t, deductions["DSOP"].Equal(d(1500)))
	assert.True(t, deductions["ITAX"].Equal(d(2000)))
}

func TestClassifyDropsBlacklistedTokens(t *testing.T) {
	c := NewClassifier(catalog.New(), nil)

	earnings, deductions := c.Classify(map[string]decimal.Decimal{
		"EARNINGS": d(9000),
		"TOTAL":    d(161940),
		"III":      d(450),
		"HRA":      d(3800),
	})

	require.Len(t, earnings, 1)
	assert.Empty(t, deductions)
	assert.True(t, earnings["HRA"].Equal(d(3800)))
}

func TestClassifyDeductionThreshold(t *testing.T) {
	c := NewClassifier(catalog.New(), nil)

	// WATER is a standard deduction: 50 passes the threshold, 5 does not
	_, deductions := c.Classify(map[string]decimal.Decimal{"WATER": d(50)})
	assert.True(t, deductions["WATER"].Equal(d(50)))

	earnings, deductions := c.Classify(map[string]decimal.Decimal{"WATER": d(5)})
	assert.Empty(t, earnings)
	assert.Empty(t, deductions)
}

func TestClassifyKeywordHeuristics(t *testing.T) {
	c := NewClassifier(catalog.New(), nil)

	earnings, deductions := c.Classify(map[string]decimal.Decimal{
		"SPLALLOW":  d(500),  // ALLOW -> earning
		"CYCLEFUND": d(50),   // FUND -> deduction
		"CESSFEE":   d(25),   // FEE -> deduction
		"FLYPAY":    d(2500), // PAY -> earning
	})

	assert.True(t, earnings["SPLALLOW"].Equal(d(500)))
	assert.True(t, earnings["FLYPAY"].Equal(d(2500)))
	assert.True(t, deductions["CYCLEFUND"].Equal(d(50)))
	assert.True(t, deductions["CESSFEE"].Equal(d(25)))
}

func TestClassifyDefaultRule(t *testing.T) {
	tr := &recordingTracker{}
	c := NewClassifier(catalog.New(), tr)

	earnings, deductions := c.Classify(map[string]decimal.Decimal{
		"XYZQ": d(150), // unknown, above earnings_min -> earning
		"ZZTO": d(50),  // unknown, below earnings_min -> discarded
	})

	assert.True(t, earnings["XYZQ"].Equal(d(150)))
	_, kept := earnings["ZZTO"]
	assert.False(t, kept)
	assert.Empty(t, deductions)

	// both unknown codes were reported for offline review
	assert.ElementsMatch(t, []string{"XYZQ", "ZZTO"}, tr.codes)
}

func TestClassifyContextBlacklist(t *testing.T) {
	c := NewClassifier(catalog.New(), nil)

	// LOAN would land in earnings via the default rule, but the earnings
	// context forbids it
	earnings, deductions := c.Classify(map[string]decimal.Decimal{"LOAN": d(5000)})

	assert.Empty(t, earnings)
	assert.Empty(t, deductions)
}

func TestReconcileMovesKnownCodesOnce(t *testing.T) {
	c := NewClassifier(catalog.New(), nil)

	earnings := map[string]decimal.Decimal{"DSOP": d(2000)}
	deductions := map[string]decimal.Decimal{"MSP": d(15500)}

	c.reconcile(earnings, deductions)

	assert.Empty(t, earnings["DSOP"])
	assert.True(t, deductions["DSOP"].Equal(d(2000)))
	assert.True(t, earnings["MSP"].Equal(d(15500)))
	_, stillThere := deductions["MSP"]
	assert.False(t, stillThere)
}

func TestClassifyMutualExclusivity(t *testing.T) {
	c := NewClassifier(catalog.New(), nil)

	earnings, deductions := c.Classify(map[string]decimal.Decimal{
		"BPAY": d(136400), "DA": d(6240), "MSP": d(15500), "HRA": d(3800),
		"DSOP": d(8184), "AGIF": d(10000), "ITAX": d(45000), "SPLALLOW": d(700),
	})

	for code := range earnings {
		_, dup := deductions[code]
		assert.False(t, dup, "code %s in both maps", code)
	}
}
