package tracker

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTrackUnknownCountsOccurrences(t *testing.T) {
	s := openTestStore(t)

	s.TrackUnknown("XYZQ", decimal.NewFromInt(150))
	s.TrackUnknown("XYZQ", decimal.NewFromInt(175))

	codes, err := s.List()
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "XYZQ", codes[0].Code)
	assert.Equal(t, 2, codes[0].Occurrences)
	assert.True(t, codes[0].LastAmount.Equal(decimal.NewFromInt(175)))
	assert.False(t, codes[0].FirstSeen.IsZero())
	assert.False(t, codes[0].LastSeen.IsZero())
}

func TestListOrdersByOccurrences(t *testing.T) {
	s := openTestStore(t)

	s.TrackUnknown("AAAA", decimal.NewFromInt(100))
	s.TrackUnknown("ZZTO", decimal.NewFromInt(50))
	s.TrackUnknown("ZZTO", decimal.NewFromInt(60))

	codes, err := s.List()
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "ZZTO", codes[0].Code)
	assert.Equal(t, "AAAA", codes[1].Code)
}

func TestListEmptyStore(t *testing.T) {
	s := openTestStore(t)

	codes, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, codes)
}
