// Package tracker records abbreviations the classifier could not place by
// any standard or heuristic rule, so they can be reviewed and promoted into
// the standard code lists offline.
package tracker

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS unknown_codes (
	code        TEXT PRIMARY KEY,
	last_amount TEXT NOT NULL,
	occurrences INTEGER NOT NULL DEFAULT 1,
	first_seen  TIMESTAMP NOT NULL,
	last_seen   TIMESTAMP NOT NULL
);
`

// UnknownCode is one reviewed-pending abbreviation.
type UnknownCode struct {
	Code        string          `json:"code"`
	LastAmount  decimal.Decimal `json:"last_amount"`
	Occurrences int             `json:"occurrences"`
	FirstSeen   time.Time       `json:"first_seen"`
	LastSeen    time.Time       `json:"last_seen"`
}

// Store is a sqlite-backed unknown-abbreviation tracker.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
	mu  sync.Mutex
}

// Open opens (or creates) the tracker database at path. Use ":memory:" for
// an ephemeral store.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tracker db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tracker schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// TrackUnknown upserts one sighting of an unclassifiable code. Failures are
// logged, never surfaced: tracking must not break an extraction run.
func (s *Store) TrackUnknown(code string, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO unknown_codes (code, last_amount, occurrences, first_seen, last_seen)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			last_amount = excluded.last_amount,
			occurrences = occurrences + 1,
			last_seen   = excluded.last_seen`,
		code, amount.String(), now, now)
	if err != nil {
		s.log.Warn().Err(err).Str("code", code).Msg("failed to track unknown code")
	}
}

// List returns all tracked codes, most seen first.
func (s *Store) List() ([]UnknownCode, error) {
	rows, err := s.db.Query(`
		SELECT code, last_amount, occurrences, first_seen, last_seen
		FROM unknown_codes ORDER BY occurrences DESC, code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list unknown codes: %w", err)
	}
	defer rows.Close()

	var out []UnknownCode
	for rows.Next() {
		var uc UnknownCode
		var amount string
		if err := rows.Scan(&uc.Code, &amount, &uc.Occurrences, &uc.FirstSeen, &uc.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan unknown code: %w", err)
		}
		uc.LastAmount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for %s: %w", uc.Code, err)
		}
		out = append(out, uc)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
