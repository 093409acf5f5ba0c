// Package catalog holds the named regex patterns and classification
// metadata the extraction pipeline runs against. A Catalog is an explicit
// value constructed once and shared by reference: lookups take a read
// lock, AddPattern takes the write lock, so concurrent extraction runs
// against one catalog are safe.
package catalog

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/shopspring/decimal"
)

// Group identifies one logical family of patterns.
type Group string

const (
	GroupPersonal   Group = "personal"
	GroupFinancial  Group = "financial"
	GroupEarnings   Group = "earnings"
	GroupDeductions Group = "deductions"
	GroupDate       Group = "date"
	GroupContact    Group = "contact"
	// GroupCustom receives patterns registered at runtime via AddPattern
	// that do not overwrite an existing entry.
	GroupCustom Group = "custom"
)

// Context names the scan a code was seen in, for context-specific blacklisting.
type Context string

const (
	ContextEarnings   Context = "earnings"
	ContextDeductions Context = "deductions"
)

// Reserved map keys that carry organization-supplied grand totals through
// the pipeline. The builder consumes and strips them; they never reach the
// caller. Row codes are uppercase alphanumerics, so the "__" namespace
// cannot collide.
const (
	KeyCreditsOverride = "__CREDITS__"
	KeyDebitsOverride  = "__DEBITS__"
	KeyDSOPOverride    = "__DSOP__"
	KeyTaxOverride     = "__TAX__"

	reservedPrefix = "__"
)

// IsReservedKey reports whether key belongs to the internal override namespace.
func IsReservedKey(key string) bool {
	return len(key) >= len(reservedPrefix) && key[:len(reservedPrefix)] == reservedPrefix
}

// PatternEntry is one named, compiled regex. The first capture group (when
// present) is the value the field extractor stores under Name.
type PatternEntry struct {
	Name  string
	Regex *regexp.Regexp
}

// PatternError reports a malformed regex supplied to AddPattern.
type PatternError struct {
	Name string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Name, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Thresholds are the minimum plausible amounts per category. Anything below
// its category's threshold is dropped during classification/aggregation.
type Thresholds struct {
	EarningsMin   decimal.Decimal
	DeductionsMin decimal.Decimal
	DSOPMin       decimal.Decimal
	TaxMin        decimal.Decimal
}

// Catalog is the injectable registry of patterns and classification metadata.
type Catalog struct {
	mu sync.RWMutex

	groups map[Group][]PatternEntry

	earningsCodes   map[string]struct{}
	deductionsCodes map[string]struct{}

	blacklist        map[string]struct{}
	contextBlacklist map[Context]map[string]struct{}

	mergedPrefix *regexp.Regexp
	mergedHyphen *regexp.Regexp

	thresholds Thresholds
}

// New builds a catalog pre-loaded with the default pattern groups, standard
// code sets, blacklists, merged-code patterns and thresholds.
func New() *Catalog {
	c := &Catalog{
		groups:           make(map[Group][]PatternEntry),
		earningsCodes:    make(map[string]struct{}),
		deductionsCodes:  make(map[string]struct{}),
		blacklist:        make(map[string]struct{}),
		contextBlacklist: make(map[Context]map[string]struct{}),
		mergedPrefix:     regexp.MustCompile(`^(\d+)([A-Z][A-Za-z0-9-]*)$`),
		mergedHyphen:     regexp.MustCompile(`^([A-Z]+)-([A-Za-z0-9]+)$`),
		thresholds: Thresholds{
			EarningsMin:   decimal.NewFromInt(100),
			DeductionsMin: decimal.NewFromInt(10),
			DSOPMin:       decimal.NewFromInt(1000),
			TaxMin:        decimal.NewFromInt(1000),
		},
	}

	for group, entries := range defaultPatterns() {
		c.groups[group] = entries
	}
	for _, code := range standardEarningsCodes {
		c.earningsCodes[code] = struct{}{}
	}
	for _, code := range standardDeductionsCodes {
		c.deductionsCodes[code] = struct{}{}
	}
	for _, token := range globalBlacklist {
		c.blacklist[token] = struct{}{}
	}
	for ctx, tokens := range contextBlacklists {
		set := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			set[t] = struct{}{}
		}
		c.contextBlacklist[ctx] = set
	}

	return c
}

// AddPattern registers name -> regex, overwriting an existing entry with the
// same name wherever it lives; new names land in GroupCustom. A malformed
// regex is rejected with a PatternError and leaves the catalog untouched.
func (c *Catalog) AddPattern(name, expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return &PatternError{Name: name, Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry := PatternEntry{Name: name, Regex: re}
	for group, entries := range c.groups {
		for i := range entries {
			if entries[i].Name == name {
				c.groups[group][i] = entry
				return nil
			}
		}
	}
	c.groups[GroupCustom] = append(c.groups[GroupCustom], entry)
	return nil
}

// Lookup returns a copy of the entries in one group.
func (c *Catalog) Lookup(group Group) []PatternEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := c.groups[group]
	out := make([]PatternEntry, len(entries))
	copy(out, entries)
	return out
}

// Groups lists the groups that currently hold at least one pattern.
func (c *Catalog) Groups() []Group {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Group, 0, len(c.groups))
	for group := range c.groups {
		if len(c.groups[group]) > 0 {
			out = append(out, group)
		}
	}
	return out
}

// IsStandardEarning reports membership in the standard earnings code set.
func (c *Catalog) IsStandardEarning(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.earningsCodes[code]
	return ok
}

// IsStandardDeduction reports membership in the standard deductions code set.
func (c *Catalog) IsStandardDeduction(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.deductionsCodes[code]
	return ok
}

// IsBlacklisted reports whether a token is never a financial code.
func (c *Catalog) IsBlacklisted(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.blacklist[code]
	return ok
}

// IsContextBlacklisted reports whether a code is forbidden in the given context.
func (c *Catalog) IsContextBlacklisted(ctx Context, code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.contextBlacklist[ctx]
	if !ok {
		return false
	}
	_, forbidden := set[code]
	return forbidden
}

// MergedPrefixPattern decomposes numeric-prefixed codes such as "3600DSOP".
func (c *Catalog) MergedPrefixPattern() *regexp.Regexp { return c.mergedPrefix }

// MergedHyphenPattern decomposes hyphenated codes such as "ARR-RSHNA".
func (c *Catalog) MergedHyphenPattern() *regexp.Regexp { return c.mergedHyphen }

// Thresholds returns the per-category minimum amounts.
func (c *Catalog) Thresholds() Thresholds { return c.thresholds }
