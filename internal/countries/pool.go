// Package countries loads the code-to-name mapping the quiz draws its
// questions from. A Pool keeps the order entries had in their source file.
package countries

import (
	"errors"
	"strings"
)

// ErrEmptyPool is returned when a data source holds no usable entries.
var ErrEmptyPool = errors.New("countries: pool is empty")

// Country is a single code/name pair, e.g. {"FR", "France"}.
type Country struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Pool is an ordered, read-only set of countries keyed by code.
// The zero value is an empty pool.
type Pool struct {
	entries []Country
	byCode  map[string]int
}

// NewPool builds a pool from entries. Codes are compared case-insensitively;
// later duplicates and entries with an empty code or name are dropped.
func NewPool(entries []Country) Pool {
	p := Pool{
		entries: make([]Country, 0, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		code := strings.TrimSpace(e.Code)
		name := strings.TrimSpace(e.Name)
		if code == "" || name == "" {
			continue
		}
		key := strings.ToUpper(code)
		if _, dup := p.byCode[key]; dup {
			continue
		}
		p.byCode[key] = len(p.entries)
		p.entries = append(p.entries, Country{Code: code, Name: name})
	}
	return p
}

// Len returns the number of entries.
func (p Pool) Len() int {
	return len(p.entries)
}

// At returns the entry at index i in source order.
func (p Pool) At(i int) Country {
	return p.entries[i]
}

// Countries returns a copy of all entries in source order.
func (p Pool) Countries() []Country {
	out := make([]Country, len(p.entries))
	copy(out, p.entries)
	return out
}

// Names returns all country names in source order.
func (p Pool) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry for a code.
func (p Pool) Lookup(code string) (Country, bool) {
	i, ok := p.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Country{}, false
	}
	return p.entries[i], true
}

// Filter returns a new pool holding only the entries keep accepts.
func (p Pool) Filter(keep func(Country) bool) Pool {
	kept := make([]Country, 0, len(p.entries))
	for _, e := range p.entries {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	return NewPool(kept)
}
