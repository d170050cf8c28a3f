// Package flagart maps country codes to something a terminal can draw:
// a regional-indicator emoji and, for simple banded flags, a stripe design.
package flagart

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed designs.yaml
var defaultDesignsYAML []byte

// Layout is the direction stripes run in.
type Layout string

const (
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
)

// Design describes a flag made of equal bands.
type Design struct {
	Layout Layout   `yaml:"layout"`
	Colors []string `yaml:"colors"` // hex colors, first band first
}

// Flag is the drawable form of a country's flag.
type Flag struct {
	Code   string
	Emoji  string  // empty when the code has no emoji sequence
	Design *Design // nil when no stripe design is known
}

// Catalog resolves codes to flags.
type Catalog struct {
	designs map[string]Design
}

// Default returns the catalog built from the embedded designs.
func Default() *Catalog {
	c, err := LoadCatalog(defaultDesignsYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog parses a YAML mapping of code to Design.
func LoadCatalog(data []byte) (*Catalog, error) {
	raw := make(map[string]Design)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("flagart: failed to parse designs: %w", err)
	}

	c := &Catalog{designs: make(map[string]Design, len(raw))}
	for code, d := range raw {
		if d.Layout != LayoutHorizontal && d.Layout != LayoutVertical {
			return nil, fmt.Errorf("flagart: %s: unknown layout %q", code, d.Layout)
		}
		if len(d.Colors) == 0 {
			return nil, fmt.Errorf("flagart: %s: no colors", code)
		}
		c.designs[strings.ToLower(code)] = d
	}
	return c, nil
}

// Lookup returns the flag for code. ok is false when nothing can be drawn
// for it; callers show a placeholder instead.
func (c *Catalog) Lookup(code string) (Flag, bool) {
	f := Flag{Code: code}
	if e, ok := Emoji(code); ok {
		f.Emoji = e
	}
	if c != nil {
		if d, ok := c.designs[strings.ToLower(strings.TrimSpace(code))]; ok {
			f.Design = &d
		}
	}
	return f, f.Emoji != "" || f.Design != nil
}

// Has reports whether Lookup would succeed.
func (c *Catalog) Has(code string) bool {
	_, ok := c.Lookup(code)
	return ok
}

// Emoji builds the regional-indicator pair for a two-letter ISO code.
func Emoji(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if len(code) != 2 {
		return "", false
	}
	var b strings.Builder
	for i := 0; i < 2; i++ {
		ch := code[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			ch -= 'a' - 'A'
		case ch >= 'A' && ch <= 'Z':
		default:
			return "", false
		}
		b.WriteRune(rune(0x1F1E6 + int(ch-'A')))
	}
	return b.String(), true
}
