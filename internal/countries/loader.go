package countries

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed countries.json
var defaultCountriesJSON []byte

// Default returns the bundled country pool.
func Default() Pool {
	p, err := Parse(defaultCountriesJSON)
	if err != nil {
		// The embedded file is part of the build; a parse failure is a bug.
		panic(err)
	}
	return p
}

// Load reads a pool from path. An empty path yields the bundled pool.
func Load(path string) (Pool, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Pool{}, fmt.Errorf("countries: failed to read %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return Pool{}, fmt.Errorf("countries: failed to parse %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes country data. Two shapes are accepted, both in JSON or YAML:
//
//	{"FR": "France", "DE": "Germany"}
//
//	- code: FR
//	  name: France
//
// Entries keep their document order.
func Parse(data []byte) (Pool, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Pool{}, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Pool{}, ErrEmptyPool
	}

	root := doc.Content[0]
	var entries []Country

	switch root.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, val := root.Content[i], root.Content[i+1]
			if val.Kind != yaml.ScalarNode {
				return Pool{}, fmt.Errorf("line %d: value for %q is not a string", val.Line, key.Value)
			}
			entries = append(entries, Country{Code: key.Value, Name: val.Value})
		}

	case yaml.SequenceNode:
		for _, item := range root.Content {
			var c Country
			if err := item.Decode(&c); err != nil {
				return Pool{}, fmt.Errorf("line %d: %w", item.Line, err)
			}
			entries = append(entries, c)
		}

	default:
		return Pool{}, fmt.Errorf("line %d: expected a mapping or a list of countries", root.Line)
	}

	p := NewPool(entries)
	if p.Len() == 0 {
		return Pool{}, ErrEmptyPool
	}
	return p, nil
}
