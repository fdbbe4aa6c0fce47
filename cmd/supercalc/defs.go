package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ctrezevant/supercalc"
)

// defs is a file of definitions to load into a session at startup:
//
//	vars:
//	  g: 9.81
//	  c: 299792458
//	statements:
//	  - f(x) = x^2 + 1
//	  - v = <1, 2, 3>
//
// Variables are assigned in order of name before the statements run in order.
type defs struct {
	Vars       map[string]string `yaml:"vars"`
	Statements []string          `yaml:"statements"`
}

func loadDefs(path string) (*defs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definitions %s: %w", path, err)
	}
	return parseDefs(data, path)
}

// parseDefs parses a definitions file. The path is used only for error
// messages.
func parseDefs(data []byte, path string) (*defs, error) {
	var d defs
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &d, nil
}

func (d *defs) apply(sess *supercalc.Session) error {
	names := make([]string, 0, len(d.Vars))
	for k := range d.Vars {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if err := sess.Define(k, d.Vars[k]); err != nil {
			return fmt.Errorf("setting %s: %w", k, err)
		}
	}
	for i, s := range d.Statements {
		if _, err := sess.Exec(s); err != nil {
			return fmt.Errorf("statement %d (%q): %w", i+1, s, err)
		}
	}
	return nil
}
