// Package verify checks the implementation against the published
// verification values of IAPWS-IF97 and its supplementary releases.
package verify

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var defaultCases []byte

// Case is one verification point: a function, its arguments, and the
// expected value with a relative tolerance.
type Case struct {
	Name      string    `yaml:"name"`
	Func      string    `yaml:"func"`
	Args      []float64 `yaml:"args"`
	Property  string    `yaml:"property,omitempty"`
	Want      float64   `yaml:"want"`
	Tolerance float64   `yaml:"tolerance,omitempty"`
}

type caseFile struct {
	Tolerance float64 `yaml:"tolerance"`
	Cases     []Case  `yaml:"cases"`
}

// DefaultTolerance applies to cases that set none, at file or case level.
const DefaultTolerance = 1e-8

// Load reads verification cases in YAML form. A top-level tolerance is
// copied into every case that does not set its own.
func Load(r io.Reader) ([]Case, error) {
	var f caseFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("verify: empty case file")
		}
		return nil, fmt.Errorf("verify: decoding cases: %w", err)
	}

	tol := f.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Tolerance <= 0 {
			c.Tolerance = tol
		}
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("verify: case %d (%s): %w", i+1, c.Name, err)
		}
	}
	return f.Cases, nil
}

// Default returns the built-in verification cases.
func Default() []Case {
	cases, err := Load(bytes.NewReader(defaultCases))
	if err != nil {
		panic(err)
	}
	return cases
}

func (c Case) validate() error {
	fn, ok := functions[c.Func]
	if !ok {
		return fmt.Errorf("unknown function %q", c.Func)
	}
	if len(c.Args) != fn.arity {
		return fmt.Errorf("%s takes %d arguments, got %d", c.Func, fn.arity, len(c.Args))
	}
	if fn.properties && c.Property == "" {
		return fmt.Errorf("%s needs a property", c.Func)
	}
	if !fn.properties && c.Property != "" {
		return fmt.Errorf("%s has no property %q", c.Func, c.Property)
	}
	return nil
}
