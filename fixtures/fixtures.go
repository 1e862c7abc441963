// Package fixtures holds the fixed regression table of URLs and their
// expected verdicts.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoCases is returned when a table holds no cases.
var ErrNoCases = errors.New("case table is empty")

//go:embed cases.yaml
var defaultCases []byte

// Case is one URL and the verdict a correct validator gives it.
type Case struct {
	URL   string `yaml:"url" json:"url"`
	Valid bool   `yaml:"valid" json:"valid"`
	Note  string `yaml:"note,omitempty" json:"note,omitempty"`
}

type table struct {
	Cases []Case `yaml:"cases"`
}

// Default returns the built-in regression table.
func Default() ([]Case, error) {
	cases, err := Parse(defaultCases)
	if err != nil {
		return nil, fmt.Errorf("built-in cases: %w", err)
	}
	return cases, nil
}

// LoadFile reads a regression table from a YAML file with the same layout as
// the built-in one.
func LoadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases: %w", err)
	}
	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse decodes a YAML regression table.
func Parse(data []byte) ([]Case, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse cases: %w", err)
	}
	if len(t.Cases) == 0 {
		return nil, ErrNoCases
	}
	return t.Cases, nil
}

// URLs returns the URL of every case, in order.
func URLs(cases []Case) []string {
	urls := make([]string, len(cases))
	for i, c := range cases {
		urls[i] = c.URL
	}
	return urls
}
