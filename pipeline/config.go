// File: config.go
// Role: YAML configuration of a normalization run.

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/norman/conceptualize"
	"github.com/katalvlaran/norman/penman"
)

// BuiltinTable selects the embedded AMR table instead of a file path.
const BuiltinTable = "builtin"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// delimiters may not appear in minted variables or concepts.
const delimiters = " \t\r\n()/:\""

// Config selects the stages of a run and the output format.
type Config struct {
	// CanonicalRoles enables the mod-of/domain canonicalization table.
	CanonicalRoles bool `yaml:"canonical_roles"`

	// NodeTops inserts ":TOP <var>" markers before decoding.
	NodeTops bool `yaml:"node_tops"`

	// Reify is a reification table path, BuiltinTable, or empty to skip.
	Reify string `yaml:"reify"`

	// Collapse is a dereification table path, BuiltinTable, or empty to skip.
	Collapse string `yaml:"collapse"`

	// Prefix replaces concept-derived names of reified variables.
	Prefix string `yaml:"prefix"`

	// Conceptualize types every node and promotes constants.
	Conceptualize bool `yaml:"conceptualize"`

	// Indent is the width per nesting level; -1 writes one line per graph.
	Indent int `yaml:"indent"`

	// Triples writes triple conjunctions instead of PENMAN.
	Triples bool `yaml:"triples"`

	// MissingConcept types untyped nodes on output; empty disables it.
	MissingConcept string `yaml:"missing_concept"`

	// KeepComments copies each graph's "#" lines to the output.
	KeepComments bool `yaml:"keep_comments"`
}

// DefaultConfig mirrors the command-line defaults.
func DefaultConfig() Config {
	return Config{
		Indent:         penman.DefaultIndent,
		MissingConcept: conceptualize.DefaultMissingConcept,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are errors.
// An empty file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("pipeline: read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("pipeline: parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges and token syntax. Conceptualize requires a
// non-empty MissingConcept.
func (c Config) Validate() error {
	if c.Indent < penman.Compact {
		return fmt.Errorf("%w: indent %d below %d", ErrInvalidConfig, c.Indent, penman.Compact)
	}
	if strings.ContainsAny(c.Prefix, delimiters) {
		return fmt.Errorf("%w: prefix %q contains a delimiter", ErrInvalidConfig, c.Prefix)
	}
	if strings.ContainsAny(c.MissingConcept, delimiters) {
		return fmt.Errorf("%w: missing_concept %q contains a delimiter", ErrInvalidConfig, c.MissingConcept)
	}
	if c.Conceptualize && c.MissingConcept == "" {
		return fmt.Errorf("%w: conceptualize needs a missing_concept to type untyped nodes", ErrInvalidConfig)
	}

	return nil
}
