// Package config describes a parity run as data: the documents to load, the
// namespaces to partition by, the comparison rules and the informational notes.
//
// [Default] reproduces the stock layout of five documents under
// api/openapi-spec. [Load] layers a YAML or JSON file and SPECPARITY_*
// environment variables over those defaults.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/erraggy/specparity/parityerrors"
	"github.com/erraggy/specparity/pathset"
)

// Config is the complete description of one parity run.
type Config struct {
	// SpecDir is the directory document locations are relative to.
	// Relative values are resolved against the working directory.
	SpecDir string `json:"spec_dir" yaml:"spec_dir" mapstructure:"spec_dir"`
	// Namespaces are the prefix namespaces unified documents are split into
	Namespaces []pathset.Namespace `json:"namespaces" yaml:"namespaces" mapstructure:"namespaces"`
	// Documents are loaded in this order
	Documents []Document `json:"documents" yaml:"documents" mapstructure:"documents"`
	// Rules are executed in this order
	Rules []Rule `json:"rules" yaml:"rules" mapstructure:"rules"`
	// Notes are informational observations that never fail a run
	Notes []Note `json:"notes,omitempty" yaml:"notes,omitempty" mapstructure:"notes"`
}

// Document names one input document.
type Document struct {
	// Name is the identifier rules and notes refer to
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	// Title is the human-readable name used in count lines
	Title string `json:"title" yaml:"title" mapstructure:"title"`
	// Location is a path or doublestar pattern relative to SpecDir
	Location string `json:"location" yaml:"location" mapstructure:"location"`
	// Unified marks a merged document whose namespace breakdown is reported
	Unified bool `json:"unified,omitempty" yaml:"unified,omitempty" mapstructure:"unified"`
}

// Label returns the display label for the document once its location has been
// resolved to a concrete file.
func (d Document) Label(resolved string) string {
	if resolved == "" {
		resolved = d.Location
	}
	return filepath.Base(resolved)
}

// Reference selects the namespace subset of a document.
type Reference struct {
	Document  string `json:"document" yaml:"document" mapstructure:"document"`
	Namespace string `json:"namespace" yaml:"namespace" mapstructure:"namespace"`
}

// Rule compares a namespace subset of a reference document against the full
// path set of a candidate document.
type Rule struct {
	// Name labels the rule in progress lines ("Validating {Name} paths...")
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	// Reference is the authoritative side
	Reference Reference `json:"reference" yaml:"reference" mapstructure:"reference"`
	// Candidate is the document checked against the reference, compared in full
	Candidate string `json:"candidate" yaml:"candidate" mapstructure:"candidate"`
}

// Note surfaces the size of a namespace subset without comparing it.
type Note struct {
	Name      string `json:"name" yaml:"name" mapstructure:"name"`
	Document  string `json:"document" yaml:"document" mapstructure:"document"`
	Namespace string `json:"namespace" yaml:"namespace" mapstructure:"namespace"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty" mapstructure:"message"`
}

// Default document names.
const (
	DocV1GA           = "v1-ga"
	DocV2GA           = "v2-ga"
	DocV2Preview      = "v2-preview"
	DocUnifiedGA      = "unified-ga"
	DocUnifiedPreview = "unified-preview"
)

// DefaultSpecDir is where the stock documents live, relative to the repository root.
const DefaultSpecDir = "api/openapi-spec"

// Default returns the stock configuration: five documents, three rules and the
// v1 preview note.
func Default() *Config {
	return &Config{
		SpecDir:    DefaultSpecDir,
		Namespaces: pathset.DefaultNamespaces(),
		Documents: []Document{
			{Name: DocV1GA, Title: "v1 GA", Location: "spec3.sdk.json"},
			{Name: DocV2GA, Title: "v2 GA", Location: "spec3.v2.sdk.json"},
			{Name: DocV2Preview, Title: "v2 Preview", Location: "spec3.v2.sdk.preview.json"},
			{Name: DocUnifiedGA, Title: "Unified GA", Location: "spec3.cli.json", Unified: true},
			{Name: DocUnifiedPreview, Title: "Unified Preview", Location: "spec3.cli.preview.json", Unified: true},
		},
		Rules: []Rule{
			{Name: "v1 GA", Reference: Reference{Document: DocUnifiedGA, Namespace: "v1"}, Candidate: DocV1GA},
			{Name: "v2 GA", Reference: Reference{Document: DocUnifiedGA, Namespace: "v2"}, Candidate: DocV2GA},
			{Name: "v2 Preview", Reference: Reference{Document: DocUnifiedPreview, Namespace: "v2"}, Candidate: DocV2Preview},
		},
		Notes: []Note{
			{
				Name:      "v1 Preview",
				Document:  DocUnifiedPreview,
				Namespace: "v1",
				Message:   "These cannot be validated as v1 preview paths don't exist in the old spec structure.",
			},
		},
	}
}

// Document returns the document with the given name.
func (c *Config) Document(name string) (Document, bool) {
	for _, d := range c.Documents {
		if d.Name == name {
			return d, true
		}
	}
	return Document{}, false
}

// Locations returns every document location in load order.
func (c *Config) Locations() []string {
	locs := make([]string, len(c.Documents))
	for i, d := range c.Documents {
		locs[i] = d.Location
	}
	return locs
}

// Partitioner builds the namespace partitioner for the configuration.
func (c *Config) Partitioner() (*pathset.Partitioner, error) {
	return pathset.NewPartitioner(c.Namespaces...)
}

// Validate checks the configuration for internal consistency: unique document
// names, known references, non-overlapping namespaces and at least one rule.
func Validate(c *Config) error {
	if c == nil {
		return &parityerrors.ConfigError{Message: "configuration is nil"}
	}

	if _, err := c.Partitioner(); err != nil {
		return err
	}
	namespaces := make(map[string]bool, len(c.Namespaces))
	for _, ns := range c.Namespaces {
		namespaces[ns.Name] = true
	}

	if len(c.Documents) == 0 {
		return &parityerrors.ConfigError{Option: "documents", Message: "at least one document is required"}
	}
	documents := make(map[string]bool, len(c.Documents))
	for i, d := range c.Documents {
		switch {
		case d.Name == "":
			return &parityerrors.ConfigError{Option: fmt.Sprintf("documents[%d].name", i), Message: "must not be empty"}
		case d.Location == "":
			return &parityerrors.ConfigError{Option: fmt.Sprintf("documents[%d].location", i), Message: "must not be empty"}
		case documents[d.Name]:
			return &parityerrors.ConfigError{Option: "documents", Value: d.Name, Message: "duplicate document name"}
		}
		documents[d.Name] = true
	}

	if len(c.Rules) == 0 {
		return &parityerrors.ConfigError{Option: "rules", Message: "at least one rule is required"}
	}
	for i, r := range c.Rules {
		opt := fmt.Sprintf("rules[%d]", i)
		switch {
		case r.Name == "":
			return &parityerrors.ConfigError{Option: opt + ".name", Message: "must not be empty"}
		case !documents[r.Reference.Document]:
			return &parityerrors.ConfigError{Option: opt + ".reference.document", Value: r.Reference.Document, Message: "unknown document"}
		case !namespaces[r.Reference.Namespace]:
			return &parityerrors.ConfigError{Option: opt + ".reference.namespace", Value: r.Reference.Namespace, Message: "unknown namespace"}
		case !documents[r.Candidate]:
			return &parityerrors.ConfigError{Option: opt + ".candidate", Value: r.Candidate, Message: "unknown document"}
		}
	}

	for i, n := range c.Notes {
		opt := fmt.Sprintf("notes[%d]", i)
		switch {
		case n.Name == "":
			return &parityerrors.ConfigError{Option: opt + ".name", Message: "must not be empty"}
		case !documents[n.Document]:
			return &parityerrors.ConfigError{Option: opt + ".document", Value: n.Document, Message: "unknown document"}
		case !namespaces[n.Namespace]:
			return &parityerrors.ConfigError{Option: opt + ".namespace", Value: n.Namespace, Message: "unknown namespace"}
		}
	}
	return nil
}
