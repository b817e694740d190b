package parity

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erraggy/specparity/reconciler"
)

// Banner surrounds the verdict line of the text report.
var Banner = strings.Repeat("=", 80)

// Verdict lines.
const (
	VerdictPassed = "VALIDATION PASSED"
	VerdictFailed = "VALIDATION FAILED"
)

// SuccessMessage closes a passing text report.
const SuccessMessage = "All validations passed! The unified specs correctly match the separate specs."

// Report is the outcome of one parity run.
type Report struct {
	// Passed is true when no rule produced a discrepancy
	Passed bool `json:"passed" yaml:"passed"`
	// Summary is a one-line description of the outcome
	Summary string `json:"summary" yaml:"summary"`
	// Documents are summarized in load order
	Documents []DocumentSummary `json:"documents" yaml:"documents"`
	// Rules hold per-rule results in execution order
	Rules []RuleResult `json:"rules" yaml:"rules"`
	// Notes are informational and never affect Passed
	Notes []NoteResult `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DocumentSummary describes one loaded document.
type DocumentSummary struct {
	Name      string `json:"name" yaml:"name"`
	Title     string `json:"title" yaml:"title"`
	File      string `json:"file" yaml:"file"`
	Format    string `json:"format" yaml:"format"`
	PathCount int    `json:"path_count" yaml:"path_count"`
	// Namespaces holds per-namespace counts for unified documents
	Namespaces map[string]int `json:"namespaces,omitempty" yaml:"namespaces,omitempty"`
	// OtherCount is the number of unified paths outside every namespace
	OtherCount int `json:"other_count,omitempty" yaml:"other_count,omitempty"`
}

// RuleResult is the outcome of one rule.
type RuleResult struct {
	Name      string             `json:"name" yaml:"name"`
	Reference string             `json:"reference" yaml:"reference"`
	Candidate string             `json:"candidate" yaml:"candidate"`
	Matched   int                `json:"matched" yaml:"matched"`
	Result    *reconciler.Result `json:"result" yaml:"result"`
}

// OK reports whether the rule found no discrepancies.
func (r RuleResult) OK() bool {
	return r.Result == nil || r.Result.OK()
}

// NoteResult is an informational count of a namespace subset.
type NoteResult struct {
	Name      string `json:"name" yaml:"name"`
	Document  string `json:"document" yaml:"document"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Count     int    `json:"count" yaml:"count"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Discrepancies returns every discrepancy in rule order.
func (r *Report) Discrepancies() []reconciler.Discrepancy {
	var out []reconciler.Discrepancy
	for _, rule := range r.Rules {
		if rule.Result != nil {
			out = append(out, rule.Result.Discrepancies()...)
		}
	}
	return out
}

// ExitCode returns 0 when the run passed and 1 otherwise.
func (r *Report) ExitCode() int {
	if r.Passed {
		return 0
	}
	return 1
}

// Lines returns the failure lines of every rule, in rule order. Counts use
// the same English digit grouping as the rest of the text report.
func (r *Report) Lines() []string {
	p := countPrinter()
	var out []string
	for _, rule := range r.Rules {
		if rule.Result != nil {
			out = append(out, rule.Result.LinesWith(p)...)
		}
	}
	return out
}

// countPrinter formats every count in the text report.
func countPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func summarize(r *Report) string {
	p := countPrinter()
	if r.Passed {
		return p.Sprintf("%s: %d rules matched", VerdictPassed, len(r.Rules))
	}
	failed := 0
	for _, rule := range r.Rules {
		if !rule.OK() {
			failed++
		}
	}
	return p.Sprintf("%s: %d discrepancies in %d of %d rules", VerdictFailed, len(r.Discrepancies()), failed, len(r.Rules))
}
