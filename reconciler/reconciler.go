// Package reconciler compares a reference path set against a candidate path set.
//
// The comparison is directional. The expected (reference) set is authoritative;
// the actual (candidate) set is checked against it:
//
//   - missing = expected − actual: paths the reference defines that the candidate lacks
//   - extra   = actual − expected: paths the candidate defines that the reference does not
//
// Swapping the arguments swaps which paths are reported as missing and which as
// unexpected, so callers must keep the reference first.
//
//	res := reconciler.Reconcile(unifiedV1, standaloneV1, "spec3.sdk.json", "v1")
//	if !res.OK() {
//	    for _, line := range res.Lines() {
//	        fmt.Println(line)
//	    }
//	}
package reconciler

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erraggy/specparity/pathset"
)

// Kind classifies a discrepancy relative to the reference set.
type Kind string

const (
	// KindMissing marks a path present in the reference but absent from the candidate
	KindMissing Kind = "missing"
	// KindUnexpected marks a path present in the candidate but absent from the reference
	KindUnexpected Kind = "unexpected"
)

// Symbol returns the report prefix for the kind: "-" for removals, "+" for additions.
func (k Kind) Symbol() string {
	if k == KindMissing {
		return "-"
	}
	return "+"
}

// Discrepancy is one path identifier found on only one side of a comparison.
type Discrepancy struct {
	// Kind is missing or unexpected
	Kind Kind `json:"kind" yaml:"kind"`
	// Path is the path identifier
	Path string `json:"path" yaml:"path"`
	// Label names the candidate document
	Label string `json:"label" yaml:"label"`
	// Namespace is the namespace the comparison ran in
	Namespace string `json:"namespace" yaml:"namespace"`
}

// String returns a formatted string representation of the discrepancy
func (d Discrepancy) String() string {
	return fmt.Sprintf("%s %s [%s] %s: %s", d.Kind.Symbol(), d.Path, d.Namespace, d.Label, d.Kind)
}

// Result holds the outcome of one reconciliation.
type Result struct {
	// Label names the candidate document
	Label string `json:"label" yaml:"label"`
	// Namespace is the namespace the comparison ran in
	Namespace string `json:"namespace" yaml:"namespace"`
	// ExpectedCount is the size of the reference set
	ExpectedCount int `json:"expected_count" yaml:"expected_count"`
	// ActualCount is the size of the candidate set
	ActualCount int `json:"actual_count" yaml:"actual_count"`
	// Missing is expected − actual, sorted
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	// Extra is actual − expected, sorted
	Extra []string `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`
}

// Reconcile compares the candidate set actual against the reference set expected.
// label names the candidate in report headers; namespace is used in messages.
// Neither set is modified.
func Reconcile(expected, actual pathset.PathSet, label, namespace string) *Result {
	res := &Result{
		Label:         label,
		Namespace:     namespace,
		ExpectedCount: expected.Len(),
		ActualCount:   actual.Len(),
	}
	if missing := expected.Difference(actual); missing.Len() > 0 {
		res.Missing = missing.Sorted()
	}
	if extra := actual.Difference(expected); extra.Len() > 0 {
		res.Extra = extra.Sorted()
	}
	return res
}

// OK reports whether the two sets were equal.
func (r *Result) OK() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// Matched returns the number of paths present on both sides.
// When OK is true this equals the size of either set.
func (r *Result) Matched() int {
	return r.ExpectedCount - len(r.Missing)
}

// Discrepancies returns every finding: missing paths first, then unexpected ones,
// each in sorted order.
func (r *Result) Discrepancies() []Discrepancy {
	if r.OK() {
		return nil
	}
	out := make([]Discrepancy, 0, len(r.Missing)+len(r.Extra))
	for _, p := range r.Missing {
		out = append(out, Discrepancy{Kind: KindMissing, Path: p, Label: r.Label, Namespace: r.Namespace})
	}
	for _, p := range r.Extra {
		out = append(out, Discrepancy{Kind: KindUnexpected, Path: p, Label: r.Label, Namespace: r.Namespace})
	}
	return out
}

// Lines renders the result as report lines. Each block header is preceded by an
// empty line so blocks stay visually separate when printed one per line. An
// equal comparison renders no lines. Counts use English digit grouping.
func (r *Result) Lines() []string {
	return r.LinesWith(message.NewPrinter(language.English))
}

// LinesWith is [Result.Lines] with header counts formatted by p.
func (r *Result) LinesWith(p *message.Printer) []string {
	if r.OK() {
		return nil
	}
	lines := make([]string, 0, len(r.Missing)+len(r.Extra)+4)
	if len(r.Missing) > 0 {
		lines = append(lines, "", p.Sprintf("%s: Missing %d %s paths:", r.Label, len(r.Missing), r.Namespace))
		for _, path := range r.Missing {
			lines = append(lines, "  "+KindMissing.Symbol()+" "+path)
		}
	}
	if len(r.Extra) > 0 {
		lines = append(lines, "", p.Sprintf("%s: Found %d unexpected %s paths:", r.Label, len(r.Extra), r.Namespace))
		for _, path := range r.Extra {
			lines = append(lines, "  "+KindUnexpected.Symbol()+" "+path)
		}
	}
	return lines
}
