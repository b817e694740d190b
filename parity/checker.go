package parity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/message"

	"github.com/erraggy/specparity/config"
	"github.com/erraggy/specparity/internal/cliutil"
	"github.com/erraggy/specparity/loader"
	"github.com/erraggy/specparity/parityerrors"
	"github.com/erraggy/specparity/pathset"
	"github.com/erraggy/specparity/reconciler"
)

// Checker runs the parity check described by a configuration.
// A Checker holds no state between runs and may be reused.
type Checker struct {
	cfg         *config.Config
	partitioner *pathset.Partitioner
	logger      loader.Logger
	out         io.Writer
	format      string
	maxFileSize int64
}

// New validates cfg and returns a Checker for it. A nil cfg uses [config.Default].
func New(cfg *config.Config, opts ...Option) (*Checker, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	partitioner, err := cfg.Partitioner()
	if err != nil {
		return nil, err
	}

	c := &Checker{
		cfg:         cfg,
		partitioner: partitioner,
		logger:      loader.NopLogger{},
		out:         io.Discard,
		format:      cliutil.FormatText,
		maxFileSize: loader.DefaultMaxFileSize,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("parity: invalid options: %w", err)
		}
	}
	return c, nil
}

// Config returns the configuration the checker runs.
func (c *Checker) Config() *config.Config {
	return c.cfg
}

// loaded is one document after loading and path extraction.
type loaded struct {
	doc       config.Document
	label     string
	paths     pathset.PathSet
	partition pathset.Partition
}

// Run executes the check once.
//
// A missing document returns a *parityerrors.MissingInputError naming every
// missing location; in text format each is also printed as
// "Error: Spec file not found: PATH". A malformed document aborts the run with a
// *parityerrors.MalformedInputError and no report. Discrepancies are not errors:
// they are recorded in the returned Report.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	text := c.textWriter()

	resolved, err := loader.CheckExists(c.cfg.SpecDir, c.cfg.Locations())
	if err != nil {
		var missing *parityerrors.MissingInputError
		if errors.As(err, &missing) {
			for _, loc := range missing.Locations {
				text.Printf("Error: Spec file not found: %s\n", loc)
			}
			c.logger.Debug("spec files not found", "count", len(missing.Locations))
		}
		return nil, err
	}

	text.Printf("Loading OpenAPI specs...\n")
	for i, doc := range c.cfg.Documents {
		text.Printf("  - %s\n", doc.Label(resolved[i]))
	}
	text.Printf("\n")

	l := &loader.Loader{Logger: c.logger, MaxFileSize: c.maxFileSize}
	docs := make([]*loaded, len(c.cfg.Documents))
	byName := make(map[string]*loaded, len(docs))
	report := &Report{Documents: make([]DocumentSummary, 0, len(docs))}

	for i, doc := range c.cfg.Documents {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("parity: run cancelled: %w", err)
		}
		parsed, err := l.Load(resolved[i])
		if err != nil {
			return nil, err
		}
		entry := &loaded{
			doc:   doc,
			label: doc.Label(resolved[i]),
			paths: pathset.FromDocument(parsed),
		}
		docs[i] = entry
		byName[doc.Name] = entry

		summary := DocumentSummary{
			Name:      doc.Name,
			Title:     doc.Title,
			File:      entry.label,
			Format:    string(parsed.SourceFormat),
			PathCount: entry.paths.Len(),
		}
		if doc.Unified {
			entry.partition = c.partitioner.Partition(entry.paths)
			summary.Namespaces = entry.partition.Counts()
			summary.OtherCount = entry.partition.Other.Len()
			if summary.OtherCount > 0 {
				c.logger.Debug("paths outside every namespace", "document", doc.Name, "count", summary.OtherCount, "paths", entry.partition.Other.Sorted())
			}
		}
		report.Documents = append(report.Documents, summary)
	}

	text.Printf("Path counts:\n")
	for _, d := range docs {
		text.Printf("  %s (%s): %d\n", title(d.doc), d.label, d.paths.Len())
	}
	text.Printf("\n")

	for _, d := range docs {
		if !d.doc.Unified {
			continue
		}
		text.Printf("%s namespace breakdown:\n", title(d.doc))
		for _, name := range d.partition.Names() {
			text.Printf("  %s paths: %d\n", name, d.partition.Get(name).Len())
		}
		text.Printf("\n")
	}

	report.Rules = make([]RuleResult, 0, len(c.cfg.Rules))
	for _, rule := range c.cfg.Rules {
		ref := byName[rule.Reference.Document]
		cand := byName[rule.Candidate]
		expected := c.subset(ref, rule.Reference.Namespace)

		text.Printf("Validating %s paths...\n", rule.Name)
		res := reconciler.Reconcile(expected, cand.paths, cand.label, rule.Reference.Namespace)
		if res.OK() {
			text.Printf("  ✓ All %d %s paths match\n", expected.Len(), rule.Name)
		}
		c.logger.Debug("rule evaluated",
			"rule", rule.Name,
			"expected", res.ExpectedCount,
			"actual", res.ActualCount,
			"missing", len(res.Missing),
			"unexpected", len(res.Extra),
		)
		report.Rules = append(report.Rules, RuleResult{
			Name:      rule.Name,
			Reference: rule.Reference.Document,
			Candidate: rule.Candidate,
			Matched:   res.Matched(),
			Result:    res,
		})
	}

	for _, note := range c.cfg.Notes {
		count := c.subset(byName[note.Document], note.Namespace).Len()
		if count == 0 {
			continue
		}
		report.Notes = append(report.Notes, NoteResult{
			Name:      note.Name,
			Document:  note.Document,
			Namespace: note.Namespace,
			Count:     count,
			Message:   note.Message,
		})
		text.Printf("\nNote: Found %d %s paths in unified spec.\n", count, note.Name)
		if note.Message != "" {
			text.Printf("  %s\n", note.Message)
		}
	}

	report.Passed = len(report.Discrepancies()) == 0
	report.Summary = summarize(report)

	text.Printf("\n%s\n", Banner)
	if report.Passed {
		text.Printf("%s\n%s\n", VerdictPassed, Banner)
		text.Printf("\n%s\n", SuccessMessage)
	} else {
		text.Printf("%s\n%s\n", VerdictFailed, Banner)
		for _, line := range report.Lines() {
			text.Printf("%s\n", line)
		}
	}

	c.logger.Info("parity check complete",
		"passed", report.Passed,
		"rules", len(report.Rules),
		"discrepancies", len(report.Discrepancies()),
		"duration", time.Since(start),
	)

	if cliutil.IsStructured(c.format) {
		if err := cliutil.WriteStructured(c.out, report, c.format); err != nil {
			return report, fmt.Errorf("parity: %w", err)
		}
	}
	return report, nil
}

// subset returns the namespace subset of a loaded document. Standalone
// documents are partitioned on demand.
func (c *Checker) subset(d *loaded, namespace string) pathset.PathSet {
	if d.doc.Unified {
		return d.partition.Get(namespace)
	}
	return c.partitioner.Partition(d.paths).Get(namespace)
}

func title(d config.Document) string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// textWriter returns the writer for console report lines. Counts are
// rendered with English digit grouping. Structured formats discard text.
func (c *Checker) textWriter() *reportPrinter {
	w := c.out
	if cliutil.IsStructured(c.format) {
		w = io.Discard
	}
	return &reportPrinter{w: w, p: countPrinter()}
}

type reportPrinter struct {
	w io.Writer
	p *message.Printer
}

func (r *reportPrinter) Printf(format string, args ...any) {
	cliutil.Writef(r.w, "%s", r.p.Sprintf(format, args...))
}
