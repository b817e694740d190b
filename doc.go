// Package specparity checks that unified OpenAPI documents carry exactly the
// paths of the standalone versioned documents they were merged from.
//
// # Overview
//
// A service that publishes one API document per version (v1, v2, v2 preview)
// may also publish unified documents that merge those versions under prefixed
// paths (/v1/..., /v2/...). specparity extracts the path identifiers of every
// document, splits each unified document by namespace prefix and compares every
// namespace subset against its standalone document. Only the presence of path
// keys is compared; operations, schemas and other content are ignored.
//
// The module is laid out by responsibility:
//
//   - loader: locate, existence-check and decode JSON or YAML documents
//   - pathset: path sets, set algebra and namespace partitioning
//   - reconciler: directional comparison of a reference set and a candidate set
//   - parity: the driver that runs every configured rule and renders the report
//   - config: rules as data, layered from defaults, a file and the environment
//   - parityerrors: typed errors for missing input, malformed input and bad configuration
//
// # Quick Start
//
// Run the default check from the repository root:
//
//	checker, err := parity.New(config.Default(), parity.WithOutput(os.Stdout))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := checker.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(report.ExitCode())
//
// Compare two path sets directly:
//
//	unified := pathset.FromDocument(unifiedDoc)
//	v1, _ := pathset.Split(unified)
//	res := reconciler.Reconcile(v1, pathset.FromDocument(v1Doc), "spec3.sdk.json", "v1")
//	for _, d := range res.Discrepancies() {
//	    fmt.Println(d)
//	}
//
// # Command Line
//
// The specparity command runs the check (the default), watches documents and
// re-runs on change, lists the paths of one document, prints the effective
// configuration and serves the check over MCP. Exit codes are 0 when every rule
// matched, 1 when a document is missing or a rule found discrepancies, and 2
// for malformed documents, invalid configuration or usage errors.
//
// # Build Metadata
//
// [Version], [Commit] and [BuildTime] are set with -ldflags during release
// builds and report "dev" or "unknown" otherwise.
package specparity
