// Package parity runs the path-parity check between standalone versioned API
// documents and the unified documents merged from them.
//
// A [Checker] is built from a [config.Config]. Run resolves every configured
// document, loads each one, extracts its path set, partitions the unified
// documents by namespace and executes every rule in order. All rules run even
// after a failure, so one run reports every discrepancy.
//
//	checker, err := parity.New(config.Default(), parity.WithOutput(os.Stdout))
//	if err != nil {
//	    return err
//	}
//	report, err := checker.Run(ctx)
//	if err != nil {
//	    return err // missing or malformed input
//	}
//	os.Exit(report.ExitCode())
//
// In text format the console report is written while the check runs. The
// json and yaml formats write only the final [Report].
package parity
