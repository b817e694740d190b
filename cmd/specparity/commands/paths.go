package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erraggy/specparity/internal/cliutil"
	"github.com/erraggy/specparity/loader"
	"github.com/erraggy/specparity/pathset"
)

// pathsOutput is the structured output of the paths command.
type pathsOutput struct {
	File      string         `json:"file" yaml:"file"`
	Namespace string         `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Count     int            `json:"count" yaml:"count"`
	Counts    map[string]int `json:"namespaces,omitempty" yaml:"namespaces,omitempty"`
	Paths     []string       `json:"paths" yaml:"paths"`
}

func (a *app) newPathsCommand() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "paths FILE",
		Short: "List the path identifiers of one document",
		Long: `Print the sorted path identifiers of one document, optionally restricted to
one configured namespace (v1 or v2 by default).`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runPaths(args[0], namespace)
		},
	}
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "restrict output to one namespace")
	return cmd
}

func (a *app) runPaths(file, namespace string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	partitioner, err := cfg.Partitioner()
	if err != nil {
		return err
	}

	doc, err := loader.LoadWithOptions(loader.WithFilePath(file), loader.WithLogger(a.libLogger()))
	if err != nil {
		return err
	}
	set := pathset.FromDocument(doc)
	part := partitioner.Partition(set)

	out := pathsOutput{File: file, Counts: part.Counts()}
	if namespace != "" {
		known := false
		for _, name := range part.Names() {
			known = known || name == namespace
		}
		if !known {
			return usageError(fmt.Errorf("unknown namespace '%s'. Valid namespaces: %v", namespace, part.Names()))
		}
		set = part.Get(namespace)
		out.Namespace = namespace
		out.Counts = nil
	}
	out.Paths = set.Sorted()
	out.Count = len(out.Paths)

	if cliutil.IsStructured(a.flags.Format) {
		return cliutil.WriteStructured(a.stdout, out, a.flags.Format)
	}
	cliutil.Writeln(a.stdout, out.Paths...)
	return nil
}
