package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specparity/config"
	"github.com/erraggy/specparity/parity"
)

type checkParityInput struct {
	ConfigFile string `json:"config_file,omitempty" jsonschema:"Path to a specparity configuration file (YAML or JSON). Defaults to SPECPARITY_MCP_CONFIG_FILE or the built-in rules."`
	SpecDir    string `json:"spec_dir,omitempty"    jsonschema:"Directory holding the documents. Overrides the configuration's spec_dir."`
}

type ruleOutput struct {
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Namespace  string   `json:"namespace"`
	Expected   int      `json:"expected"`
	Actual     int      `json:"actual"`
	Matched    int      `json:"matched"`
	Missing    []string `json:"missing,omitempty"`
	Unexpected []string `json:"unexpected,omitempty"`
}

type noteOutput struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

type documentOutput struct {
	Name      string `json:"name"`
	File      string `json:"file"`
	PathCount int    `json:"path_count"`
}

type checkParityOutput struct {
	Passed    bool             `json:"passed"`
	Summary   string           `json:"summary"`
	Documents []documentOutput `json:"documents"`
	Rules     []ruleOutput     `json:"rules"`
	Notes     []noteOutput     `json:"notes,omitempty"`
}

func handleCheckParity(ctx context.Context, _ *mcp.CallToolRequest, input checkParityInput) (*mcp.CallToolResult, any, error) {
	configFile := input.ConfigFile
	if configFile == "" {
		configFile = cfg.ConfigFile
	}
	c, err := config.Load(configFile)
	if err != nil {
		return errResult(err), nil, nil
	}

	specDir := input.SpecDir
	if specDir == "" {
		specDir = cfg.SpecDir
	}
	if specDir != "" {
		c.SpecDir = specDir
	}

	checker, err := parity.New(c)
	if err != nil {
		return errResult(err), nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.CheckTimeout)
	defer cancel()

	report, err := checker.Run(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}
	return nil, buildCheckOutput(report), nil
}

func buildCheckOutput(report *parity.Report) checkParityOutput {
	out := checkParityOutput{
		Passed:    report.Passed,
		Summary:   report.Summary,
		Documents: makeSlice[documentOutput](len(report.Documents)),
		Rules:     makeSlice[ruleOutput](len(report.Rules)),
		Notes:     makeSlice[noteOutput](len(report.Notes)),
	}
	for _, d := range report.Documents {
		out.Documents = append(out.Documents, documentOutput{Name: d.Name, File: d.File, PathCount: d.PathCount})
	}
	for _, r := range report.Rules {
		ro := ruleOutput{Name: r.Name, Matched: r.Matched}
		if res := r.Result; res != nil {
			ro.Label = res.Label
			ro.Namespace = res.Namespace
			ro.Expected = res.ExpectedCount
			ro.Actual = res.ActualCount
			ro.Missing = res.Missing
			ro.Unexpected = res.Extra
		}
		out.Rules = append(out.Rules, ro)
	}
	for _, n := range report.Notes {
		out.Notes = append(out.Notes, noteOutput{Name: n.Name, Count: n.Count, Message: n.Message})
	}
	return out
}
