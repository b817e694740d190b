package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specparity/pathset"
)

type partitionPathsInput struct {
	Document   documentInput       `json:"document"             jsonschema:"The OpenAPI document to partition"`
	Namespaces []pathset.Namespace `json:"namespaces,omitempty" jsonschema:"Namespaces to split by (name and prefix). Defaults to v1=/v1/ and v2=/v2/."`
	Limit      int                 `json:"limit,omitempty"      jsonschema:"Maximum number of paths listed per namespace (default 100)"`
}

type namespaceOutput struct {
	Name      string   `json:"name"`
	Prefix    string   `json:"prefix"`
	Count     int      `json:"count"`
	Paths     []string `json:"paths,omitempty"`
	Truncated bool     `json:"truncated,omitempty"`
}

type partitionPathsOutput struct {
	Total      int               `json:"total"`
	Namespaces []namespaceOutput `json:"namespaces"`
	OtherCount int               `json:"other_count"`
	Other      []string          `json:"other,omitempty"`
}

func handlePartitionPaths(_ context.Context, _ *mcp.CallToolRequest, input partitionPathsInput) (*mcp.CallToolResult, any, error) {
	doc, err := input.Document.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	partitioner := pathset.DefaultPartitioner()
	if len(input.Namespaces) > 0 {
		partitioner, err = pathset.NewPartitioner(input.Namespaces...)
		if err != nil {
			return errResult(err), nil, nil
		}
	}

	limit := clampLimit(input.Limit)
	paths := pathset.FromDocument(doc)
	part := partitioner.Partition(paths)

	out := partitionPathsOutput{
		Total:      paths.Len(),
		Namespaces: makeSlice[namespaceOutput](len(partitioner.Namespaces())),
		OtherCount: part.Other.Len(),
	}
	for _, ns := range partitioner.Namespaces() {
		subset := part.Get(ns.Name)
		listed, truncated := truncate(subset.Sorted(), limit)
		out.Namespaces = append(out.Namespaces, namespaceOutput{
			Name:      ns.Name,
			Prefix:    ns.Prefix,
			Count:     subset.Len(),
			Paths:     listed,
			Truncated: truncated,
		})
	}
	if cfg.IncludeOther {
		out.Other, _ = truncate(part.Other.Sorted(), limit)
	}
	return nil, out, nil
}

func truncate(items []string, limit int) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	if len(items) > limit {
		return items[:limit], true
	}
	return items, false
}
