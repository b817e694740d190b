package pathset

import (
	"fmt"
	"strings"

	"github.com/erraggy/specparity/parityerrors"
)

// Namespace classifies path identifiers by an exact string prefix.
type Namespace struct {
	Name   string `json:"name"   yaml:"name"   mapstructure:"name"`
	Prefix string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`
}

// Contains reports whether path falls in the namespace.
func (n Namespace) Contains(path string) bool {
	return strings.HasPrefix(path, n.Prefix)
}

// Default namespaces recognised by a stock run.
var (
	V1 = Namespace{Name: "v1", Prefix: "/v1/"}
	V2 = Namespace{Name: "v2", Prefix: "/v2/"}
)

// DefaultNamespaces returns the /v1/ and /v2/ namespaces in that order.
func DefaultNamespaces() []Namespace {
	return []Namespace{V1, V2}
}

// Partition is the split of one PathSet by namespace.
// Subsets are disjoint; paths matching no namespace land in Other.
type Partition struct {
	names   []string
	subsets map[string]PathSet
	// Other holds the paths outside every namespace. It is never reported as a
	// discrepancy.
	Other PathSet
}

// Get returns the subset for the named namespace, or an empty set if the
// namespace is unknown.
func (p Partition) Get(name string) PathSet {
	if s, ok := p.subsets[name]; ok {
		return s
	}
	return PathSet{}
}

// Names returns the namespace names in partitioner order.
func (p Partition) Names() []string {
	return append([]string(nil), p.names...)
}

// Counts returns the size of each namespace subset keyed by name.
func (p Partition) Counts() map[string]int {
	counts := make(map[string]int, len(p.subsets))
	for name, s := range p.subsets {
		counts[name] = len(s)
	}
	return counts
}

// Partitioner splits path sets into namespace subsets.
type Partitioner struct {
	namespaces []Namespace
}

// NewPartitioner validates namespaces and returns a Partitioner.
//
// Names must be unique and non-empty, prefixes non-empty, and no prefix may be a
// prefix of another: overlapping prefixes would let one path belong to two
// namespaces.
func NewPartitioner(namespaces ...Namespace) (*Partitioner, error) {
	if len(namespaces) == 0 {
		return nil, &parityerrors.ConfigError{Option: "namespaces", Message: "at least one namespace is required"}
	}

	seen := make(map[string]bool, len(namespaces))
	for i, ns := range namespaces {
		if ns.Name == "" {
			return nil, &parityerrors.ConfigError{Option: fmt.Sprintf("namespaces[%d].name", i), Message: "must not be empty"}
		}
		if ns.Prefix == "" {
			return nil, &parityerrors.ConfigError{Option: fmt.Sprintf("namespaces[%d].prefix", i), Message: "must not be empty"}
		}
		if seen[ns.Name] {
			return nil, &parityerrors.ConfigError{Option: "namespaces", Value: ns.Name, Message: "duplicate namespace name"}
		}
		seen[ns.Name] = true

		for _, other := range namespaces[:i] {
			if strings.HasPrefix(ns.Prefix, other.Prefix) || strings.HasPrefix(other.Prefix, ns.Prefix) {
				return nil, &parityerrors.ConfigError{
					Option:  "namespaces",
					Value:   ns.Prefix,
					Message: fmt.Sprintf("prefix overlaps %q of namespace %s", other.Prefix, other.Name),
				}
			}
		}
	}

	return &Partitioner{namespaces: append([]Namespace(nil), namespaces...)}, nil
}

// DefaultPartitioner returns a Partitioner over DefaultNamespaces.
func DefaultPartitioner() *Partitioner {
	return &Partitioner{namespaces: DefaultNamespaces()}
}

// Namespaces returns a copy of the configured namespaces.
func (p *Partitioner) Namespaces() []Namespace {
	return append([]Namespace(nil), p.namespaces...)
}

// Partition splits set by exact prefix match. It is pure: the same input always
// yields the same subsets and set is not modified.
func (p *Partitioner) Partition(set PathSet) Partition {
	part := Partition{
		names:   make([]string, 0, len(p.namespaces)),
		subsets: make(map[string]PathSet, len(p.namespaces)),
		Other:   PathSet{},
	}
	for _, ns := range p.namespaces {
		part.names = append(part.names, ns.Name)
		part.subsets[ns.Name] = PathSet{}
	}

	for path := range set {
		placed := false
		for _, ns := range p.namespaces {
			if ns.Contains(path) {
				part.subsets[ns.Name][path] = struct{}{}
				placed = true
				break
			}
		}
		if !placed {
			part.Other[path] = struct{}{}
		}
	}
	return part
}

// Split partitions set into its /v1/ and /v2/ subsets.
func Split(set PathSet) (v1, v2 PathSet) {
	part := DefaultPartitioner().Partition(set)
	return part.Get(V1.Name), part.Get(V2.Name)
}
