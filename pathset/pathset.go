// Package pathset derives and compares sets of path identifiers.
//
// A PathSet is the key set of a document's "paths" object. Sets are values: every
// operation returns a new set and never mutates its receiver or arguments.
package pathset

import (
	"maps"
	"slices"

	"github.com/erraggy/specparity/loader"
)

// PathSet is a set of unique path identifier strings.
type PathSet map[string]struct{}

// New returns a PathSet holding the given paths.
func New(paths ...string) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

// FromDocument returns the key set of doc's "paths" field.
// A nil document or one without paths yields the empty set.
func FromDocument(doc *loader.Document) PathSet {
	if doc == nil {
		return PathSet{}
	}
	return FromData(doc.Data)
}

// FromData returns the key set of data["paths"]. An absent or null "paths" field
// yields the empty set rather than an error.
func FromData(data map[string]any) PathSet {
	switch paths := data["paths"].(type) {
	case map[string]any:
		s := make(PathSet, len(paths))
		for k := range paths {
			s[k] = struct{}{}
		}
		return s
	case map[any]any:
		s := make(PathSet, len(paths))
		for k := range paths {
			if key, ok := k.(string); ok {
				s[key] = struct{}{}
			}
		}
		return s
	default:
		return PathSet{}
	}
}

// Len returns the number of paths in the set.
func (s PathSet) Len() int {
	return len(s)
}

// Has reports whether path is in the set.
func (s PathSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Sorted returns the members in byte-wise lexicographic order.
// The result is never nil.
func (s PathSet) Sorted() []string {
	out := make([]string, 0, len(s))
	out = slices.AppendSeq(out, maps.Keys(s))
	slices.Sort(out)
	return out
}

// Difference returns the members of s that are not in other (s − other).
func (s PathSet) Difference(other PathSet) PathSet {
	out := make(PathSet)
	for p := range s {
		if !other.Has(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Intersect returns the members present in both s and other.
func (s PathSet) Intersect(other PathSet) PathSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(PathSet, len(small))
	for p := range small {
		if large.Has(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Union returns the members present in either s or other.
func (s PathSet) Union(other PathSet) PathSet {
	out := make(PathSet, len(s)+len(other))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// Equal reports whether s and other hold exactly the same paths.
func (s PathSet) Equal(other PathSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every member of s is in other.
func (s PathSet) IsSubsetOf(other PathSet) bool {
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
