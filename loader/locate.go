package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/erraggy/specparity/parityerrors"
)

// Locate resolves a document location relative to dir.
//
// Plain locations are joined with dir and must exist. Locations containing glob
// meta characters (*, ?, [ or {) are expanded with doublestar and must match
// exactly one file: no match is a missing input, several matches is a
// configuration error. Only location is read as a pattern; meta characters in
// dir match literally.
func Locate(dir, location string) (string, error) {
	path := location
	if dir != "" && !filepath.IsAbs(location) {
		path = filepath.Join(dir, location)
	}

	if !hasGlobMeta(location) {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", &parityerrors.MissingInputError{Locations: []string{path}, Cause: err}
			}
			return "", fmt.Errorf("loader: checking %s: %w", path, err)
		}
		return path, nil
	}

	matches, err := glob(dir, location)
	if err != nil {
		return "", &parityerrors.ConfigError{Option: "location", Value: location, Message: "invalid glob pattern", Cause: err}
	}
	switch len(matches) {
	case 0:
		return "", &parityerrors.MissingInputError{Locations: []string{path}}
	case 1:
		return matches[0], nil
	default:
		return "", &parityerrors.ConfigError{
			Option:  "location",
			Value:   location,
			Message: fmt.Sprintf("pattern matches %d files: %s", len(matches), strings.Join(matches, ", ")),
		}
	}
}

// CheckExists resolves every location before returning, so that a single run
// reports all missing documents at once. On success the resolved paths are
// returned in input order. If any location is missing, the returned
// *parityerrors.MissingInputError lists all of them.
func CheckExists(dir string, locations []string) ([]string, error) {
	resolved := make([]string, 0, len(locations))
	var missing []string

	for _, loc := range locations {
		path, err := Locate(dir, loc)
		if err != nil {
			var missingErr *parityerrors.MissingInputError
			if errors.As(err, &missingErr) {
				missing = append(missing, missingErr.Locations...)
				continue
			}
			return nil, err
		}
		resolved = append(resolved, path)
	}

	if len(missing) > 0 {
		return nil, &parityerrors.MissingInputError{Locations: missing}
	}
	return resolved, nil
}

// glob expands location below dir. The static prefix of location is split off
// and joined with dir, so only the remainder is matched and dir is never
// parsed as a pattern.
func glob(dir, location string) ([]string, error) {
	base, pattern := doublestar.SplitPattern(filepath.ToSlash(location))
	root := filepath.FromSlash(base)
	if dir != "" && !filepath.IsAbs(location) {
		root = filepath.Join(dir, root)
	}
	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	return matches, nil
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
