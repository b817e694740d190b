// Package loader locates and reads API specification documents.
//
// A document is any JSON or YAML object; specparity only ever reads the key set of
// its top-level "paths" field, so the loader performs no OpenAPI version detection
// or structural validation beyond "is this an object".
//
// # Locating documents
//
// [CheckExists] resolves every configured location before anything is parsed, so a
// run reports all missing documents at once:
//
//	paths, err := loader.CheckExists("api/openapi-spec", []string{"spec3.sdk.json", "spec3.cli.json"})
//	if errors.Is(err, parityerrors.ErrMissingInput) {
//	    // every missing location is listed on the error
//	}
//
// Locations may be doublestar patterns (e.g. "spec3.sdk.*") as long as they match
// exactly one file.
//
// # Loading
//
//	doc, err := loader.Load("api/openapi-spec/spec3.sdk.json")
//
// JSON is decoded with encoding/json; YAML and content without a recognized
// extension go through go.yaml.in/yaml/v4. Undecodable content, a top level that is
// not an object, or a "paths" field that is not an object returns a
// *parityerrors.MalformedInputError.
package loader
