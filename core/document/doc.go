// Package document reads JSON (and YAML) documents from a single directory level
// and decodes them into canonical values for core/diff.
//
// Canonical values are nil, bool, json.Number, string, []any and map[string]any.
// JSON is decoded with UseNumber so numeric precision is never lost; YAML is
// decoded with gopkg.in/yaml.v3 and normalized into the same shapes.
package document
