// Package diff computes structural differences between two decoded JSON documents.
//
// Values are expected in canonical form: nil, bool, json.Number, string, []any
// and map[string]any (see core/document.Normalize). Plain Go numbers (int, float64)
// are accepted as well and compared by value.
//
// # Rules
//
//   - Values of different JSON types are always unequal and are reported as a
//     type mismatch at the path where the types diverge.
//   - Objects are compared key by key. Key order never matters.
//   - Arrays are compared by position. Extra trailing elements are reported as
//     added or removed; there is no attempt to re-align reordered elements.
//   - Numbers are compared by exact value, so 1, 1.0 and 1e0 are equal.
//
// # Report
//
// Compare returns a Report tree that mirrors the shape of the compared documents.
// The zero Report means the documents are deeply equal. Entries flattens the tree
// into path-addressed changes in a deterministic order:
//
//	r := diff.Compare(library, online)
//	if !r.Empty() {
//	    for _, e := range r.Entries() {
//	        fmt.Println(e) // $.spec.tags[0].name: changed "latest" -> "stable"
//	    }
//	}
package diff
