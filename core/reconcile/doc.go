// Package reconcile matches two named entry sets against each other.
//
// One side is the library (the source of truth) and the other side is the
// online copy that should mirror it. Reconcile builds an index of each side and
// classifies every distinct name:
//
//   - Matched: present on both sides, in library order.
//   - OnlyLibrary: expected from the library but missing online. Callers treat
//     these as failures.
//   - OnlyOnline: present online without a library counterpart. These are
//     diagnostic only.
//
// # Usage Example
//
//	res := reconcile.Reconcile(
//	    []string{"a.json", "b.json"},
//	    []string{"a.json", "c.json"},
//	)
//	// res.Matched     == [a.json]
//	// res.OnlyLibrary == [b.json]
//	// res.OnlyOnline  == [c.json]
//
// The output depends only on the order of the inputs, so repeated runs over
// the same directory listings produce identical results.
package reconcile
