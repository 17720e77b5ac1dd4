package diff

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Kind is the JSON type of a value.
type Kind string

const (
	KindNull    Kind = "null"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	// KindUnknown is returned for Go values that have no JSON counterpart.
	KindUnknown Kind = "unknown"
)

// KindOf returns the JSON type of a decoded value.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case json.Number, float64, float32, int, int64, int32, uint, uint64, uint32:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindUnknown
	}
}

// Compare returns the structural difference between a and b.
// a is treated as the expected (library) side and b as the actual (online) side.
func Compare(a, b any) Report {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return Report{Op: OpTypeMismatch, Old: a, New: b}
	}

	switch ka {
	case KindObject:
		return compareObjects(a.(map[string]any), b.(map[string]any))
	case KindArray:
		return compareArrays(a.([]any), b.([]any))
	default:
		if !scalarEqual(ka, a, b) {
			return Report{Op: OpChanged, Old: a, New: b}
		}
		return Report{}
	}
}

func compareObjects(a, b map[string]any) Report {
	var r Report

	for key, av := range a {
		bv, ok := b[key]
		if !ok {
			if r.Removed == nil {
				r.Removed = make(map[string]any)
			}
			r.Removed[key] = av
			continue
		}
		if sub := Compare(av, bv); !sub.Empty() {
			if r.Changed == nil {
				r.Changed = make(map[string]Report)
			}
			r.Changed[key] = sub
		}
	}

	for key, bv := range b {
		if _, ok := a[key]; ok {
			continue
		}
		if r.Added == nil {
			r.Added = make(map[string]any)
		}
		r.Added[key] = bv
	}

	return r
}

func compareArrays(a, b []any) Report {
	var r Report

	common := min(len(a), len(b))
	for i := 0; i < common; i++ {
		if sub := Compare(a[i], b[i]); !sub.Empty() {
			if r.ChangedItems == nil {
				r.ChangedItems = make(map[int]Report)
			}
			r.ChangedItems[i] = sub
		}
	}

	for i := common; i < len(a); i++ {
		if r.RemovedItems == nil {
			r.RemovedItems = make(map[int]any)
		}
		r.RemovedItems[i] = a[i]
	}

	for i := common; i < len(b); i++ {
		if r.AddedItems == nil {
			r.AddedItems = make(map[int]any)
		}
		r.AddedItems[i] = b[i]
	}

	return r
}

func scalarEqual(kind Kind, a, b any) bool {
	switch kind {
	case KindNull:
		return true
	case KindBoolean:
		return a.(bool) == b.(bool)
	case KindString:
		return a.(string) == b.(string)
	case KindNumber:
		na, okA := a.(json.Number)
		nb, okB := b.(json.Number)
		if okA && okB && na == nb {
			return true
		}
		ra, okA := toRat(a)
		rb, okB := toRat(b)
		if !okA || !okB {
			// Literals beyond big.Rat's exponent range fall back to text.
			return okA == okB && fmt.Sprint(a) == fmt.Sprint(b)
		}
		return ra.Cmp(rb) == 0
	default:
		return false
	}
}

// toRat converts a numeric value to an exact rational so that 1, 1.0 and 1e0
// compare equal without any tolerance.
func toRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case json.Number:
		return new(big.Rat).SetString(n.String())
	case float64:
		r := new(big.Rat).SetFloat64(n)
		return r, r != nil
	case float32:
		r := new(big.Rat).SetFloat64(float64(n))
		return r, r != nil
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case int32:
		return new(big.Rat).SetInt64(int64(n)), true
	case uint:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Rat).SetUint64(n), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(n)), true
	default:
		return nil, false
	}
}
