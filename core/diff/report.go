package diff

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Op describes the nature of a single change.
type Op string

const (
	// OpAdded marks a key or trailing array element present only on the online side.
	OpAdded Op = "added"
	// OpRemoved marks a key or trailing array element present only on the library side.
	OpRemoved Op = "removed"
	// OpChanged marks two scalars of the same type with different values.
	OpChanged Op = "changed"
	// OpTypeMismatch marks two values of different JSON types.
	OpTypeMismatch Op = "type_mismatch"
)

// Report is the structural difference between two values.
// Leaf differences set Op, Old and New. Object differences fill Added, Removed
// and Changed; array differences fill AddedItems, RemovedItems and ChangedItems.
// Nested reports are only stored when non-empty.
type Report struct {
	Op  Op
	Old any
	New any

	Added   map[string]any
	Removed map[string]any
	Changed map[string]Report

	AddedItems   map[int]any
	RemovedItems map[int]any
	ChangedItems map[int]Report
}

// Entry is one flattened change, addressed by a JSONPath-like path.
type Entry struct {
	Path string `json:"path"`
	Op   Op     `json:"op"`
	Old  any    `json:"old"`
	New  any    `json:"new"`
}

// Empty reports whether the compared values were deeply equal.
func (r Report) Empty() bool {
	return r.Op == "" &&
		len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0 &&
		len(r.AddedItems) == 0 && len(r.RemovedItems) == 0 && len(r.ChangedItems) == 0
}

// Entries flattens the report. Object keys are visited in sorted order and
// array indices in ascending order, so the result is stable across runs.
func (r Report) Entries() []Entry {
	var out []Entry
	r.collect("$", &out)
	return out
}

// String renders one line per change.
func (r Report) String() string {
	entries := r.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}

func (r Report) collect(path string, out *[]Entry) {
	if r.Op != "" {
		*out = append(*out, Entry{Path: path, Op: r.Op, Old: r.Old, New: r.New})
		return
	}

	keys := make(map[string]struct{}, len(r.Added)+len(r.Removed)+len(r.Changed))
	for k := range r.Removed {
		keys[k] = struct{}{}
	}
	for k := range r.Added {
		keys[k] = struct{}{}
	}
	for k := range r.Changed {
		keys[k] = struct{}{}
	}
	sortedKeys := make([]string, 0, len(keys))
	for k := range keys {
		sortedKeys = append(sortedKeys, k)
	}
	sort.Strings(sortedKeys)

	for _, k := range sortedKeys {
		p := path + keySegment(k)
		if v, ok := r.Removed[k]; ok {
			*out = append(*out, Entry{Path: p, Op: OpRemoved, Old: v})
		}
		if v, ok := r.Added[k]; ok {
			*out = append(*out, Entry{Path: p, Op: OpAdded, New: v})
		}
		if sub, ok := r.Changed[k]; ok {
			sub.collect(p, out)
		}
	}

	indices := make(map[int]struct{}, len(r.AddedItems)+len(r.RemovedItems)+len(r.ChangedItems))
	for i := range r.ChangedItems {
		indices[i] = struct{}{}
	}
	for i := range r.RemovedItems {
		indices[i] = struct{}{}
	}
	for i := range r.AddedItems {
		indices[i] = struct{}{}
	}
	sortedIdx := make([]int, 0, len(indices))
	for i := range indices {
		sortedIdx = append(sortedIdx, i)
	}
	sort.Ints(sortedIdx)

	for _, i := range sortedIdx {
		p := path + "[" + strconv.Itoa(i) + "]"
		if sub, ok := r.ChangedItems[i]; ok {
			sub.collect(p, out)
		}
		if v, ok := r.RemovedItems[i]; ok {
			*out = append(*out, Entry{Path: p, Op: OpRemoved, Old: v})
		}
		if v, ok := r.AddedItems[i]; ok {
			*out = append(*out, Entry{Path: p, Op: OpAdded, New: v})
		}
	}
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func keySegment(key string) string {
	if identifier.MatchString(key) {
		return "." + key
	}
	return "[" + strconv.Quote(key) + "]"
}

// String renders the entry as "path: op detail".
func (e Entry) String() string {
	switch e.Op {
	case OpAdded:
		return fmt.Sprintf("%s: added %s", e.Path, formatValue(e.New))
	case OpRemoved:
		return fmt.Sprintf("%s: removed %s", e.Path, formatValue(e.Old))
	case OpTypeMismatch:
		return fmt.Sprintf("%s: type mismatch %s -> %s (%s -> %s)",
			e.Path, KindOf(e.Old), KindOf(e.New), formatValue(e.Old), formatValue(e.New))
	default:
		return fmt.Sprintf("%s: changed %s -> %s", e.Path, formatValue(e.Old), formatValue(e.New))
	}
}

func formatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
