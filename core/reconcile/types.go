package reconcile

// Result is the correspondence between a library entry set and an online entry set.
type Result struct {
	// Matched contains names present on both sides, in library order.
	Matched []string `json:"matched"`

	// OnlyLibrary contains names the online side is missing, in library order.
	OnlyLibrary []string `json:"only_library"`

	// OnlyOnline contains names with no library counterpart, in online order.
	OnlyOnline []string `json:"only_online"`
}

// Union returns every distinct name seen on either side:
// library names first, then the online-only extras.
func (r Result) Union() []string {
	union := make([]string, 0, len(r.Matched)+len(r.OnlyLibrary)+len(r.OnlyOnline))
	seen := make(map[string]struct{}, cap(union))
	for _, group := range [][]string{r.Matched, r.OnlyLibrary, r.OnlyOnline} {
		for _, name := range group {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			union = append(union, name)
		}
	}
	return union
}

// Complete returns true when every library entry exists online.
// Online-only extras do not affect completeness.
func (r Result) Complete() bool {
	return len(r.OnlyLibrary) == 0
}
