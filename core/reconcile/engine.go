package reconcile

// Reconcile classifies library and online names into matched, library-only and
// online-only groups. The library drives the iteration: it decides what should
// exist online. Duplicate names within one side are collapsed, first occurrence wins.
func Reconcile(library, online []string) Result {
	onlineIndex := buildIndex(online)
	libraryIndex := buildIndex(library)

	result := Result{
		Matched:     []string{},
		OnlyLibrary: []string{},
		OnlyOnline:  []string{},
	}

	seen := make(map[string]struct{}, len(library))
	for _, name := range library {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := onlineIndex[name]; ok {
			result.Matched = append(result.Matched, name)
		} else {
			result.OnlyLibrary = append(result.OnlyLibrary, name)
		}
	}

	seen = make(map[string]struct{}, len(online))
	for _, name := range online {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := libraryIndex[name]; !ok {
			result.OnlyOnline = append(result.OnlyOnline, name)
		}
	}

	return result
}

// buildIndex creates a set of names for constant-time membership checks.
func buildIndex(names []string) map[string]struct{} {
	index := make(map[string]struct{}, len(names))
	for _, name := range names {
		index[name] = struct{}{}
	}
	return index
}
