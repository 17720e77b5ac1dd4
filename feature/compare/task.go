package compare

import (
	"context"

	"template-verifier/core/diff"
	"template-verifier/core/document"
	"template-verifier/core/reconcile"
)

// Catalog is a named set of documents under one root.
// *document.Dir is the filesystem implementation.
type Catalog interface {
	Root() string
	Exists() (bool, error)
	Names() ([]string, error)
	Load(name string) (any, error)
}

// Opener returns the catalog rooted at root.
type Opener func(root string) Catalog

// DirOpener opens filesystem catalogs that pick up the given extensions.
func DirOpener(extensions ...string) Opener {
	return func(root string) Catalog {
		return document.OpenDir(root, extensions...)
	}
}

// RunTask compares the library and online catalogs of a single task.
//
// Both roots are checked first; a missing root is recorded and the task yields
// no outcomes. Otherwise outcomes follow the library listing order (matched
// entries diffed, absent ones reported missing from online) followed by the
// online-only entries.
func RunTask(ctx context.Context, task Task, open Opener) TaskResult {
	result := TaskResult{Task: task}

	library := open(task.LibraryRoot)
	online := open(task.OnlineRoot)

	var libraryNames, onlineNames []string
	for _, side := range []struct {
		side    Side
		catalog Catalog
		names   *[]string
	}{
		{SideLibrary, library, &libraryNames},
		{SideOnline, online, &onlineNames},
	} {
		ok, err := side.catalog.Exists()
		if err == nil && ok {
			*side.names, err = side.catalog.Names()
			if err == nil {
				continue
			}
		}
		result.MissingRoots = append(result.MissingRoots, MissingRoot{
			Side: side.side,
			Path: side.catalog.Root(),
			Err:  err,
		})
	}
	if len(result.MissingRoots) > 0 {
		return result
	}

	rec := reconcile.Reconcile(libraryNames, onlineNames)
	result.Entries = len(rec.Union())
	result.Complete = rec.Complete()
	matched := make(map[string]struct{}, len(rec.Matched))
	for _, name := range rec.Matched {
		matched[name] = struct{}{}
	}
	seen := make(map[string]struct{}, len(libraryNames))

	for _, name := range libraryNames {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}

		if _, ok := matched[name]; !ok {
			result.Outcomes = append(result.Outcomes, Outcome{Status: StatusMissingFromOnline, Name: name})
			continue
		}
		result.Outcomes = append(result.Outcomes, compareEntry(name, library, online))
	}

	for _, name := range rec.OnlyOnline {
		result.Outcomes = append(result.Outcomes, Outcome{Status: StatusMissingFromLibrary, Name: name})
	}

	return result
}

func compareEntry(name string, library, online Catalog) Outcome {
	a, err := library.Load(name)
	if err != nil {
		return Outcome{Status: StatusParseError, Name: name, Side: SideLibrary, Err: err}
	}
	b, err := online.Load(name)
	if err != nil {
		return Outcome{Status: StatusParseError, Name: name, Side: SideOnline, Err: err}
	}
	return Outcome{Status: StatusMatched, Name: name, Diff: diff.Compare(a, b)}
}
