package compare

import (
	"errors"
	"fmt"

	"template-verifier/core/document"
)

// Title returns the display name of the side.
func (s Side) Title() string {
	if s == SideOnline {
		return "Online"
	}
	return "Library"
}

func rootFinding(task Task, root MissingRoot) Finding {
	f := Finding{
		Type:    FindingRootMissing,
		Tier:    task.Tier,
		Kind:    task.Kind.Name,
		Path:    root.Path,
		Message: fmt.Sprintf("%s directory for %s %s doesn't exist.", task.Kind.Title, root.Side.Title(), task.Label),
		Failure: true,
	}
	if root.Err != nil {
		f.Message = fmt.Sprintf("%s directory for %s %s can't be read.", task.Kind.Title, root.Side.Title(), task.Label)
		f.Error = root.Err.Error()
	}
	return f
}

// outcomeFinding converts an outcome into a finding. Identical matched entries
// produce no finding.
func outcomeFinding(task Task, o Outcome, failOnExtra bool) (Finding, bool) {
	f := Finding{Tier: task.Tier, Kind: task.Kind.Name, Name: o.Name}

	switch o.Status {
	case StatusMatched:
		if o.Diff.Empty() {
			return Finding{}, false
		}
		f.Type = FindingStructuralMismatch
		f.Message = fmt.Sprintf("Upstream %s is different with Online %s %s %s", task.Kind.Name, task.Label, task.Kind.Name, o.Name)
		f.Changes = o.Diff.Entries()
		f.Failure = true
	case StatusMissingFromOnline:
		f.Type = FindingEntryMissing
		f.Message = fmt.Sprintf("Online %s directory is missing %s %s", task.Label, task.Kind.Name, o.Name)
		f.Failure = true
	case StatusMissingFromLibrary:
		f.Type = FindingExtraOnlineEntry
		f.Message = fmt.Sprintf("Library %s directory is missing %s %s", task.Label, task.Kind.Name, o.Name)
		f.Failure = failOnExtra
	case StatusParseError:
		verb := "read"
		if errors.Is(o.Err, document.ErrParse) {
			verb = "parse"
		}
		f.Type = FindingParseError
		f.Message = fmt.Sprintf("Failed to %s %s %s %s %s", verb, o.Side.Title(), task.Label, task.Kind.Name, o.Name)
		f.Failure = true
		if o.Err != nil {
			f.Error = o.Err.Error()
		}
	default:
		return Finding{}, false
	}

	return f, true
}
