package compare

import (
	"errors"
	"fmt"
	"time"

	"template-verifier/core/diff"
)

var (
	// ErrDifferences is returned by callers that turn a failed verdict into an error.
	ErrDifferences = errors.New("differences found")
	// ErrAborted is returned when the run stops at a malformed document.
	ErrAborted = errors.New("run aborted")
)

// Kind is a category of documents compared between library and online.
type Kind struct {
	// Name is the singular machine name (e.g. "template").
	Name string `json:"name"`
	// Title is the plural display name (e.g. "Templates").
	Title string `json:"title"`
}

var (
	KindTemplate    = Kind{Name: "template", Title: "Templates"}
	KindImagestream = Kind{Name: "imagestream", Title: "Imagestreams"}
)

// Kinds lists the supported document kinds in comparison order.
var Kinds = []Kind{KindTemplate, KindImagestream}

// KindByName returns the kind with the given machine name.
func KindByName(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.Name == name {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("unknown document kind %q", name)
}

// Task is one unit of comparison: a tier and document kind with its two roots.
type Task struct {
	// Tier is the tier directory name (e.g. "free").
	Tier string `json:"tier"`
	// Label is the tier display name (e.g. "Free").
	Label string `json:"label"`
	// Kind is the document kind compared.
	Kind Kind `json:"kind"`
	// LibraryRoot is the source of truth directory.
	LibraryRoot string `json:"library_root"`
	// OnlineRoot is the deployed copy directory.
	OnlineRoot string `json:"online_root"`
}

// String returns the display name of the task, e.g. "Free templates".
func (t Task) String() string {
	return fmt.Sprintf("%s %ss", t.Label, t.Kind.Name)
}

// Status classifies a single entry of a task.
type Status string

const (
	// StatusMatched means the entry exists on both sides and was diffed.
	StatusMatched Status = "matched"
	// StatusMissingFromOnline means the online side lacks a library entry.
	StatusMissingFromOnline Status = "missing_from_online"
	// StatusMissingFromLibrary means the online side has an entry the library does not.
	StatusMissingFromLibrary Status = "missing_from_library"
	// StatusParseError means one side of a matched entry could not be read or parsed.
	StatusParseError Status = "parse_error"
)

// Side identifies the library or the online hierarchy.
type Side string

const (
	SideLibrary Side = "library"
	SideOnline  Side = "online"
)

// Outcome is the result for one named entry of a task.
type Outcome struct {
	Status Status
	Name   string
	// Diff is set for StatusMatched; empty when the documents are identical.
	Diff diff.Report
	// Side and Err are set for StatusParseError.
	Side Side
	Err  error
}

// MissingRoot records a task directory that does not exist.
type MissingRoot struct {
	Side Side
	Path string
	// Err is set when the directory could not be inspected or listed.
	Err error
}

// TaskResult collects everything a task observed.
type TaskResult struct {
	Task         Task
	Outcomes     []Outcome
	MissingRoots []MissingRoot
	// Entries is the number of distinct names seen on either side.
	Entries int
	// Complete is true when every library entry exists online.
	Complete bool
	// Err is set when the context was cancelled while the task ran.
	Err error
}

// FindingType is the category of a reported finding.
type FindingType string

const (
	FindingRootMissing        FindingType = "root_missing"
	FindingEntryMissing       FindingType = "entry_missing"
	FindingStructuralMismatch FindingType = "structural_mismatch"
	FindingParseError         FindingType = "parse_error"
	FindingExtraOnlineEntry   FindingType = "extra_online_entry"
)

// Finding is one human-relevant observation of a run.
type Finding struct {
	Type    FindingType  `json:"type"`
	Tier    string       `json:"tier"`
	Kind    string       `json:"kind"`
	Name    string       `json:"name,omitempty"`
	Path    string       `json:"path,omitempty"`
	Message string       `json:"message"`
	Failure bool         `json:"failure"`
	Changes []diff.Entry `json:"changes,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	Tasks         int `json:"tasks"`
	Compared      int `json:"compared"`
	Identical     int `json:"identical"`
	Mismatched    int `json:"mismatched"`
	MissingOnline int `json:"missing_online"`
	ExtraOnline   int `json:"extra_online"`
	ParseErrors   int `json:"parse_errors"`
	MissingRoots  int `json:"missing_roots"`
}

// Verdict is the aggregate result of a run.
type Verdict struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	// Failed is true iff at least one finding is a failure.
	Failed   bool      `json:"failed"`
	Findings []Finding `json:"findings"`
	Summary  Summary   `json:"summary"`
}

// Failures returns the failing findings in run order.
func (v *Verdict) Failures() []Finding {
	var out []Finding
	for _, f := range v.Findings {
		if f.Failure {
			out = append(out, f)
		}
	}
	return out
}

// CountByType returns the number of findings per type.
func (v *Verdict) CountByType() map[FindingType]int {
	counts := make(map[FindingType]int)
	for _, f := range v.Findings {
		counts[f.Type]++
	}
	return counts
}

// Duration returns how long the run took.
func (v *Verdict) Duration() time.Duration {
	return v.FinishedAt.Sub(v.StartedAt)
}

// Message returns the final summary line.
func (v *Verdict) Message() string {
	if v.Failed {
		return "Differences found"
	}
	return "No differences found"
}

// ExitCode maps the verdict to a process exit code.
func (v *Verdict) ExitCode() int {
	if v.Failed {
		return 1
	}
	return 0
}

func (v *Verdict) add(f Finding) {
	v.Findings = append(v.Findings, f)
	if f.Failure {
		v.Failed = true
	}
}
