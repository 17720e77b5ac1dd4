package history

import "time"

// Run is the stored summary of a single comparison run.
type Run struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	StartedAt     time.Time `gorm:"index" json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	Failed        bool      `json:"failed"`
	Tasks         int       `json:"tasks"`
	Compared      int       `json:"compared"`
	Identical     int       `json:"identical"`
	Mismatched    int       `json:"mismatched"`
	MissingOnline int       `json:"missing_online"`
	ExtraOnline   int       `json:"extra_online"`
	ParseErrors   int       `json:"parse_errors"`
	MissingRoots  int       `json:"missing_roots"`
	Findings      int       `json:"findings"`
	// ReportKey is the object key of the archived verdict, empty when archiving is off.
	ReportKey string `gorm:"size:255" json:"report_key,omitempty"`
}

// TableName overrides the default table name.
func (Run) TableName() string {
	return "verifier_runs"
}
