package compare

import (
	"context"
	"errors"
	"time"

	"template-verifier/core/history"
	"template-verifier/core/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrHistoryDisabled is returned when no history store is configured.
	ErrHistoryDisabled = errors.New("run history is disabled")
	// ErrArchiveDisabled is returned when no report archive is configured.
	ErrArchiveDisabled = errors.New("report archive is disabled")
)

// HistoryStore persists run summaries.
type HistoryStore interface {
	Save(ctx context.Context, run *history.Run) error
	List(ctx context.Context, limit int) ([]history.Run, error)
	Get(ctx context.Context, id string) (*history.Run, error)
}

// ReportArchive stores full verdicts.
type ReportArchive interface {
	Store(ctx context.Context, v *Verdict) (string, error)
	Fetch(ctx context.Context, runID string) (*Verdict, error)
	List(ctx context.Context) ([]string, error)
}

// Observer receives run metrics.
type Observer interface {
	ObserveRun(failed bool, finishedAt time.Time, duration time.Duration, findings map[string]int)
}

// Service runs the configured comparison and publishes its verdict.
type Service struct {
	runner  *Runner
	tasks   []Task
	logger  *zap.Logger
	history HistoryStore
	archive ReportArchive
	metrics Observer
	group   singleflight.Group
}

// ServiceOption configures optional Service sinks.
type ServiceOption func(*Service)

// WithHistory stores a summary of every run.
func WithHistory(store HistoryStore) ServiceOption {
	return func(s *Service) { s.history = store }
}

// WithArchive uploads every verdict.
func WithArchive(archive ReportArchive) ServiceOption {
	return func(s *Service) { s.archive = archive }
}

// WithMetrics records every run.
func WithMetrics(observer Observer) ServiceOption {
	return func(s *Service) { s.metrics = observer }
}

// NewService creates a new comparison service.
func NewService(runner *Runner, tasks []Task, logger *zap.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{runner: runner, tasks: tasks, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tasks returns the configured tasks.
func (s *Service) Tasks() []Task {
	return s.tasks
}

// Run executes a comparison and publishes the verdict to the configured sinks.
// Sink failures are logged and never change the verdict.
func (s *Service) Run(ctx context.Context) (*Verdict, error) {
	v, err := s.runner.Execute(ctx, s.tasks)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, v)
	return v, nil
}

// RunShared is Run with concurrent callers collapsed onto a single execution.
// shared reports whether the verdict was produced for another caller too.
// The shared run outlives the cancellation of the caller that started it.
func (s *Service) RunShared(ctx context.Context) (*Verdict, bool, error) {
	res, err, shared := s.group.Do("run", func() (any, error) {
		return s.Run(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, shared, err
	}
	return res.(*Verdict), shared, nil
}

// History returns the most recent run summaries.
func (s *Service) History(ctx context.Context, limit int) ([]history.Run, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(ctx, limit)
}

// HistoryRun returns the stored summary of a single run.
func (s *Service) HistoryRun(ctx context.Context, id string) (*history.Run, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.Get(ctx, id)
}

// Reports returns the run ids of every archived report.
func (s *Service) Reports(ctx context.Context) ([]string, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.List(ctx)
}

// Report returns the archived verdict of a run.
func (s *Service) Report(ctx context.Context, runID string) (*Verdict, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.Fetch(ctx, runID)
}

func (s *Service) publish(ctx context.Context, v *Verdict) {
	l := logger.WithRun(s.logger, v.RunID)

	var reportKey string
	if s.archive != nil {
		key, err := s.archive.Store(ctx, v)
		if err != nil {
			l.Warn("Failed to archive report", zap.Error(err))
		} else {
			reportKey = key
			l.Info("Report archived", zap.String("key", key))
		}
	}

	if s.history != nil {
		if err := s.history.Save(ctx, summaryRun(v, reportKey)); err != nil {
			l.Warn("Failed to record run history", zap.Error(err))
		}
	}

	if s.metrics != nil {
		counts := make(map[string]int)
		for typ, n := range v.CountByType() {
			counts[string(typ)] = n
		}
		s.metrics.ObserveRun(v.Failed, v.FinishedAt, v.Duration(), counts)
	}
}

func summaryRun(v *Verdict, reportKey string) *history.Run {
	return &history.Run{
		ID:            v.RunID,
		StartedAt:     v.StartedAt,
		FinishedAt:    v.FinishedAt,
		Failed:        v.Failed,
		Tasks:         v.Summary.Tasks,
		Compared:      v.Summary.Compared,
		Identical:     v.Summary.Identical,
		Mismatched:    v.Summary.Mismatched,
		MissingOnline: v.Summary.MissingOnline,
		ExtraOnline:   v.Summary.ExtraOnline,
		ParseErrors:   v.Summary.ParseErrors,
		MissingRoots:  v.Summary.MissingRoots,
		Findings:      len(v.Findings),
		ReportKey:     reportKey,
	}
}
