package compare

import (
	"context"
	"fmt"
	"time"

	"template-verifier/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options controls the run policy.
type Options struct {
	// FailOnExtra makes online-only documents fail the run.
	FailOnExtra bool
	// AbortOnParseError stops the run at the first malformed document.
	AbortOnParseError bool
	// Parallel is the maximum number of tasks running at once. Values below 2
	// run tasks sequentially.
	Parallel int
}

// Runner executes comparison tasks and aggregates them into a Verdict.
type Runner struct {
	open   Opener
	opts   Options
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewRunner creates a new Runner.
func NewRunner(open Opener, opts Options, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		open:   open,
		opts:   opts,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Execute runs every task and returns the aggregated verdict. A failing task
// never prevents later tasks from running. Findings are ordered by task, then
// by outcome, whether or not tasks ran in parallel.
//
// A cancelled context aborts the run with the context error and no verdict.
func (r *Runner) Execute(ctx context.Context, tasks []Task) (*Verdict, error) {
	verdict := &Verdict{
		RunID:     r.newID(),
		StartedAt: r.now(),
		Findings:  []Finding{},
	}
	log := logger.WithRun(r.logger, verdict.RunID)
	log.Info("Starting comparison", zap.Int("tasks", len(tasks)), zap.Int("parallel", max(r.opts.Parallel, 1)))

	if r.opts.Parallel > 1 && len(tasks) > 1 {
		results, err := r.runParallel(ctx, log, tasks)
		if err != nil {
			return nil, err
		}
		for _, res := range results {
			if err := r.merge(log, verdict, res); err != nil {
				return nil, err
			}
		}
	} else {
		for _, task := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			logTaskStart(log, task)
			if err := r.merge(log, verdict, RunTask(ctx, task, r.open)); err != nil {
				return nil, err
			}
		}
	}

	verdict.FinishedAt = r.now()

	fields := []zap.Field{
		zap.Int("findings", len(verdict.Findings)),
		zap.Int("compared", verdict.Summary.Compared),
		zap.Duration("duration", verdict.Duration()),
	}
	if verdict.Failed {
		log.Error(verdict.Message(), fields...)
	} else {
		log.Info(verdict.Message(), fields...)
	}

	return verdict, nil
}

// runParallel runs tasks on a bounded errgroup. Each goroutine owns one slot
// of the results slice.
func (r *Runner) runParallel(ctx context.Context, log *zap.Logger, tasks []Task) ([]TaskResult, error) {
	results := make([]TaskResult, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Parallel)
	for i, task := range tasks {
		g.Go(func() error {
			logTaskStart(log, task)
			results[i] = RunTask(gctx, task, r.open)
			return results[i].Err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// merge folds a task result into the verdict and logs its findings.
func (r *Runner) merge(log *zap.Logger, verdict *Verdict, res TaskResult) error {
	if res.Err != nil {
		return res.Err
	}

	task := res.Task
	taskLog := log.With(zap.String("tier", task.Tier), zap.String("kind", task.Kind.Name))
	verdict.Summary.Tasks++

	for _, root := range res.MissingRoots {
		f := rootFinding(task, root)
		verdict.Summary.MissingRoots++
		logFinding(taskLog, f)
		verdict.add(f)
	}

	failures := 0
	for _, o := range res.Outcomes {
		switch o.Status {
		case StatusMatched:
			verdict.Summary.Compared++
			if o.Diff.Empty() {
				verdict.Summary.Identical++
			} else {
				verdict.Summary.Mismatched++
			}
		case StatusMissingFromOnline:
			verdict.Summary.MissingOnline++
		case StatusMissingFromLibrary:
			verdict.Summary.ExtraOnline++
		case StatusParseError:
			verdict.Summary.ParseErrors++
		}

		f, ok := outcomeFinding(task, o, r.opts.FailOnExtra)
		if !ok {
			continue
		}
		if f.Failure {
			failures++
		}
		logFinding(taskLog, f)
		verdict.add(f)

		if f.Type == FindingParseError && r.opts.AbortOnParseError {
			return fmt.Errorf("%w: %s: %w", ErrAborted, f.Message, o.Err)
		}
	}

	taskLog.Info("Compared "+task.String(),
		zap.Int("entries", res.Entries),
		zap.Bool("complete", res.Complete),
		zap.Int("failures", failures+len(res.MissingRoots)),
	)
	return nil
}

func logTaskStart(log *zap.Logger, task Task) {
	log.Info("Comparing "+task.String(),
		zap.String("library", task.LibraryRoot),
		zap.String("online", task.OnlineRoot),
	)
}

func logFinding(log *zap.Logger, f Finding) {
	fields := []zap.Field{zap.String("type", string(f.Type))}
	if f.Name != "" {
		fields = append(fields, zap.String("name", f.Name))
	}
	if f.Path != "" {
		fields = append(fields, zap.String("path", f.Path))
	}
	if f.Error != "" {
		fields = append(fields, zap.String("error", f.Error))
	}
	if len(f.Changes) > 0 {
		lines := make([]string, 0, len(f.Changes))
		for _, c := range f.Changes {
			lines = append(lines, c.String())
		}
		fields = append(fields, zap.Strings("changes", lines))
	}

	if f.Failure {
		log.Error(f.Message, fields...)
		return
	}
	log.Warn(f.Message, fields...)
}
