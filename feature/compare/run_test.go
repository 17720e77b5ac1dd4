package compare

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"template-verifier/core/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRunner(opts Options) (*Runner, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRunner(DirOpener(), opts, zap.New(core))
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	r.newID = func() string { return "run-1" }
	return r, logs
}

// layout creates the default four-task layout under a temp root.
func layout(t *testing.T) (string, []Task) {
	t.Helper()
	root := t.TempDir()
	var tasks []Task
	for _, tier := range []string{"free", "paid"} {
		for _, kind := range Kinds {
			sub := "templates/examples"
			if kind == KindImagestream {
				sub = "imagestreams"
			}
			tasks = append(tasks, Task{
				Tier:        tier,
				Label:       labelFor(tier),
				Kind:        kind,
				LibraryRoot: filepath.Join(root, "library", tier, sub),
				OnlineRoot:  filepath.Join(root, tier, sub),
			})
		}
	}
	return root, tasks
}

func TestExecute_MissingOnline(t *testing.T) {
	task := newTask(t)
	writeDocs(t, task.LibraryRoot, map[string]string{"a.json": `{"x": 1}`, "b.json": `{"y": 2}`})
	writeDocs(t, task.OnlineRoot, map[string]string{"a.json": `{"x": 1}`})

	r, logs := newTestRunner(Options{})
	v, err := r.Execute(context.Background(), []Task{task})
	require.NoError(t, err)

	assert.True(t, v.Failed)
	assert.Equal(t, 1, v.ExitCode())
	require.Len(t, v.Findings, 1)
	f := v.Findings[0]
	assert.Equal(t, FindingEntryMissing, f.Type)
	assert.Equal(t, "b.json", f.Name)
	assert.Equal(t, "Online Free directory is missing template b.json", f.Message)
	assert.True(t, f.Failure)

	assert.Equal(t, Summary{Tasks: 1, Compared: 1, Identical: 1, MissingOnline: 1}, v.Summary)
	assert.Equal(t, 1, logs.FilterMessage("Online Free directory is missing template b.json").FilterField(zap.String("name", "b.json")).Len())
	assert.Equal(t, 1, logs.FilterMessage("Differences found").Len())

	compared := logs.FilterMessage("Compared Free templates").All()
	require.Len(t, compared, 1)
	fields := compared[0].ContextMap()
	assert.EqualValues(t, 2, fields["entries"])
	assert.Equal(t, false, fields["complete"])
}

func TestExecute_RootMissingDoesNotStopLaterTasks(t *testing.T) {
	first := newTask(t)
	writeDocs(t, first.LibraryRoot, map[string]string{"a.json": `{}`})

	second := newTask(t)
	second.Kind = KindImagestream
	writeDocs(t, second.LibraryRoot, map[string]string{"ruby.json": `{"tags": [1, 2]}`})
	writeDocs(t, second.OnlineRoot, map[string]string{"ruby.json": `{"tags": [1, 3]}`})

	r, _ := newTestRunner(Options{})
	v, err := r.Execute(context.Background(), []Task{first, second})
	require.NoError(t, err)

	require.Len(t, v.Findings, 2)
	assert.Equal(t, FindingRootMissing, v.Findings[0].Type)
	assert.Equal(t, "Templates directory for Online Free doesn't exist.", v.Findings[0].Message)
	assert.Equal(t, first.OnlineRoot, v.Findings[0].Path)

	assert.Equal(t, FindingStructuralMismatch, v.Findings[1].Type)
	assert.Equal(t, "Upstream imagestream is different with Online Free imagestream ruby.json", v.Findings[1].Message)
	require.Len(t, v.Findings[1].Changes, 1)
	assert.Equal(t, "$.tags[1]", v.Findings[1].Changes[0].Path)

	assert.True(t, v.Failed)
	assert.Equal(t, 2, v.Summary.Tasks)
	assert.Equal(t, 1, v.Summary.MissingRoots)
	assert.Equal(t, 1, v.Summary.Mismatched)
}

func TestExecute_AllMatch(t *testing.T) {
	_, tasks := layout(t)
	for i, task := range tasks {
		doc := fmt.Sprintf(`{"id": %d, "items": [{"a": 1.0}]}`, i)
		writeDocs(t, task.LibraryRoot, map[string]string{"doc.json": doc})
		writeDocs(t, task.OnlineRoot, map[string]string{"doc.json": fmt.Sprintf(`{"items": [{"a": 1}], "id": %d}`, i)})
	}

	r, logs := newTestRunner(Options{})
	v, err := r.Execute(context.Background(), tasks)
	require.NoError(t, err)

	assert.False(t, v.Failed)
	assert.Equal(t, 0, v.ExitCode())
	assert.Empty(t, v.Findings)
	assert.NotNil(t, v.Findings)
	assert.Equal(t, Summary{Tasks: 4, Compared: 4, Identical: 4}, v.Summary)
	assert.Equal(t, "run-1", v.RunID)
	assert.True(t, v.FinishedAt.After(v.StartedAt))
	assert.Equal(t, 1, logs.FilterMessage("No differences found").Len())
	assert.Equal(t, 4, logs.FilterMessageSnippet("Comparing ").Len())
}

func TestExecute_ExtraOnline(t *testing.T) {
	task := newTask(t)
	writeDocs(t, task.LibraryRoot, map[string]string{"a.json": `{}`})
	writeDocs(t, task.OnlineRoot, map[string]string{"a.json": `{}`, "z.json": `{}`})

	t.Run("Default", func(t *testing.T) {
		r, logs := newTestRunner(Options{})
		v, err := r.Execute(context.Background(), []Task{task})
		require.NoError(t, err)

		assert.False(t, v.Failed)
		require.Len(t, v.Findings, 1)
		assert.Equal(t, FindingExtraOnlineEntry, v.Findings[0].Type)
		assert.False(t, v.Findings[0].Failure)
		assert.Equal(t, 1, v.Summary.ExtraOnline)
		assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	})

	t.Run("FailOnExtra", func(t *testing.T) {
		r, _ := newTestRunner(Options{FailOnExtra: true})
		v, err := r.Execute(context.Background(), []Task{task})
		require.NoError(t, err)

		assert.True(t, v.Failed)
		assert.True(t, v.Findings[0].Failure)
	})
}

func TestExecute_ParseError(t *testing.T) {
	first := newTask(t)
	writeDocs(t, first.LibraryRoot, map[string]string{"a.json": `{"a": [1,`})
	writeDocs(t, first.OnlineRoot, map[string]string{"a.json": `{}`})

	second := newTask(t)
	writeDocs(t, second.LibraryRoot, map[string]string{"b.json": `{}`})

	t.Run("Continue", func(t *testing.T) {
		r, _ := newTestRunner(Options{})
		v, err := r.Execute(context.Background(), []Task{first, second})
		require.NoError(t, err)

		assert.True(t, v.Failed)
		require.Len(t, v.Findings, 2)
		assert.Equal(t, FindingParseError, v.Findings[0].Type)
		assert.Equal(t, "Failed to parse Library Free template a.json", v.Findings[0].Message)
		assert.NotEmpty(t, v.Findings[0].Error)
		assert.Equal(t, FindingRootMissing, v.Findings[1].Type)
		assert.Equal(t, 1, v.Summary.ParseErrors)
	})

	t.Run("Abort", func(t *testing.T) {
		r, _ := newTestRunner(Options{AbortOnParseError: true})
		v, err := r.Execute(context.Background(), []Task{first, second})
		assert.Nil(t, v)
		assert.ErrorIs(t, err, ErrAborted)
		assert.ErrorIs(t, err, document.ErrParse)
	})
}

func TestExecute_ParallelMatchesSequential(t *testing.T) {
	_, tasks := layout(t)
	writeDocs(t, tasks[0].LibraryRoot, map[string]string{"a.json": `{"v": 1}`, "b.json": `{}`})
	writeDocs(t, tasks[0].OnlineRoot, map[string]string{"a.json": `{"v": 2}`})
	writeDocs(t, tasks[1].LibraryRoot, map[string]string{"ruby.json": `[]`})
	writeDocs(t, tasks[2].OnlineRoot, map[string]string{"x.json": `{}`})
	writeDocs(t, tasks[3].LibraryRoot, map[string]string{"c.json": `{"a": null}`})
	writeDocs(t, tasks[3].OnlineRoot, map[string]string{"c.json": `{"a": false}`, "extra.json": `{}`})

	seq, _ := newTestRunner(Options{})
	want, err := seq.Execute(context.Background(), tasks)
	require.NoError(t, err)

	for _, n := range []int{2, 4, 8} {
		t.Run(fmt.Sprintf("Parallel%d", n), func(t *testing.T) {
			par, _ := newTestRunner(Options{Parallel: n})
			got, err := par.Execute(context.Background(), tasks)
			require.NoError(t, err)
			assert.Equal(t, want.Findings, got.Findings)
			assert.Equal(t, want.Summary, got.Summary)
			assert.Equal(t, want.Failed, got.Failed)
		})
	}
}

func TestExecute_Cancelled(t *testing.T) {
	_, tasks := layout(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, n := range []int{1, 4} {
		r, _ := newTestRunner(Options{Parallel: n})
		v, err := r.Execute(ctx, tasks)
		assert.Nil(t, v)
		assert.True(t, errors.Is(err, context.Canceled))
	}
}

func TestExecute_NoTasks(t *testing.T) {
	r, _ := newTestRunner(Options{})
	v, err := r.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, v.Failed)
	assert.Equal(t, 0, v.Summary.Tasks)
}

func TestVerdict_FailedIffFailingFinding(t *testing.T) {
	v := &Verdict{}
	v.add(Finding{Type: FindingExtraOnlineEntry})
	assert.False(t, v.Failed)
	assert.Empty(t, v.Failures())

	v.add(Finding{Type: FindingEntryMissing, Failure: true})
	assert.True(t, v.Failed)
	assert.Len(t, v.Failures(), 1)
	assert.Equal(t, map[FindingType]int{FindingExtraOnlineEntry: 1, FindingEntryMissing: 1}, v.CountByType())
}
