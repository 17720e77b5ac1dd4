package compare

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"template-verifier/core/history"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(svc *Service) *fiber.App {
	app := fiber.New()
	NewHandler(svc, 20).RegisterRoutes(app)
	return app
}

func TestHandleCompare(t *testing.T) {
	t.Run("Differences", func(t *testing.T) {
		app := setupTestApp(missingOnlineService(t))

		resp, err := app.Test(httptest.NewRequest("GET", "/compare", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		var v Verdict
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
		assert.True(t, v.Failed)
		require.Len(t, v.Findings, 1)
		assert.Equal(t, "Online Free directory is missing template b.json", v.Findings[0].Message)
	})

	t.Run("Clean", func(t *testing.T) {
		task := newTask(t)
		writeDocs(t, task.LibraryRoot, map[string]string{"a.json": `{"a": 1}`})
		writeDocs(t, task.OnlineRoot, map[string]string{"a.json": `{"a": 1.0}`})
		svc := NewService(NewRunner(DirOpener(), Options{}, zap.NewNop()), []Task{task}, zap.NewNop())

		resp, err := setupTestApp(svc).Test(httptest.NewRequest("GET", "/compare", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, false, body["failed"])
		assert.Empty(t, body["findings"])
	})
}

func TestHandleTasks(t *testing.T) {
	app := setupTestApp(missingOnlineService(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/compare/tasks", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var tasks []Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "free", tasks[0].Tier)
	assert.Equal(t, KindTemplate, tasks[0].Kind)
}

func TestHandleHistory(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app := setupTestApp(missingOnlineService(t))
		resp, err := app.Test(httptest.NewRequest("GET", "/compare/history", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Enabled", func(t *testing.T) {
		hist := new(mockHistory)
		hist.On("List", mock.Anything, 5).Return([]history.Run{{ID: "run-1", Failed: true}}, nil)
		app := setupTestApp(missingOnlineService(t, WithHistory(hist)))

		resp, err := app.Test(httptest.NewRequest("GET", "/compare/history?limit=5", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var runs []history.Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
		require.Len(t, runs, 1)
		assert.Equal(t, "run-1", runs[0].ID)
	})
}

func TestHandleReport(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app := setupTestApp(missingOnlineService(t))
		resp, err := app.Test(httptest.NewRequest("GET", "/compare/history/run-1/report", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Found", func(t *testing.T) {
		arch := new(mockArchive)
		arch.On("Fetch", mock.Anything, "run-42").Return(sampleVerdict(), nil)
		app := setupTestApp(missingOnlineService(t, WithArchive(arch)))

		resp, err := app.Test(httptest.NewRequest("GET", "/compare/history/run-42/report", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var v Verdict
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
		assert.Equal(t, "run-42", v.RunID)
	})

	t.Run("NotFound", func(t *testing.T) {
		arch := new(mockArchive)
		arch.On("Fetch", mock.Anything, "nope").Return(nil, ErrReportNotFound)
		app := setupTestApp(missingOnlineService(t, WithArchive(arch)))

		resp, err := app.Test(httptest.NewRequest("GET", "/compare/history/nope/report", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleHistoryRun(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app := setupTestApp(missingOnlineService(t))
		resp, err := app.Test(httptest.NewRequest("GET", "/compare/history/run-1", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Found", func(t *testing.T) {
		hist := new(mockHistory)
		hist.On("Get", mock.Anything, "run-1").Return(&history.Run{ID: "run-1", Failed: true, MissingOnline: 1}, nil)
		app := setupTestApp(missingOnlineService(t, WithHistory(hist)))

		resp, err := app.Test(httptest.NewRequest("GET", "/compare/history/run-1", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var run history.Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
		assert.Equal(t, "run-1", run.ID)
		assert.Equal(t, 1, run.MissingOnline)
	})

	t.Run("NotFound", func(t *testing.T) {
		hist := new(mockHistory)
		hist.On("Get", mock.Anything, "nope").Return(nil, history.ErrNotFound)
		app := setupTestApp(missingOnlineService(t, WithHistory(hist)))

		resp, err := app.Test(httptest.NewRequest("GET", "/compare/history/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleReports(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app := setupTestApp(missingOnlineService(t))
		resp, err := app.Test(httptest.NewRequest("GET", "/compare/reports", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Enabled", func(t *testing.T) {
		arch := new(mockArchive)
		arch.On("List", mock.Anything).Return([]string{"run-1", "run-2"}, nil)
		app := setupTestApp(missingOnlineService(t, WithArchive(arch)))

		resp, err := app.Test(httptest.NewRequest("GET", "/compare/reports", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var ids []string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&ids))
		assert.Equal(t, []string{"run-1", "run-2"}, ids)
	})
}
