package compare

import (
	"errors"

	"template-verifier/core/history"
	"template-verifier/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service      *Service
	historyLimit int
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, historyLimit int) *Handler {
	return &Handler{service: service, historyLimit: historyLimit}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Get("/", h.HandleCompare)
	group.Get("/tasks", h.HandleTasks)
	group.Get("/history", h.HandleHistory)
	group.Get("/history/:id", h.HandleHistoryRun)
	group.Get("/history/:id/report", h.HandleReport)
	group.Get("/reports", h.HandleReports)
}

// HandleCompare runs a comparison.
// @Summary Run Comparison
// @Description Compares every configured library directory with its online copy. Concurrent requests share a single run.
// @Tags compare
// @Produce json
// @Success 200 {object} compare.Verdict "No differences"
// @Failure 409 {object} compare.Verdict "Differences found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare [get]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering comparison")

	verdict, shared, err := h.service.RunShared(c.UserContext())
	if err != nil {
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if shared {
		l.Debug("Joined in-flight comparison", zap.String("run_id", verdict.RunID))
	}

	status := fiber.StatusOK
	if verdict.Failed {
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(verdict)
}

// HandleTasks lists the configured tasks.
// @Summary List Tasks
// @Description Lists the library/online directory pairs compared by a run, in execution order.
// @Tags compare
// @Produce json
// @Success 200 {array} compare.Task
// @Router /compare/tasks [get]
func (h *Handler) HandleTasks(c *fiber.Ctx) error {
	return c.JSON(h.service.Tasks())
}

// HandleHistory lists recent runs.
// @Summary List Run History
// @Description Lists the most recent run summaries, newest first.
// @Tags compare
// @Produce json
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} history.Run
// @Failure 404 {object} map[string]string "History disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.historyLimit)

	runs, err := h.service.History(c.UserContext(), limit)
	if errors.Is(err, ErrHistoryDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleHistoryRun returns a single stored run.
// @Summary Get Run
// @Description Returns the stored summary of one run.
// @Tags compare
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} history.Run
// @Failure 404 {object} map[string]string "Run not found or history disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare/history/{id} [get]
func (h *Handler) HandleHistoryRun(c *fiber.Ctx) error {
	run, err := h.service.HistoryRun(c.UserContext(), c.Params("id"))
	if errors.Is(err, ErrHistoryDisabled) || errors.Is(err, history.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}

// HandleReports lists archived reports.
// @Summary List Reports
// @Description Lists the run ids that have a report in the archive, sorted.
// @Tags compare
// @Produce json
// @Success 200 {array} string
// @Failure 404 {object} map[string]string "Archive disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare/reports [get]
func (h *Handler) HandleReports(c *fiber.Ctx) error {
	ids, err := h.service.Reports(c.UserContext())
	if errors.Is(err, ErrArchiveDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(ids)
}

// HandleReport returns an archived verdict.
// @Summary Get Run Report
// @Description Downloads the full verdict of a past run from the report archive.
// @Tags compare
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} compare.Verdict
// @Failure 404 {object} map[string]string "Report not found or archive disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /compare/history/{id}/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	verdict, err := h.service.Report(c.UserContext(), c.Params("id"))
	if errors.Is(err, ErrArchiveDisabled) || errors.Is(err, ErrReportNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(verdict)
}
