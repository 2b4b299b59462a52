package report

import (
	"net/http"
	"time"

	"github.com/murtaDuElama/FitnessCenter/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Appointments godoc
// @Summary      Appointment report
// @Description  Admin-only: appointment rows with joined member, service
// @Description  and trainer details, optionally bounded by a date range.
// @Tags         admin,reports
// @Security     BearerAuth
// @Produce      json
// @Param        from  query     string  false  "From date (YYYY-MM-DD)"
// @Param        to    query     string  false  "To date (YYYY-MM-DD)"
// @Success      200   {array}   Row
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /admin/reports/appointments [get]
func (h *Handler) Appointments(c *gin.Context) {
	var from, to *time.Time

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid from date, use YYYY-MM-DD"})
			return
		}
		from = &parsed
	}

	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid to date, use YYYY-MM-DD"})
			return
		}
		to = &parsed
	}

	rows, err := h.repo.GetRows(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Stats godoc
// @Summary      Aggregate statistics
// @Description  Admin-only: appointment counts, approved revenue and
// @Description  per-service and per-trainer breakdowns.
// @Tags         admin,reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Stats
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/reports/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.repo.GetStats(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to build stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
