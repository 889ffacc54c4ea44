package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Period summary
// @Description Totals per type, balance, payment methods, top descriptions and the service order funnel.
// @Description Movements tied to credit sales that are not fully paid are left out.
// @Tags reports
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param rankBy query string false "revenue or volume" default(revenue)
// @Success 200 {object} dto.ReportSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	logger = logger.With(
		slog.String("from", params.From),
		slog.String("to", params.To),
	)
	logger.Info("Received request to generate summary report")

	summary, err := h.reportingService.Summary(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "generate summary report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportSummaryResponse(summary))
}
