package handlers

import (
	"net/http"

	response "gestao_projetos/internal/adapter/http/dto/response"
	"gestao_projetos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only rollups.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetProjectReport(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	report := h.usecase.GetProjectReport(c.Request.Context(), projectID)
	c.JSON(http.StatusOK, response.FromProjectReport(report))
}

func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	summary := h.usecase.GetDashboardSummary(c.Request.Context())
	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
