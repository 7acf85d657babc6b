package routes

import (
	"gestao_projetos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addBillingRoutes wires the project-scoped financial operations and the
// dashboard rollup.
func addBillingRoutes(rg *gin.RouterGroup, allocationHandler *handlers.AllocationHandler, billingHandler *handlers.BillingHandler, reportHandler *handlers.ReportHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("/:project_id/applications", allocationHandler.ApplyProduct)
		projects.POST("/:project_id/payments", billingHandler.RecordPayment)
		projects.GET("/:project_id/billing", billingHandler.GetProjectBilling)
		projects.GET("/:project_id/report", reportHandler.GetProjectReport)
	}

	rg.PATCH(PathServices+"/:service_id/pay", billingHandler.MarkServicePaid)
	rg.GET("/dashboard", reportHandler.GetDashboardSummary)
}
