package response

import "gestao_projetos/internal/domain/entities"

// Report and dashboard responses reuse the entity shapes directly: the
// aggregates are already display-oriented (names resolved, fallbacks
// applied) and carry json tags.

type ProjectReportResponse struct {
	ProjectID           int64                      `json:"project_id"`
	Services            []entities.ServiceLine     `json:"services"`
	ProductApplications []entities.ApplicationLine `json:"product_applications"`
	TotalCost           float64                    `json:"total_cost"`
}

func FromProjectReport(r entities.ProjectReport) ProjectReportResponse {
	return ProjectReportResponse{
		ProjectID:           r.ProjectID,
		Services:            r.Services,
		ProductApplications: r.ProductApplications,
		TotalCost:           r.TotalCost,
	}
}

type DashboardSummaryResponse struct {
	TotalProjectValue   float64                       `json:"total_project_value"`
	TotalDailyCosts     float64                       `json:"total_daily_costs"`
	StatusCounts        map[entities.Status]int       `json:"status_counts"`
	TopClients          []entities.ClientServiceCount `json:"top_clients_by_service_count"`
	CostPerCollaborator []entities.CollaboratorCost   `json:"cost_per_collaborator"`
}

func FromDashboardSummary(s entities.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalProjectValue:   s.TotalProjectValue,
		TotalDailyCosts:     s.TotalDailyCosts,
		StatusCounts:        s.StatusCounts,
		TopClients:          s.TopClients,
		CostPerCollaborator: s.CostPerCollaborator,
	}
}
