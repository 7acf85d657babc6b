package usecase

import (
	"context"
	"sort"

	"gestao_projetos/internal/domain/entities"
	"gestao_projetos/internal/usecase/interfaces"
)

// topClientsLimit caps the "services by client" dashboard ranking.
const topClientsLimit = 5

// IReportUseCase produces the read-only rollups: per-project movement report
// and the cross-project dashboard summary. Both are recomputed per query,
// there is no caching layer.

type IReportUseCase interface {
	GetProjectReport(ctx context.Context, projectID int64) entities.ProjectReport
	GetDashboardSummary(ctx context.Context) entities.DashboardSummary
}

type ReportUseCase struct {
	store interfaces.IEntityStore
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store interfaces.IEntityStore) *ReportUseCase {
	return &ReportUseCase{store: store}
}

// GetProjectReport resolves collaborator and product names for display,
// substituting the fallback labels for dangling references. A project with no
// movement yields empty slices and zero cost.
func (u *ReportUseCase) GetProjectReport(ctx context.Context, projectID int64) entities.ProjectReport {
	collaboratorNames := map[int64]string{}
	for _, c := range u.store.Collaborators() {
		collaboratorNames[c.ID] = c.Name
	}
	productNames := map[int64]string{}
	for _, p := range u.store.Products() {
		productNames[p.ID] = p.Name
	}

	report := entities.ProjectReport{
		ProjectID:           projectID,
		Services:            []entities.ServiceLine{},
		ProductApplications: []entities.ApplicationLine{},
	}

	for _, s := range u.store.Services() {
		if s.ProjectID != projectID {
			continue
		}
		name, found := collaboratorNames[s.CollaboratorID]
		if !found {
			name = entities.FallbackCollaboratorName
		}
		report.Services = append(report.Services, entities.ServiceLine{Service: s, CollaboratorName: name})
		report.TotalCost += s.DailyValue
	}

	for _, a := range u.store.ProductApplications() {
		if a.ProjectID != projectID {
			continue
		}
		name, found := productNames[a.ProductID]
		if !found {
			name = entities.FallbackProductName
		}
		report.ProductApplications = append(report.ProductApplications, entities.ApplicationLine{ProductApplication: a, ProductName: name})
	}

	return report
}

// GetDashboardSummary aggregates across all projects. Empty collections yield
// zeros and empty slices.
func (u *ReportUseCase) GetDashboardSummary(ctx context.Context) entities.DashboardSummary {
	projects := u.store.Projects()
	services := u.store.Services()
	clients := u.store.Clients()
	collaborators := u.store.Collaborators()

	summary := entities.DashboardSummary{
		StatusCounts: map[entities.Status]int{
			entities.StatusPendente:    0,
			entities.StatusEmProgresso: 0,
			entities.StatusConcluido:   0,
		},
		TopClients:          []entities.ClientServiceCount{},
		CostPerCollaborator: []entities.CollaboratorCost{},
	}

	for _, p := range projects {
		summary.TotalProjectValue += p.Value
		summary.StatusCounts[p.Status]++
	}
	for _, s := range services {
		summary.TotalDailyCosts += s.DailyValue
	}

	serviceCountByClient := map[int64]int{}
	costByCollaborator := map[int64]float64{}
	for _, s := range services {
		serviceCountByClient[s.ClientID]++
		costByCollaborator[s.CollaboratorID] += s.DailyValue
	}

	for _, c := range clients {
		summary.TopClients = append(summary.TopClients, entities.ClientServiceCount{
			ClientID: c.ID,
			Name:     c.Name,
			Count:    serviceCountByClient[c.ID],
		})
	}
	sort.SliceStable(summary.TopClients, func(i, j int) bool {
		return summary.TopClients[i].Count > summary.TopClients[j].Count
	})
	if len(summary.TopClients) > topClientsLimit {
		summary.TopClients = summary.TopClients[:topClientsLimit]
	}

	for _, c := range collaborators {
		summary.CostPerCollaborator = append(summary.CostPerCollaborator, entities.CollaboratorCost{
			CollaboratorID: c.ID,
			Name:           c.Name,
			Total:          costByCollaborator[c.ID],
		})
	}
	sort.SliceStable(summary.CostPerCollaborator, func(i, j int) bool {
		return summary.CostPerCollaborator[i].Total > summary.CostPerCollaborator[j].Total
	})

	return summary
}
