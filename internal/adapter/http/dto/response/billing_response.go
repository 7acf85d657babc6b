package response

import (
	"gestao_projetos/internal/domain/entities"
	"gestao_projetos/internal/usecase"
)

type BillingSummaryResponse struct {
	ProjectID     int64   `json:"project_id"`
	ProjectValue  float64 `json:"project_value"`
	TotalReceived float64 `json:"total_received"`
	TotalCost     float64 `json:"total_cost"`
	Balance       float64 `json:"balance"`
	Margin        float64 `json:"margin"`
}

func FromBillingSummary(s entities.BillingSummary) BillingSummaryResponse {
	return BillingSummaryResponse{
		ProjectID:     s.ProjectID,
		ProjectValue:  s.ProjectValue,
		TotalReceived: s.TotalReceived,
		TotalCost:     s.TotalCost,
		Balance:       s.Balance,
		Margin:        s.Margin,
	}
}

// AllocationResponse is the success shape of the apply-product endpoint:
// both collections the allocation touched.

type AllocationResponse struct {
	Products     []entities.Product            `json:"products"`
	Applications []entities.ProductApplication `json:"applications"`
}

func FromAllocationResult(r usecase.AllocationResult) AllocationResponse {
	return AllocationResponse{Products: r.Products, Applications: r.Applications}
}
