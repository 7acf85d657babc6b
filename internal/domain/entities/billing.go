package entities

// BillingSummary is the financial state of one project, derived on demand
// from the current collections (never cached or stored).
//
// Formulas:
//   - TotalReceived = sum of the project's payment amounts
//   - TotalCost     = sum of the project's service daily values (paid or not)
//   - Balance       = ProjectValue - TotalReceived (negative when overpaid)
//   - Margin        = ProjectValue - TotalCost (independent of payments)

type BillingSummary struct {
	ProjectID     int64   `json:"project_id"`
	ProjectValue  float64 `json:"project_value"`
	TotalReceived float64 `json:"total_received"`
	TotalCost     float64 `json:"total_cost"`
	Balance       float64 `json:"balance"`
	Margin        float64 `json:"margin"`
}
