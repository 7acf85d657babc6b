package entities

// ServiceLine is a project service with the collaborator name resolved for
// display. CollaboratorName falls back to FallbackCollaboratorName when the
// referenced collaborator no longer exists.

type ServiceLine struct {
	Service
	CollaboratorName string `json:"collaborator_name"`
}

// ApplicationLine is a product application with the product name resolved for
// display, falling back to FallbackProductName for dangling references.

type ApplicationLine struct {
	ProductApplication
	ProductName string `json:"product_name"`
}

// ProjectReport is the per-project rollup of services and product
// allocations. TotalCost uses the same formula as BillingSummary.

type ProjectReport struct {
	ProjectID           int64             `json:"project_id"`
	Services            []ServiceLine     `json:"services"`
	ProductApplications []ApplicationLine `json:"product_applications"`
	TotalCost           float64           `json:"total_cost"`
}

// ClientServiceCount ranks a client by how many services reference it.

type ClientServiceCount struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

// CollaboratorCost accumulates a collaborator's daily values across all
// projects.

type CollaboratorCost struct {
	CollaboratorID int64   `json:"collaborator_id"`
	Name           string  `json:"name"`
	Total          float64 `json:"total"`
}

// DashboardSummary is the cross-project rollup shown on the main panel.
// Empty collections yield zero values and empty slices, never an error.

type DashboardSummary struct {
	TotalProjectValue   float64              `json:"total_project_value"`
	TotalDailyCosts     float64              `json:"total_daily_costs"`
	StatusCounts        map[Status]int       `json:"status_counts"`
	TopClients          []ClientServiceCount `json:"top_clients_by_service_count"`
	CostPerCollaborator []CollaboratorCost   `json:"cost_per_collaborator"`
}
