package entities

// Status represents the lifecycle of a project (projeto).
//
// The values are kept in Portuguese because they are displayed as-is by the
// dashboard and filtered by exact match.

type Status string

const (
	StatusPendente    Status = "Pendente"
	StatusEmProgresso Status = "Em Progresso"
	StatusConcluido   Status = "Concluído"
)

// Project is the root of financial aggregation: services, product
// applications and payments all reference it by id.
//
// Value is the contracted amount agreed with the client. Dates are carried as
// YYYY-MM-DD strings, formatting for display is a presentation concern.

type Project struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	ClientID    int64   `json:"client_id"`
	Status      Status  `json:"status"`
	Value       float64 `json:"value"`
}
