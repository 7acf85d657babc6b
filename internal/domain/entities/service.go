package entities

// Service is one billable work-day of a collaborator on a project.
//
// IsPaid tracks whether the collaborator's daily was paid out; it only
// transitions false -> true. It does NOT affect cost aggregation: every
// service counts toward a project's total cost regardless of payment status.

type Service struct {
	ID             int64   `json:"id"`
	ProjectID      int64   `json:"project_id"`
	ClientID       int64   `json:"client_id"`
	CollaboratorID int64   `json:"collaborator_id"`
	Date           string  `json:"date"`
	DailyValue     float64 `json:"daily_value"`
	IsPaid         bool    `json:"is_paid"`
}
