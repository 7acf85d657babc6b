package entities

// ProjectPayment is money received from the client toward the project's
// contracted value. Overpayment is allowed and simply drives the balance
// negative.

type ProjectPayment struct {
	ID          int64   `json:"id"`
	ProjectID   int64   `json:"project_id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}
