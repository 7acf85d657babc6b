package request

// ApplyProductRequest allocates stock to the project in the path.

type ApplyProductRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gte=1"`
}

// RecordPaymentRequest registers money received from the client. Amount is a
// pointer so an explicit zero passes the required check; negative amounts are
// rejected. Date defaults to today when omitted.

type RecordPaymentRequest struct {
	Date        string   `json:"date"`
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	Description string   `json:"description" binding:"required"`
}
