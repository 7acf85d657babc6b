package entities

// ProductApplication is the immutable record of a stock decrement: quantity
// units of the product were consumed by the project on the given date.
//
// Applications are append-only. There is no undo: editing or deleting the
// referenced product never adjusts past applications.

type ProductApplication struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Date      string `json:"date"`
}
