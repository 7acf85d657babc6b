package entities

// FallbackProductName is rendered when a product application references a
// product that was deleted.
const FallbackProductName = "Produto Removido"

// Product is an inventory item. Stock is never negative and is only mutated
// by the stock allocation flow, which performs the check and the decrement
// inside a single critical section.

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}
