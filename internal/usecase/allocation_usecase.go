package usecase

import (
	"context"
	"errors"
	"log"

	"gestao_projetos/internal/domain/entities"
	"gestao_projetos/internal/usecase/interfaces"
)

var (
	// ErrInsufficientStock covers both a missing product and a product whose
	// stock is smaller than the requested quantity: a missing product is
	// treated as zero availability and both cases surface to the user as the
	// same "estoque insuficiente" notice.
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

// AllocationResult carries the collections touched by a successful
// allocation.

type AllocationResult struct {
	Products     []entities.Product
	Applications []entities.ProductApplication
}

// IAllocationUseCase applies a quantity of a product to a project.
//
// The project id is a soft reference and is accepted even when dangling; the
// product id and the stock level are enforced.

type IAllocationUseCase interface {
	ApplyProduct(ctx context.Context, projectID, productID int64, quantity int) (AllocationResult, error)
}

type AllocationUseCase struct {
	store interfaces.IEntityStore
}

var _ IAllocationUseCase = (*AllocationUseCase)(nil)

func NewAllocationUseCase(store interfaces.IEntityStore) *AllocationUseCase {
	return &AllocationUseCase{store: store}
}

func (u *AllocationUseCase) ApplyProduct(ctx context.Context, projectID, productID int64, quantity int) (AllocationResult, error) {
	log.Printf("[allocation][usecase] apply start project_id=%d product_id=%d quantity=%d", projectID, productID, quantity)
	if quantity < 1 {
		log.Printf("[allocation][usecase] invalid quantity project_id=%d product_id=%d quantity=%d", projectID, productID, quantity)
		return AllocationResult{}, ErrInvalidQuantity
	}
	if u.store == nil {
		return AllocationResult{}, errors.New("entity store not configured")
	}

	products, applications, ok := u.store.ApplyProduct(ctx, projectID, productID, quantity)
	if !ok {
		log.Printf("[allocation][usecase] insufficient stock project_id=%d product_id=%d quantity=%d", projectID, productID, quantity)
		return AllocationResult{}, ErrInsufficientStock
	}

	log.Printf("[allocation][usecase] apply success project_id=%d product_id=%d quantity=%d", projectID, productID, quantity)
	return AllocationResult{Products: products, Applications: applications}, nil
}
