package interfaces

import (
	"context"

	"gestao_projetos/internal/domain/entities"
)

// IEntityStore is the in-memory source of truth for the seven collections.
//
// Mutations replace whole records keyed by id and persist the touched
// collection to the ICollectionStore as a best-effort side effect. Read
// methods return copies; callers never observe internal slices.

type IEntityStore interface {
	Load(ctx context.Context)

	Projects() []entities.Project
	Clients() []entities.Client
	Collaborators() []entities.Collaborator
	Products() []entities.Product
	Services() []entities.Service
	ProductApplications() []entities.ProductApplication
	Payments() []entities.ProjectPayment

	CreateOrUpdateProject(ctx context.Context, p entities.Project) []entities.Project
	CreateOrUpdateClient(ctx context.Context, c entities.Client) []entities.Client
	CreateOrUpdateCollaborator(ctx context.Context, c entities.Collaborator) []entities.Collaborator
	CreateOrUpdateProduct(ctx context.Context, p entities.Product) []entities.Product
	// CreateOrUpdateService: an update keeps the stored IsPaid flag, which
	// only MarkServicePaid may change.
	CreateOrUpdateService(ctx context.Context, s entities.Service) []entities.Service

	DeleteProject(ctx context.Context, id int64) []entities.Project
	DeleteClient(ctx context.Context, id int64) []entities.Client
	DeleteCollaborator(ctx context.Context, id int64) []entities.Collaborator
	DeleteProduct(ctx context.Context, id int64) []entities.Product
	DeleteService(ctx context.Context, id int64) []entities.Service

	// ApplyProduct performs the check-then-decrement inside the store's
	// critical section. ok is false when the product is missing or its stock
	// is smaller than quantity; in that case nothing changes.
	ApplyProduct(ctx context.Context, projectID, productID int64, quantity int) (products []entities.Product, applications []entities.ProductApplication, ok bool)

	MarkServicePaid(ctx context.Context, serviceID int64) []entities.Service
	AppendPayment(ctx context.Context, p entities.ProjectPayment) (entities.ProjectPayment, []entities.ProjectPayment)
}
