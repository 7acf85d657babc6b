package usecase

import (
	"context"

	"gestao_projetos/internal/domain/entities"
	"gestao_projetos/internal/usecase/interfaces"
)

// IRegistryUseCase exposes the plain CRUD surface per collection. The HTTP
// layer validates request payloads before reaching these operations; here the
// input is assumed well-formed and the only semantics are whole-record upsert
// and delete-by-id.

type IRegistryUseCase interface {
	ListProjects(ctx context.Context) []entities.Project
	ListClients(ctx context.Context) []entities.Client
	ListCollaborators(ctx context.Context) []entities.Collaborator
	ListProducts(ctx context.Context) []entities.Product
	ListServices(ctx context.Context) []entities.Service
	ListProductApplications(ctx context.Context) []entities.ProductApplication
	ListPayments(ctx context.Context) []entities.ProjectPayment

	CreateOrUpdateProject(ctx context.Context, p entities.Project) []entities.Project
	CreateOrUpdateClient(ctx context.Context, c entities.Client) []entities.Client
	CreateOrUpdateCollaborator(ctx context.Context, c entities.Collaborator) []entities.Collaborator
	CreateOrUpdateProduct(ctx context.Context, p entities.Product) []entities.Product
	CreateOrUpdateService(ctx context.Context, s entities.Service) []entities.Service

	DeleteProject(ctx context.Context, id int64) []entities.Project
	DeleteClient(ctx context.Context, id int64) []entities.Client
	DeleteCollaborator(ctx context.Context, id int64) []entities.Collaborator
	DeleteProduct(ctx context.Context, id int64) []entities.Product
	DeleteService(ctx context.Context, id int64) []entities.Service
}

type RegistryUseCase struct {
	store interfaces.IEntityStore
}

var _ IRegistryUseCase = (*RegistryUseCase)(nil)

func NewRegistryUseCase(store interfaces.IEntityStore) *RegistryUseCase {
	return &RegistryUseCase{store: store}
}

func (u *RegistryUseCase) ListProjects(ctx context.Context) []entities.Project {
	return u.store.Projects()
}

func (u *RegistryUseCase) ListClients(ctx context.Context) []entities.Client {
	return u.store.Clients()
}

func (u *RegistryUseCase) ListCollaborators(ctx context.Context) []entities.Collaborator {
	return u.store.Collaborators()
}

func (u *RegistryUseCase) ListProducts(ctx context.Context) []entities.Product {
	return u.store.Products()
}

func (u *RegistryUseCase) ListServices(ctx context.Context) []entities.Service {
	return u.store.Services()
}

func (u *RegistryUseCase) ListProductApplications(ctx context.Context) []entities.ProductApplication {
	return u.store.ProductApplications()
}

func (u *RegistryUseCase) ListPayments(ctx context.Context) []entities.ProjectPayment {
	return u.store.Payments()
}

func (u *RegistryUseCase) CreateOrUpdateProject(ctx context.Context, p entities.Project) []entities.Project {
	return u.store.CreateOrUpdateProject(ctx, p)
}

func (u *RegistryUseCase) CreateOrUpdateClient(ctx context.Context, c entities.Client) []entities.Client {
	return u.store.CreateOrUpdateClient(ctx, c)
}

func (u *RegistryUseCase) CreateOrUpdateCollaborator(ctx context.Context, c entities.Collaborator) []entities.Collaborator {
	return u.store.CreateOrUpdateCollaborator(ctx, c)
}

func (u *RegistryUseCase) CreateOrUpdateProduct(ctx context.Context, p entities.Product) []entities.Product {
	return u.store.CreateOrUpdateProduct(ctx, p)
}

func (u *RegistryUseCase) CreateOrUpdateService(ctx context.Context, s entities.Service) []entities.Service {
	return u.store.CreateOrUpdateService(ctx, s)
}

func (u *RegistryUseCase) DeleteProject(ctx context.Context, id int64) []entities.Project {
	return u.store.DeleteProject(ctx, id)
}

func (u *RegistryUseCase) DeleteClient(ctx context.Context, id int64) []entities.Client {
	return u.store.DeleteClient(ctx, id)
}

func (u *RegistryUseCase) DeleteCollaborator(ctx context.Context, id int64) []entities.Collaborator {
	return u.store.DeleteCollaborator(ctx, id)
}

func (u *RegistryUseCase) DeleteProduct(ctx context.Context, id int64) []entities.Product {
	return u.store.DeleteProduct(ctx, id)
}

func (u *RegistryUseCase) DeleteService(ctx context.Context, id int64) []entities.Service {
	return u.store.DeleteService(ctx, id)
}
