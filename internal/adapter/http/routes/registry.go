package routes

import (
	"gestao_projetos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects      = "/projects"
	PathClients       = "/clients"
	PathCollaborators = "/collaborators"
	PathProducts      = "/products"
	PathServices      = "/services"
	PathApplications  = "/applications"
	PathPayments      = "/payments"
)

// addRegistryRoutes exposes the CRUD surface of the collections. PUT upserts
// a single record and responds with the updated collection; applications and
// payments are append-only elsewhere and only listed here.
func addRegistryRoutes(rg *gin.RouterGroup, h *handlers.RegistryHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.ListProjects)
		projects.PUT("", h.PutProject)
		projects.DELETE("/:id", h.DeleteProject)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", h.ListClients)
		clients.PUT("", h.PutClient)
		clients.DELETE("/:id", h.DeleteClient)
	}

	collaborators := rg.Group(PathCollaborators)
	{
		collaborators.GET("", h.ListCollaborators)
		collaborators.PUT("", h.PutCollaborator)
		collaborators.DELETE("/:id", h.DeleteCollaborator)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", h.ListProducts)
		products.PUT("", h.PutProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", h.ListServices)
		services.PUT("", h.PutService)
		services.DELETE("/:id", h.DeleteService)
	}

	rg.GET(PathApplications, h.ListProductApplications)
	rg.GET(PathPayments, h.ListPayments)
}
