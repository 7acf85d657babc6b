package handlers

import (
	"net/http"

	request "gestao_projetos/internal/adapter/http/dto/request"
	"gestao_projetos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves the CRUD endpoints of the seven collections. Every
// mutation responds with the full updated collection, which is what the
// dashboard re-renders from.

type RegistryHandler struct {
	usecase usecase.IRegistryUseCase
}

func NewRegistryHandler(uc usecase.IRegistryUseCase) *RegistryHandler {
	return &RegistryHandler{usecase: uc}
}

func (h *RegistryHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListProjects(c.Request.Context()))
}

func (h *RegistryHandler) PutProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.CreateOrUpdateProject(c.Request.Context(), payload.ToEntity()))
}

func (h *RegistryHandler) DeleteProject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.DeleteProject(c.Request.Context(), id))
}

func (h *RegistryHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListClients(c.Request.Context()))
}

func (h *RegistryHandler) PutClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.CreateOrUpdateClient(c.Request.Context(), payload.ToEntity()))
}

func (h *RegistryHandler) DeleteClient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.DeleteClient(c.Request.Context(), id))
}

func (h *RegistryHandler) ListCollaborators(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListCollaborators(c.Request.Context()))
}

func (h *RegistryHandler) PutCollaborator(c *gin.Context) {
	var payload request.CollaboratorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.CreateOrUpdateCollaborator(c.Request.Context(), payload.ToEntity()))
}

func (h *RegistryHandler) DeleteCollaborator(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.DeleteCollaborator(c.Request.Context(), id))
}

func (h *RegistryHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListProducts(c.Request.Context()))
}

func (h *RegistryHandler) PutProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.CreateOrUpdateProduct(c.Request.Context(), payload.ToEntity()))
}

func (h *RegistryHandler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.DeleteProduct(c.Request.Context(), id))
}

func (h *RegistryHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListServices(c.Request.Context()))
}

func (h *RegistryHandler) PutService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.CreateOrUpdateService(c.Request.Context(), payload.ToEntity()))
}

func (h *RegistryHandler) DeleteService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.DeleteService(c.Request.Context(), id))
}

// Applications and payments are append-only through their dedicated flows;
// the registry only lists them.

func (h *RegistryHandler) ListProductApplications(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListProductApplications(c.Request.Context()))
}

func (h *RegistryHandler) ListPayments(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListPayments(c.Request.Context()))
}
