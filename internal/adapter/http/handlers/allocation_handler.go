package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gestao_projetos/internal/adapter/http/dto/request"
	response "gestao_projetos/internal/adapter/http/dto/response"
	"gestao_projetos/internal/usecase"
	"gestao_projetos/pkg"

	"github.com/gin-gonic/gin"
)

// AllocationHandler handles stock allocation requests.

type AllocationHandler struct {
	usecase usecase.IAllocationUseCase
}

func NewAllocationHandler(uc usecase.IAllocationUseCase) *AllocationHandler {
	return &AllocationHandler{usecase: uc}
}

// ApplyProduct allocates product stock to the project in the path. A missing
// product and insufficient stock are the same 409 from the caller's point of
// view; the operation has no side effect in that case.
func (h *AllocationHandler) ApplyProduct(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}

	var payload request.ApplyProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	result, err := h.usecase.ApplyProduct(c.Request.Context(), projectID, payload.ProductID, payload.Quantity)
	if err != nil {
		log.Printf("[allocation][handler] apply failed project_id=%d product_id=%d err=%v", projectID, payload.ProductID, err)
		appErr := mapAllocationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAllocationResult(result))
}

func mapAllocationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Estoque insuficiente", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
