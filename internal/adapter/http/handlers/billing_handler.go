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

// BillingHandler serves the per-project financial summary and the two
// billing mutations.

type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

func (h *BillingHandler) GetProjectBilling(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}
	summary := h.usecase.GetProjectBilling(c.Request.Context(), projectID)
	c.JSON(http.StatusOK, response.FromBillingSummary(summary))
}

// MarkServicePaid is idempotent: repeating the call, or targeting an unknown
// service, still responds 200 with the current services collection.
func (h *BillingHandler) MarkServicePaid(c *gin.Context) {
	serviceID, ok := paramID(c, "service_id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.MarkServicePaid(c.Request.Context(), serviceID))
}

func (h *BillingHandler) RecordPayment(c *gin.Context) {
	projectID, ok := paramID(c, "project_id")
	if !ok {
		return
	}

	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	payments, err := h.usecase.RecordPayment(c.Request.Context(), projectID, payload.Date, *payload.Amount, payload.Description)
	if err != nil {
		log.Printf("[billing][handler] record-payment failed project_id=%d err=%v", projectID, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, payments)
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
