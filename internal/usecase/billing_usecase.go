package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"gestao_projetos/internal/domain/entities"
	"gestao_projetos/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
)

// IBillingUseCase computes the financial state of a project and records the
// two billing mutations (paying out a service daily, receiving a client
// payment).

type IBillingUseCase interface {
	GetProjectBilling(ctx context.Context, projectID int64) entities.BillingSummary
	MarkServicePaid(ctx context.Context, serviceID int64) []entities.Service
	RecordPayment(ctx context.Context, projectID int64, date string, amount float64, description string) ([]entities.ProjectPayment, error)
}

type BillingUseCase struct {
	store   interfaces.IEntityStore
	gateway interfaces.IReceiptGateway
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

// NewBillingUseCase wires the store and an optional receipt gateway. gateway
// may be nil; receipt issuance is then skipped entirely.
func NewBillingUseCase(store interfaces.IEntityStore, gateway interfaces.IReceiptGateway) *BillingUseCase {
	return &BillingUseCase{store: store, gateway: gateway}
}

// GetProjectBilling is a pure function of the current collections. A missing
// project contributes zero value; its services and payments still aggregate.
func (u *BillingUseCase) GetProjectBilling(ctx context.Context, projectID int64) entities.BillingSummary {
	var projectValue float64
	for _, p := range u.store.Projects() {
		if p.ID == projectID {
			projectValue = p.Value
			break
		}
	}

	var totalReceived float64
	for _, p := range u.store.Payments() {
		if p.ProjectID == projectID {
			totalReceived += p.Amount
		}
	}

	// Cost basis is every service of the project, paid or not: IsPaid tracks
	// whether the collaborator was paid, not whether the service costs.
	var totalCost float64
	for _, s := range u.store.Services() {
		if s.ProjectID == projectID {
			totalCost += s.DailyValue
		}
	}

	return entities.BillingSummary{
		ProjectID:     projectID,
		ProjectValue:  projectValue,
		TotalReceived: totalReceived,
		TotalCost:     totalCost,
		Balance:       projectValue - totalReceived,
		Margin:        projectValue - totalCost,
	}
}

// MarkServicePaid flips the service's IsPaid flag. Calling it again, or with
// an unknown id, is a harmless no-op.
func (u *BillingUseCase) MarkServicePaid(ctx context.Context, serviceID int64) []entities.Service {
	log.Printf("[billing][usecase] mark-paid service_id=%d", serviceID)
	return u.store.MarkServicePaid(ctx, serviceID)
}

// RecordPayment appends a payment received from the client. There is no
// upper bound against the remaining balance; overpayment just drives the
// balance negative. When a receipt gateway is configured it is invoked after
// the record is stored, and its failure never fails the operation.
func (u *BillingUseCase) RecordPayment(ctx context.Context, projectID int64, date string, amount float64, description string) ([]entities.ProjectPayment, error) {
	log.Printf("[billing][usecase] record-payment start project_id=%d amount=%.2f", projectID, amount)
	if amount < 0 {
		log.Printf("[billing][usecase] invalid amount project_id=%d amount=%.2f", projectID, amount)
		return nil, ErrInvalidPaymentAmount
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	payment, updated := u.store.AppendPayment(ctx, entities.ProjectPayment{
		ProjectID:   projectID,
		Date:        date,
		Amount:      amount,
		Description: description,
	})
	log.Printf("[billing][usecase] record-payment stored project_id=%d payment_id=%d", projectID, payment.ID)

	if u.gateway != nil {
		clientName := u.clientNameForProject(projectID)
		if receiptID, _, err := u.gateway.IssueReceipt(ctx, payment, clientName); err != nil {
			log.Printf("[billing][usecase] receipt issuance failed payment_id=%d err=%v", payment.ID, err)
		} else {
			log.Printf("[billing][usecase] receipt issued payment_id=%d provider_receipt_id=%s", payment.ID, receiptID)
		}
	}

	return updated, nil
}

func (u *BillingUseCase) clientNameForProject(projectID int64) string {
	var clientID int64
	for _, p := range u.store.Projects() {
		if p.ID == projectID {
			clientID = p.ClientID
			break
		}
	}
	for _, c := range u.store.Clients() {
		if c.ID == clientID {
			return c.Name
		}
	}
	return entities.FallbackClientName
}
