package interfaces

import (
	"context"
	"encoding/json"

	"gestao_projetos/internal/domain/entities"
)

// IReceiptGateway abstracts an external payment provider (e.g. Mercado Pago)
// used to register a receipt for a payment that was recorded manually in the
// dashboard.
//
// Receipt issuance is strictly best-effort: the payment record is the source
// of truth and is stored before the gateway is called.

type IReceiptGateway interface {
	IssueReceipt(ctx context.Context, payment entities.ProjectPayment, clientName string) (providerReceiptID string, providerResponse json.RawMessage, err error)
}
