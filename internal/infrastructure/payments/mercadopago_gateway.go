package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gestao_projetos/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway registers receipts for payments recorded in the
// dashboard. It is optional and best-effort: the dashboard's payment record
// is the source of truth and receipt failures never roll it back.
//
// RECEIPT_GATEWAY_MOCK=1 (or MERCADOPAGO_MOCK=1) short-circuits the provider
// entirely, which is the default posture for local development.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isReceiptGatewayMockEnabled() {
		log.Printf("[receipt][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[receipt][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[receipt][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[receipt][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) IssueReceipt(ctx context.Context, p entities.ProjectPayment, clientName string) (string, json.RawMessage, error) {
	description := p.Description
	if description == "" {
		description = fmt.Sprintf("Recebimento projeto %d", p.ProjectID)
	}

	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		resp := map[string]any{
			"id":                 id,
			"status":             "approved",
			"status_detail":      "accredited",
			"description":        description,
			"external_reference": externalReference(p),
			"transaction_amount": p.Amount,
			"payer_name":         clientName,
			"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
		}
		b, err := json.Marshal(resp)
		if err != nil {
			return "", nil, err
		}
		log.Printf("[receipt][gateway] mock issue success payment_id=%d provider_receipt_id=%s", p.ID, id)
		return id, b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[receipt][gateway] gateway not configured")
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[receipt][gateway] issue start payment_id=%d amount=%.2f", p.ID, p.Amount)

	req := payment.Request{
		TransactionAmount: p.Amount,
		Description:       description,
		ExternalReference: externalReference(p),
		PaymentMethodID:   getenvDefault("MERCADOPAGO_PAYMENT_METHOD_ID", "pix"),
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYER_EMAIL")); email != "" {
		req.Payer = &payment.PayerRequest{Email: email}
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[receipt][gateway] sdk create failed payment_id=%d err=%v", p.ID, err)
		return "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[receipt][gateway] response marshal failed err=%v", err)
		return "", nil, err
	}
	log.Printf("[receipt][gateway] issue success payment_id=%d provider_receipt_id=%d provider_status=%s", p.ID, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), b, nil
}

// externalReference ties the provider record back to the dashboard's payment.
func externalReference(p entities.ProjectPayment) string {
	return fmt.Sprintf("project-%d-payment-%d", p.ProjectID, p.ID)
}

func isReceiptGatewayMockEnabled() bool {
	for _, key := range []string{"RECEIPT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
