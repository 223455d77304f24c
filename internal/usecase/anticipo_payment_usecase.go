package usecase

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

	"paneltec_cotizador/internal/domain/entities"
	"paneltec_cotizador/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrAnticipoPaymentNotFound    = errors.New("anticipo payment not found")
	ErrInvalidPaymentQuotationID  = errors.New("invalid quotation_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrQuotationNotApproved       = errors.New("quotation not approved")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// defaultAnticipoPercent is the share of the grand total charged as down
// payment before fabrication starts.
var defaultAnticipoPercent = decimal.NewFromInt(30)

// IAnticipoPaymentUseCase encapsulates the "charge a down payment on an
// approved quotation" behavior.

type IAnticipoPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.AnticipoPayment, error)
	GetByID(ctx context.Context, id string) (entities.AnticipoPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.AnticipoPayment, error)
}

type AnticipoPaymentUseCase struct {
	repo          interfaces.IAnticipoPaymentRepository
	quotationRepo interfaces.IQuotationRepository
	gateway       interfaces.IPaymentGateway
}

var _ IAnticipoPaymentUseCase = (*AnticipoPaymentUseCase)(nil)

func NewAnticipoPaymentUseCase(repo interfaces.IAnticipoPaymentRepository, quotationRepo interfaces.IQuotationRepository, gateway interfaces.IPaymentGateway) *AnticipoPaymentUseCase {
	return &AnticipoPaymentUseCase{repo: repo, quotationRepo: quotationRepo, gateway: gateway}
}

func (u *AnticipoPaymentUseCase) CreateAndApprove(ctx context.Context, quotationID string, mpPayload json.RawMessage) (entities.AnticipoPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_quotation_id=%q payload_len=%d", quotationID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.AnticipoPayment{}, ErrInvalidPaymentQuotationID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload quotation_id=%s", quotationID)
			return entities.AnticipoPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.AnticipoPayment{}, errors.New("payment gateway not configured")
	}

	q, err := u.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quotation quotation_id=%s err=%v", quotationID, err)
		return entities.AnticipoPayment{}, err
	}
	if q.ID == "" {
		return entities.AnticipoPayment{}, ErrQuotationNotFound
	}
	if !mockMode && q.Status != entities.QuotationStatusAprobada {
		log.Printf("[payment][usecase] quotation not approved quotation_id=%s status=%s", quotationID, q.Status)
		return entities.AnticipoPayment{}, ErrQuotationNotApproved
	}

	anticipo := anticipoAmount(q.Result.GrandTotal)
	log.Printf("[payment][usecase] quotation loaded quotation_id=%s status=%s grand_total=%s anticipo=%s",
		quotationID, q.Status, q.Result.GrandTotal, anticipo)

	// Ensure basic linkage with the quotation when the caller didn't provide
	// it. Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.AnticipoPayment{}, ErrInvalidMPPayload
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quotationID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Anticipo cotización %s", quotationID)
		}

		// The source of truth for the amount is the persisted quotation.
		reqMap["transaction_amount"] = anticipo.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway quotation_id=%s", quotationID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		mockResp := map[string]any{}
		_ = json.Unmarshal(mpPayload, &mockResp)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = providerStatus
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.AnticipoPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed quotation_id=%s err=%v", quotationID, err)
			if isGatewayUnauthorized(err) {
				return entities.AnticipoPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.AnticipoPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.AnticipoPayment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success quotation_id=%s provider_payment_id=%s provider_status=%s",
		quotationID, providerPaymentID, providerStatus)

	status := entities.PaymentStatusAprobado
	if providerStatus != "approved" {
		status = entities.PaymentStatusNegado
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quotation_id=%s err=%v", quotationID, err)
	}

	p := entities.AnticipoPayment{
		ID:           providerPaymentID,
		QuotationID:  quotationID,
		Date:         time.Now().UTC(),
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed quotation_id=%s payment_id=%s err=%v", quotationID, p.ID, err)
		return entities.AnticipoPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success quotation_id=%s payment_id=%s status=%s", quotationID, created.ID, created.Status)
	return created, nil
}

func (u *AnticipoPaymentUseCase) GetByID(ctx context.Context, id string) (entities.AnticipoPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AnticipoPayment{}, ErrAnticipoPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AnticipoPayment{}, err
	}
	if p.ID == "" {
		return entities.AnticipoPayment{}, ErrAnticipoPaymentNotFound
	}
	return p, nil
}

func (u *AnticipoPaymentUseCase) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.AnticipoPayment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidPaymentQuotationID
	}
	return u.repo.ListByQuotationID(ctx, quotationID)
}

// anticipoAmount computes the down payment from the quoted grand total,
// rounded half-up to 2 places at this presentation boundary.
func anticipoAmount(grandTotal decimal.Decimal) decimal.Decimal {
	pct := defaultAnticipoPercent
	if v := strings.TrimSpace(os.Getenv("ANTICIPO_PERCENT")); v != "" {
		if parsed, err := decimal.NewFromString(v); err == nil && parsed.Sign() > 0 {
			pct = parsed
		}
	}
	return grandTotal.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
