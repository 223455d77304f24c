package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "paneltec_cotizador/internal/adapter/http/dto/response"
	"paneltec_cotizador/internal/usecase"
	"paneltec_cotizador/pkg"

	"github.com/gin-gonic/gin"
)

// AnticipoPaymentHandler handles HTTP requests for quotation down payments.

type AnticipoPaymentHandler struct {
	usecase usecase.IAnticipoPaymentUseCase
}

func NewAnticipoPaymentHandler(uc usecase.IAnticipoPaymentUseCase) *AnticipoPaymentHandler {
	return &AnticipoPaymentHandler{usecase: uc}
}

// CreatePaymentByQuotationID creates/approves an anticipo using quotation_id in path.
func (h *AnticipoPaymentHandler) CreatePaymentByQuotationID(c *gin.Context) {
	quotationID := c.Param("quotation_id")
	log.Printf("[payment][handler] create start quotation_id=%s", quotationID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload quotation_id=%s err=%v", quotationID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload quotation_id=%s err=%v", quotationID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), quotationID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed quotation_id=%s err=%v", quotationID, err)
		appErr := mapAnticipoPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success quotation_id=%s payment_id=%s status=%s", quotationID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromAnticipoPayment(created))
}

// GetPaymentByQuotationID returns the latest payment for a quotation.
func (h *AnticipoPaymentHandler) GetPaymentByQuotationID(c *gin.Context) {
	quotationID := c.Param("quotation_id")

	payments, err := h.usecase.ListByQuotationID(c.Request.Context(), quotationID)
	if err != nil {
		appErr := mapAnticipoPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromAnticipoPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapAnticipoPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuotationID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotApproved):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_APPROVED", "Quotation not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrAnticipoPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
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
