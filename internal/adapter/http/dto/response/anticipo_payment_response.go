package response

import (
	"time"

	"paneltec_cotizador/internal/domain/entities"
)

type AnticipoPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	QuotationID string    `json:"quotation_id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromAnticipoPayment(p entities.AnticipoPayment) AnticipoPaymentResponse {
	return AnticipoPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		QuotationID:  p.QuotationID,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
