package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the anticipo (down payment) processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado  PaymentStatus = "aprobado"
	PaymentStatusNegado    PaymentStatus = "negado"
)

// AnticipoPayment is the down payment a customer places on an approved
// quotation before fabrication starts.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_id-index): quotation_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for debugging.

type AnticipoPayment struct {
	ID          string        `json:"id"`
	QuotationID string        `json:"quotation_id"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
