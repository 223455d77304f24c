package request

import "encoding/json"

// AnticipoPaymentCreateRequest is the payload for the "crea y procesa anticipo" route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type AnticipoPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
