package interfaces

import (
	"context"
	"paneltec_cotizador/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// The cotizador must be able to:
//   - persist an assembled quotation for audit
//   - fetch it back by id for the conversational front-end
//   - update its status when the customer approves/rejects/cancels

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
}
