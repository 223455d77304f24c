package interfaces

import (
	"context"
	"paneltec_cotizador/internal/domain/entities"
)

// IAnticipoPaymentRepository abstracts DynamoDB persistence for AnticipoPayment.

type IAnticipoPaymentRepository interface {
	Create(ctx context.Context, p entities.AnticipoPayment) (entities.AnticipoPayment, error)
	GetByID(ctx context.Context, id string) (entities.AnticipoPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.AnticipoPayment, error)
}
