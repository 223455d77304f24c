package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"paneltec_cotizador/internal/catalog"
	"paneltec_cotizador/internal/domain/engine"
	"paneltec_cotizador/internal/domain/entities"
	"paneltec_cotizador/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrInvalidQuotationID = errors.New("invalid quotation id")
)

// IQuotationUseCase exposes quotation operations to the HTTP layer.
//
// CreateQuotation runs the full engine pass (autoportancia validation, BOM
// quantities, unit-of-measure pricing, totals) against the current catalog
// snapshot and persists the result. Status transitions are driven by the
// conversational front-end once the customer reacts to the quoted total.

type IQuotationUseCase interface {
	CreateQuotation(ctx context.Context, req entities.QuotationRequest) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ApproveByID(ctx context.Context, id string) (entities.Quotation, error)
	RejectByID(ctx context.Context, id string) (entities.Quotation, error)
	CancelByID(ctx context.Context, id string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	catalogs *catalog.Holder
	repo     interfaces.IQuotationRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(catalogs *catalog.Holder, repo interfaces.IQuotationRepository) *QuotationUseCase {
	return &QuotationUseCase{catalogs: catalogs, repo: repo}
}

func (u *QuotationUseCase) CreateQuotation(ctx context.Context, req entities.QuotationRequest) (entities.Quotation, error) {
	result, err := engine.Assemble(u.catalogs.Current(), req)
	if err != nil {
		return entities.Quotation{}, err
	}

	if !result.Validation.IsValid {
		log.Printf("[quotation][usecase] autoportancia warning family=%s thickness=%d span=%s: %s",
			req.ProductFamily, req.ThicknessMm, req.SpanM, result.Validation.Recommendation)
	}
	for _, sku := range result.PendingPriceWarnings {
		log.Printf("[quotation][usecase] pending price sku=%s", sku)
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:        uuid.NewString(),
		Status:    entities.QuotationStatusPendiente,
		Result:    result,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuotationUseCase) ApproveByID(ctx context.Context, id string) (entities.Quotation, error) {
	return u.updateStatusByID(ctx, id, entities.QuotationStatusAprobada)
}

func (u *QuotationUseCase) RejectByID(ctx context.Context, id string) (entities.Quotation, error) {
	return u.updateStatusByID(ctx, id, entities.QuotationStatusRechazada)
}

func (u *QuotationUseCase) CancelByID(ctx context.Context, id string) (entities.Quotation, error) {
	return u.updateStatusByID(ctx, id, entities.QuotationStatusCancelada)
}

func (u *QuotationUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}
