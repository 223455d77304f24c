package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "paneltec_cotizador/internal/adapter/http/dto/request"
	response "paneltec_cotizador/internal/adapter/http/dto/response"
	"paneltec_cotizador/internal/domain/engine"
	"paneltec_cotizador/internal/domain/entities"
	"paneltec_cotizador/internal/usecase"
	"paneltec_cotizador/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for quotations.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation computes and persists a quotation from geometry and product
// identity. An autoportancia failure does not reject the request: the
// quotation comes back with the warning embedded, and the caller decides.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.CreateQuotation(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[quotation][handler] create failed family=%s thickness=%d err=%v", payload.ProductFamily, payload.ThicknessMm, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

// GetQuotation returns a persisted quotation by id.
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) ApproveQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.ApproveByID)
}

func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.RejectByID)
}

func (h *QuotationHandler) CancelQuotation(c *gin.Context) {
	h.patchQuotationStatus(c, h.usecase.CancelByID)
}

func (h *QuotationHandler) patchQuotationStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quotation, error),
) {
	q, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, engine.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Unknown product family/thickness", http.StatusNotFound)
	case errors.Is(err, engine.ErrSystemNotFound):
		return pkg.NewDomainErrorSimple("SYSTEM_NOT_FOUND", "Unknown construction system", http.StatusNotFound)
	case errors.Is(err, engine.ErrInvalidGeometry), errors.Is(err, engine.ErrInvalidDiscount),
		errors.Is(err, engine.ErrIncompatibleSystem), errors.Is(err, usecase.ErrInvalidQuotationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	default:
		// engine.ErrMissingFormula and engine.ErrNoCompatibleAccessory land
		// here on purpose: catalog configuration defects are server faults,
		// not client ones.
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
