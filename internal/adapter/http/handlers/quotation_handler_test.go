package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paneltec_cotizador/internal/adapter/http/handlers/mocks"
	"paneltec_cotizador/internal/domain/engine"
	"paneltec_cotizador/internal/domain/entities"
	"paneltec_cotizador/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const createQuotationBody = `{
	"product_family": "isodec-eps",
	"thickness_mm": 100,
	"length_m": 10,
	"width_m": 5,
	"span_m": 4.5,
	"construction_system": "metal-roof-eps",
	"include_accessories": true
}`

func sampleQuotation() entities.Quotation {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return entities.Quotation{
		ID:     "q-1",
		Status: entities.QuotationStatusPendiente,
		Result: entities.QuotationResult{
			AreaM2:               decimal.NewFromInt(50),
			Subtotal:             decimal.RequireFromString("2303.50"),
			GrandTotal:           decimal.RequireFromString("2303.50"),
			PendingPriceWarnings: []string{},
			Verified:             true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"product_family":"isodec-eps"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, engine.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(createQuotationBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid geometry maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, engine.ErrInvalidGeometry)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(createQuotationBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("catalog defect maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, engine.ErrNoCompatibleAccessory)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(createQuotationBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.AssignableToTypeOf(entities.QuotationRequest{})).DoAndReturn(
			func(_ context.Context, req entities.QuotationRequest) (entities.Quotation, error) {
				if req.ProductFamily != "isodec-eps" || req.ThicknessMm != 100 || !req.IncludeAccessories {
					t.Fatalf("unexpected request: %+v", req)
				}
				return sampleQuotation(), nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(createQuotationBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if body["id"] != "q-1" {
			t.Fatalf("expected id q-1, got %v", body["id"])
		}
		if body["grand_total"] != "2303.50" {
			t.Fatalf("expected grand_total 2303.50, got %v", body["grand_total"])
		}
	})
}

func TestQuotationHandler_GetQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(sampleQuotation(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	register := func(r *gin.Engine, h *QuotationHandler) {
		r.PATCH("/v1/quotations/:id/approve", h.ApproveQuotation)
		r.PATCH("/v1/quotations/:id/reject", h.RejectQuotation)
		r.PATCH("/v1/quotations/:id/cancel", h.CancelQuotation)
	}

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)
		r := gin.New()
		register(r, h)

		q := sampleQuotation()
		q.Status = entities.QuotationStatusAprobada
		uc.EXPECT().ApproveByID(gomock.Any(), "q-1").Return(q, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if body["status"] != string(entities.QuotationStatusAprobada) {
			t.Fatalf("expected aprobada, got %v", body["status"])
		}
	})

	t.Run("reject not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)
		r := gin.New()
		register(r, h)

		uc.EXPECT().RejectByID(gomock.Any(), "q-404").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-404/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("cancel repo failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)
		r := gin.New()
		register(r, h)

		uc.EXPECT().CancelByID(gomock.Any(), "q-1").Return(entities.Quotation{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
