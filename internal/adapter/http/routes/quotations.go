package routes

import (
	"paneltec_cotizador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathPayments   = "/payments"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, paymentHandler *handlers.AnticipoPaymentHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.PATCH("/:id/approve", quotationHandler.ApproveQuotation)
		quotations.PATCH("/:id/reject", quotationHandler.RejectQuotation)
		quotations.PATCH("/:id/cancel", quotationHandler.CancelQuotation)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quotation_id", paymentHandler.CreatePaymentByQuotationID)
		payments.GET("/:quotation_id", paymentHandler.GetPaymentByQuotationID)
	}
}
