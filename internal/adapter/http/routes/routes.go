package routes

import (
	"log"
	"os"
	"strconv"

	_ "paneltec_cotizador/docs" // This will be auto-generated
	"paneltec_cotizador/internal/adapter/http/handlers"
	repository2 "paneltec_cotizador/internal/adapter/persistence/repository"
	"paneltec_cotizador/internal/catalog"
	"paneltec_cotizador/internal/infrastructure/database"
	"paneltec_cotizador/internal/infrastructure/payments"
	"paneltec_cotizador/internal/usecase"
	"paneltec_cotizador/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	catalogDir := getenvDefault("CATALOG_DIR", "data")
	store, err := catalog.LoadDir(catalogDir)
	if err != nil {
		log.Fatalf("Failed to load catalog from %s: %v", catalogDir, err)
	}
	holder := catalog.NewHolder(store)
	log.Printf("[catalog] loaded dir=%s families=%d systems=%d", catalogDir, len(store.Families()), len(store.Systems()))

	ddb := database.ConnectDynamoDB()

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	paymentRepo := repository2.NewAnticipoPaymentDynamoRepository(ddb)

	quotationUseCase := usecase.NewQuotationUseCase(holder, quotationRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewAnticipoPaymentUseCase(paymentRepo, quotationRepo, paymentGateway)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	anticipoPaymentHandler := handlers.NewAnticipoPaymentHandler(paymentUseCase)
	catalogHandler := handlers.NewCatalogHandler(holder, catalogDir)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler, anticipoPaymentHandler)
	addCatalogRoutes(v1, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
