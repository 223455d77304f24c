package routes

import (
	"paneltec_cotizador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/products", catalogHandler.ListProducts)
		catalog.GET("/accessories", catalogHandler.ListAccessories)
		catalog.GET("/systems", catalogHandler.ListSystems)
		catalog.POST("/reload", catalogHandler.ReloadCatalog)
	}
}
