package handlers

import (
	"log"
	"net/http"

	response "paneltec_cotizador/internal/adapter/http/dto/response"
	"paneltec_cotizador/internal/catalog"
	"paneltec_cotizador/internal/domain/entities"
	"paneltec_cotizador/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes read-only catalog lookups and the reload endpoint.
//
// Reads always go through the holder's current snapshot; reload builds a full
// new store from the source directory and swaps it atomically.

type CatalogHandler struct {
	catalogs   *catalog.Holder
	sourcesDir string
}

func NewCatalogHandler(catalogs *catalog.Holder, sourcesDir string) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs, sourcesDir: sourcesDir}
}

// ListProducts returns every product, grouped by family in lexical order.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	store := h.catalogs.Current()
	out := make([]response.ProductResponse, 0)
	for _, family := range store.Families() {
		for _, p := range store.ProductsByFamily(family) {
			out = append(out, response.FromProduct(p))
		}
	}
	c.JSON(http.StatusOK, out)
}

// ListAccessories returns the accessories of one category.
func (h *CatalogHandler) ListAccessories(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing category query parameter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	entries := h.catalogs.Current().GetAccessoriesByCategory(entities.ItemCategory(category))
	out := make([]response.AccessoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, response.FromAccessory(e))
	}
	c.JSON(http.StatusOK, out)
}

// ListSystems returns every construction system.
func (h *CatalogHandler) ListSystems(c *gin.Context) {
	store := h.catalogs.Current()
	out := make([]response.SystemResponse, 0)
	for _, id := range store.Systems() {
		out = append(out, response.FromSystem(store.GetBOMRule(id)))
	}
	c.JSON(http.StatusOK, out)
}

// ReloadCatalog rebuilds the store from the source directory and swaps it in.
// A malformed source leaves the previous snapshot serving.
func (h *CatalogHandler) ReloadCatalog(c *gin.Context) {
	store, err := catalog.LoadDir(h.sourcesDir)
	if err != nil {
		log.Printf("[catalog][handler] reload failed dir=%s err=%v", h.sourcesDir, err)
		appErr := pkg.NewDomainError("CATALOG_LOAD_FAILED", "Catalog sources are invalid; previous catalog kept", err, http.StatusUnprocessableEntity)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.catalogs.Swap(store)
	log.Printf("[catalog][handler] reload success dir=%s families=%d systems=%d", h.sourcesDir, len(store.Families()), len(store.Systems()))
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
