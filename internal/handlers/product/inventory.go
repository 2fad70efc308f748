package product

import (
	"errors"
	"log"
	"net/http"

	"freshmart_back_end/internal/models"
	"freshmart_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// InventoryHandler regroupe les opérations réservées aux admins
type InventoryHandler struct {
	Store *store.Store
}

// 🟢 POST /api/admin/products
func (h *InventoryHandler) Create(c *gin.Context) {
	var body models.Product
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données produit invalides"})
		return
	}

	created, err := h.Store.AddProduct(body)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	log.Printf("✅ Produit créé : %s (%s)", created.Name, created.ID)
	c.JSON(http.StatusCreated, created)
}

// 🟢 PATCH /api/admin/products/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données de mise à jour invalides"})
		return
	}

	id := c.Param("id")
	if err := h.Store.UpdateProduct(id, patch); err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		case errors.Is(err, store.ErrUnknownCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	p, _ := h.Store.ProductByID(id)
	c.JSON(http.StatusOK, p)
}

// 🟢 DELETE /api/admin/products/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.DeleteProduct(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	log.Printf("🗑️ Produit supprimé : %s", id)
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}

// 🟢 POST /api/admin/products/bulk
// Les mises à jour sans id sont ignorées, on renvoie le nombre traité
func (h *InventoryHandler) BulkUpdate(c *gin.Context) {
	var patches []models.ProductPatch
	if err := c.ShouldBindJSON(&patches); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tableau de mises à jour invalide"})
		return
	}

	processed := h.Store.BulkUpdateProducts(patches)
	log.Printf("✅ Mise à jour en masse : %d/%d produits traités", processed, len(patches))
	c.JSON(http.StatusOK, gin.H{"processed": processed, "submitted": len(patches)})
}

// 🟢 GET /api/admin/products/low-stock
func (h *InventoryHandler) LowStock(c *gin.Context) {
	products := h.Store.LowStockProducts()
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}
