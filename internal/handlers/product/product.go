package product

import (
	"net/http"
	"strconv"
	"strings"

	"freshmart_back_end/internal/models"
	"freshmart_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *store.Store
}

// List applique le pipeline de filtres du catalogue depuis la query string :
// q, brands (séparées par des virgules), minPrice, maxPrice, availability,
// rating, sortBy
func (h *Handler) List(c *gin.Context) {
	filter := models.DefaultFilter()

	if raw := c.Query("brands"); raw != "" {
		filter.Brands = strings.Split(raw, ",")
	}
	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minPrice invalide"})
			return
		}
		filter.PriceRange[0] = v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice invalide"})
			return
		}
		filter.PriceRange[1] = v
	}
	if raw := c.Query("availability"); raw != "" {
		filter.Availability = models.Availability(raw)
		if !filter.Availability.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "availability invalide (all, inStock, outOfStock)"})
			return
		}
	}
	if raw := c.Query("rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating invalide"})
			return
		}
		filter.Rating = v
	}
	if raw := c.Query("sortBy"); raw != "" {
		filter.SortBy = models.SortKey(raw)
		if !filter.SortBy.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sortBy invalide (name, price-low, price-high, rating, newest)"})
			return
		}
	}

	products := h.Store.FilteredProducts(filter, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.Store.ProductByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Search fait la recherche plein-texte seule, sans le reste du pipeline
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre q manquant"})
		return
	}
	products := h.Store.SearchProducts(query)
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// Suggestions alimente l'autocomplétion de la barre de recherche
func (h *Handler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": h.Store.SearchSuggestions(c.Query("q"))})
}

// Categories renvoie les catégories avec leur productCount recalculé
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Store.Categories()})
}

// Recommended se base sur l'historique d'achat du client connecté
func (h *Handler) Recommended(c *gin.Context) {
	userID := c.GetString("user_id")
	c.JSON(http.StatusOK, gin.H{"products": h.Store.RecommendedProducts(userID)})
}
