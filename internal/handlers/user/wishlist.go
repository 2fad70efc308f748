package user

import (
	"log"
	"net/http"

	"freshmart_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	Store *store.Store
}

// GetWishlist récupère la wishlist de l'utilisateur
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	c.JSON(http.StatusOK, gin.H{"items": h.Store.Wishlist(userID)})
}

// AddToWishlist ajoute un produit à la wishlist (no-op s'il y est déjà)
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, err := h.Store.ProductByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	h.Store.AddToWishlist(userID, product)
	log.Printf("⭐ Produit %s ajouté à la wishlist de %s", req.ProductID, userID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Produit ajouté à la wishlist",
		"product_id": req.ProductID,
	})
}

// RemoveFromWishlist retire un produit de la wishlist
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	h.Store.RemoveFromWishlist(userID, productID)
	log.Printf("🗑️ Produit %s retiré de la wishlist de %s", productID, userID)

	c.JSON(http.StatusOK, gin.H{"message": "Produit retiré de la wishlist"})
}

func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	h.Store.ClearWishlist(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist vidée"})
}
