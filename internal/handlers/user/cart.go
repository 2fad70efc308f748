package user

import (
	"errors"
	"net/http"

	"freshmart_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Store *store.Store
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	c.JSON(http.StatusOK, h.Store.Cart(userID))
}

//
// 🟢 POST /api/cart/add
//
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	product, err := h.Store.ProductByID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	if err := h.Store.AddToCart(userID, product, input.Quantity); err != nil {
		if errors.Is(err, store.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout au panier"})
		return
	}

	c.JSON(http.StatusOK, h.Store.Cart(userID))
}

// UpdateQuantity fixe la quantité d'une ligne ; zéro la supprime
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité manquante"})
		return
	}

	h.Store.UpdateQuantity(userID, productID, *input.Quantity)
	c.JSON(http.StatusOK, h.Store.Cart(userID))
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	h.Store.RemoveFromCart(userID, c.Param("productId"))
	c.JSON(http.StatusOK, h.Store.Cart(userID))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	h.Store.ClearCart(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé"})
}
