package user

import (
	"errors"
	"log"
	"net/http"

	"freshmart_back_end/internal/models"
	"freshmart_back_end/internal/store"
	"freshmart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Store *store.Store
}

// Checkout transforme le panier en commande. Le total TTC (5%% de taxe)
// et l'heure de retrait sont figés ici.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	name := c.GetString("name")
	email := c.GetString("email")

	var input struct {
		TimeSlot      string `json:"timeSlot" binding:"required"`
		PaymentMethod string `json:"paymentMethod" binding:"required"`
		Notes         string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	order, err := h.Store.Checkout(store.CheckoutInput{
		CustomerID:    userID,
		CustomerName:  name,
		TimeSlot:      input.TimeSlot,
		PaymentMethod: models.PaymentMethod(input.PaymentMethod),
		Notes:         input.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Impossible de commander avec un panier vide"})
		case errors.Is(err, store.ErrUnknownTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Créneau de retrait inconnu", "slots": store.PickupSlots()})
		case errors.Is(err, store.ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Méthode de paiement invalide"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		}
		return
	}

	// Mail de confirmation si un SMTP est configuré, sinon le fil de
	// notifications suffit
	if utils.MailEnabled() && email != "" {
		go func() {
			html := utils.GenerateOrderConfirmationHTML(order)
			if err := utils.SendConfirmationEmail(email, "✅ Commande confirmée - FreshMart", html); err != nil {
				log.Printf("❌ Erreur envoi email confirmation: %v", err)
			}
		}()
	}

	log.Printf("🛒 Commande %s créée pour %s — %.2f€", order.ID, userID, order.Total)
	c.JSON(http.StatusOK, order)
}

// GetPickupSlots liste les créneaux de retrait proposés au checkout
func (h *OrderHandler) GetPickupSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": store.PickupSlots()})
}

// GetMyOrders récupère toutes les commandes de l'utilisateur connecté
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	orders := h.Store.OrdersForCustomer(userID)
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrderByID récupère une commande : son propriétaire ou un admin
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	order, err := h.Store.OrderByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if order.CustomerID != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cette commande ne vous appartient pas"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetPickupQR génère le QR à présenter au comptoir de retrait
func (h *OrderHandler) GetPickupQR(c *gin.Context) {
	userID := c.GetString("user_id")

	order, err := h.Store.OrderByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if order.CustomerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cette commande ne vous appartient pas"})
		return
	}

	qr, err := utils.GeneratePickupQR(order.ID, order.PickupTime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order_id": order.ID, "qr": qr})
}
