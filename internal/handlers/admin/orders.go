package admin

import (
	"errors"
	"log"
	"net/http"

	"freshmart_back_end/internal/models"
	"freshmart_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Store *store.Store
}

// 🟢 GET /api/admin/orders?status=pending
func (h *OrderHandler) List(c *gin.Context) {
	raw := c.Query("status")
	if raw == "" {
		orders := h.Store.Orders()
		c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
		return
	}

	status := models.OrderStatus(raw)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu (pending, preparing, ready, completed, cancelled)"})
		return
	}

	orders := h.Store.OrdersByStatus(status)
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

// 🟢 PATCH /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !body.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu (pending, preparing, ready, completed, cancelled)"})
		return
	}

	orderID := c.Param("id")
	if err := h.Store.UpdateOrderStatus(orderID, body.Status); err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		case errors.Is(err, store.ErrInvalidStatusChange):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	log.Printf("📤 Commande %s → %s", orderID, body.Status)
	order, _ := h.Store.OrderByID(orderID)
	c.JSON(http.StatusOK, order)
}
