package user

import (
	"log"
	"net/http"
	"time"

	"freshmart_back_end/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

type NotificationsHandler struct {
	Hub *notify.Hub
}

func (h *NotificationsHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.Hub.ForUser(userID),
		"unread":        h.Hub.UnreadCount(userID),
	})
}

func (h *NotificationsHandler) MarkRead(c *gin.Context) {
	userID := c.GetString("user_id")
	if !h.Hub.MarkRead(userID, c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification lue"})
}

func (h *NotificationsHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetString("user_id")
	h.Hub.MarkAllRead(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Toutes les notifications sont lues"})
}

// Stream pousse les notifications en temps réel sur WebSocket
func (h *NotificationsHandler) Stream(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	// Upgrade vers WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ch, cancel := h.Hub.Subscribe(userID)
	defer cancel()

	// Message de connexion
	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Notifications temps réel activées",
	})

	// Boucle d'écoute
	for {
		select {
		case n := <-ch:
			if err := conn.WriteJSON(gin.H{"type": "notification", "notification": n}); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
