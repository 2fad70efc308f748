package notify

import (
	"log"
	"sync"
	"time"

	"freshmart_back_end/internal/models"

	"github.com/google/uuid"
)

// Hub centralise les notifications : fil par utilisateur en mémoire
// plus diffusion temps réel vers les WebSockets abonnés. L'envoi ne
// bloque jamais l'émetteur.
type Hub struct {
	mu    sync.RWMutex
	feeds map[string][]models.Notification
	subs  map[string][]chan models.Notification
}

func NewHub() *Hub {
	return &Hub{
		feeds: make(map[string][]models.Notification),
		subs:  make(map[string][]chan models.Notification),
	}
}

// Notify ajoute la notification au fil du destinataire et la pousse aux
// connexions actives. Canal plein = message temps réel abandonné, le fil
// reste la source de vérité.
func (h *Hub) Notify(userID, title, message string, kind models.NotificationType) {
	n := models.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	}

	h.mu.Lock()
	n.Timestamp = time.Now()
	h.feeds[userID] = append(h.feeds[userID], n)
	subs := append([]chan models.Notification(nil), h.subs[userID]...)
	h.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- n:
		default:
			log.Printf("⚠️ Abonné %s saturé, notification temps réel ignorée", userID)
		}
	}
}

// ForUser renvoie le fil complet, du plus récent au plus ancien.
func (h *Hub) ForUser(userID string) []models.Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()

	feed := h.feeds[userID]
	out := make([]models.Notification, 0, len(feed))
	for i := len(feed) - 1; i >= 0; i-- {
		out = append(out, feed[i])
	}
	return out
}

func (h *Hub) UnreadCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, n := range h.feeds[userID] {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead marque une notification comme lue, renvoie false si elle
// n'appartient pas à ce fil.
func (h *Hub) MarkRead(userID, notificationID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	feed := h.feeds[userID]
	for i := range feed {
		if feed[i].ID == notificationID {
			feed[i].Read = true
			return true
		}
	}
	return false
}

func (h *Hub) MarkAllRead(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	feed := h.feeds[userID]
	for i := range feed {
		feed[i].Read = true
	}
}

// Subscribe ouvre un canal temps réel pour ce user. L'appelant doit
// appeler cancel à la fermeture de la connexion.
func (h *Hub) Subscribe(userID string) (<-chan models.Notification, func()) {
	ch := make(chan models.Notification, 16)

	h.mu.Lock()
	h.subs[userID] = append(h.subs[userID], ch)
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs := h.subs[userID]
		for i := range subs {
			if subs[i] == ch {
				h.subs[userID] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
	return ch, cancel
}
