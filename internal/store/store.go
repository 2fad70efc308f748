package store

import (
	"strconv"
	"sync"
	"time"

	"freshmart_back_end/internal/models"
)

// Notifier reçoit les événements du magasin (fire-and-forget, jamais attendu)
type Notifier interface {
	Notify(userID, title, message string, kind models.NotificationType)
}

// Store détient toutes les collections en mémoire et en garde la propriété
// exclusive : les handlers passent obligatoirement par ses méthodes.
// Tout est volatile, un redémarrage repart du catalogue initial.
type Store struct {
	mu sync.RWMutex

	products   []models.Product
	categories []models.Category
	orders     []models.Order
	carts      map[string][]models.CartItem
	wishlists  map[string][]models.WishlistItem

	notifier Notifier
	lastID   int64
	now      func() time.Time
}

func New(n Notifier) *Store {
	s := &Store{
		carts:     make(map[string][]models.CartItem),
		wishlists: make(map[string][]models.WishlistItem),
		notifier:  n,
		now:       time.Now,
	}
	s.categories = initialCategories()
	s.products = initialProducts()
	return s
}

// nextID génère des identifiants numériques strictement croissants.
// Le tri "newest" du catalogue repose sur cette propriété.
func (s *Store) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) notify(userID, title, message string, kind models.NotificationType) {
	if s.notifier != nil {
		s.notifier.Notify(userID, title, message, kind)
	}
}
