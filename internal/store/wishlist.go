package store

import "freshmart_back_end/internal/models"

// AddToWishlist est un no-op si le produit est déjà dans la liste.
func (s *Store) AddToWishlist(userID string, p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.wishlists[userID] {
		if it.Product.ID == p.ID {
			return
		}
	}
	s.wishlists[userID] = append(s.wishlists[userID], models.WishlistItem{
		Product: p,
		AddedAt: s.now(),
	})
}

func (s *Store) RemoveFromWishlist(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.wishlists[userID]
	for i := range items {
		if items[i].Product.ID == productID {
			s.wishlists[userID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

func (s *Store) ClearWishlist(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists, userID)
}

func (s *Store) IsInWishlist(userID, productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.wishlists[userID] {
		if it.Product.ID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Wishlist(userID string) []models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WishlistItem(nil), s.wishlists[userID]...)
}
