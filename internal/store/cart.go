package store

import "freshmart_back_end/internal/models"

// AddToCart insère une ligne avec un instantané du produit, ou incrémente
// la quantité si le produit y figure déjà.
func (s *Store) AddToCart(userID string, p models.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].Product.ID == p.ID {
			items[i].Quantity += qty
			return nil
		}
	}
	s.carts[userID] = append(items, models.CartItem{Product: p, Quantity: qty})
	return nil
}

// UpdateQuantity fixe la quantité d'une ligne ; zéro ou moins la supprime.
// Un produit absent du panier est ignoré silencieusement.
func (s *Store) UpdateQuantity(userID, productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].Product.ID != productID {
			continue
		}
		if qty <= 0 {
			s.carts[userID] = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = qty
		}
		return
	}
}

func (s *Store) RemoveFromCart(userID, productID string) {
	s.UpdateQuantity(userID, productID, 0)
}

func (s *Store) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Cart renvoie les lignes du panier avec les totaux dérivés (hors taxe).
func (s *Store) Cart(userID string) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := append([]models.CartItem(nil), s.carts[userID]...)
	cart := models.Cart{Items: items}
	for _, it := range items {
		cart.TotalItems += it.Quantity
		cart.TotalPrice += it.Product.Price * float64(it.Quantity)
	}
	return cart
}

func (s *Store) TotalItems(userID string) int {
	return s.Cart(userID).TotalItems
}

func (s *Store) TotalPrice(userID string) float64 {
	return s.Cart(userID).TotalPrice
}
