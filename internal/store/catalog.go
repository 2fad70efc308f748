package store

import (
	"fmt"

	"freshmart_back_end/internal/models"
)

// AddProduct enregistre un nouveau produit avec un identifiant frais
// et prévient le canal admin.
func (s *Store) AddProduct(data models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateProduct(data); err != nil {
		return models.Product{}, err
	}

	data.ID = s.nextID()
	s.products = append(s.products, data)

	s.notify(models.AdminChannel, "Produit ajouté",
		fmt.Sprintf("%s a été ajouté à l'inventaire", data.Name), models.NotifSuccess)
	s.stockAlert(data)

	return data, nil
}

// UpdateProduct applique un patch champ par champ sur le produit visé.
func (s *Store) UpdateProduct(id string, patch models.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProduct(id)
	if i < 0 {
		return ErrProductNotFound
	}

	updated := s.products[i]
	patch.Apply(&updated)
	if err := s.validateProduct(updated); err != nil {
		return err
	}

	s.products[i] = updated
	s.stockAlert(updated)
	return nil
}

// DeleteProduct retire le produit du catalogue. Les instantanés déjà
// présents dans les paniers et les commandes restent intacts.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProduct(id)
	if i < 0 {
		return ErrProductNotFound
	}

	name := s.products[i].Name
	s.products = append(s.products[:i], s.products[i+1:]...)

	s.notify(models.AdminChannel, "Produit supprimé",
		fmt.Sprintf("%s a été retiré de l'inventaire", name), models.NotifInfo)
	return nil
}

// BulkUpdateProducts applique chaque patch porteur d'un id, ignore les
// autres, et renvoie le nombre d'entrées traitées. Les échecs individuels
// ne bloquent pas le lot.
func (s *Store) BulkUpdateProducts(patches []models.ProductPatch) int {
	processed := 0
	for _, patch := range patches {
		if patch.ID == "" {
			continue
		}
		processed++
		_ = s.UpdateProduct(patch.ID, patch)
	}

	s.notify(models.AdminChannel, "Mise à jour groupée terminée",
		fmt.Sprintf("%d produits ont été mis à jour", processed), models.NotifSuccess)
	return processed
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

func (s *Store) ProductByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findProduct(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	return s.products[i], nil
}

// LowStockProducts liste les produits à stock faible, que le flag
// inStock soit levé ou non.
func (s *Store) LowStockProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var low []models.Product
	for _, p := range s.products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// Categories recalcule productCount à chaque appel, jamais incrémenté
// à la main.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]models.Category(nil), s.categories...)
	for i := range out {
		count := 0
		for _, p := range s.products {
			if p.Category == out[i].Name {
				count++
			}
		}
		out[i].ProductCount = count
	}
	return out
}

// --- helpers (verrou détenu par l'appelant) ---

func (s *Store) findProduct(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) categoryExists(name string) bool {
	for _, c := range s.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (s *Store) validateProduct(p models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: nom manquant", ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: prix négatif", ErrInvalidProduct)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock négatif", ErrInvalidProduct)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: note hors de l'intervalle 0-5", ErrInvalidProduct)
	}
	if p.Reviews < 0 {
		return fmt.Errorf("%w: nombre d'avis négatif", ErrInvalidProduct)
	}
	if !s.categoryExists(p.Category) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, p.Category)
	}
	return nil
}

func (s *Store) stockAlert(p models.Product) {
	if p.Stock <= models.StockAlertThreshold && p.InStock {
		s.notify(models.AdminChannel, "Alerte stock faible",
			fmt.Sprintf("%s est presque épuisé (%d restants)", p.Name, p.Stock),
			models.NotifWarning)
	}
}
