package store

import (
	"sort"
	"strconv"
	"strings"

	"freshmart_back_end/internal/models"
)

// SearchProducts fait une recherche plein-texte naïve, insensible à la
// casse, sur nom, description, catégorie, marque et tags. Une requête
// vide ne matche rien : l'appelant court-circuite ce cas.
func (s *Store) SearchProducts(query string) []models.Product {
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product
	for _, p := range s.products {
		if matchesQuery(p, strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out
}

// SearchSuggestions propose jusqu'à 5 noms de produits dont le nom, la
// marque ou un tag contient la saisie.
func (s *Store) SearchSuggestions(query string) []string {
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []string
	for _, p := range s.products {
		if len(out) == 5 {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			tagMatches(p.Tags, q) {
			out = append(out, p.Name)
		}
	}
	return out
}

// FilteredProducts applique le pipeline dans un ordre fixe : recherche,
// marques, fourchette de prix, disponibilité, note minimale, puis tri.
func (s *Store) FilteredProducts(f models.Filter, query string) []models.Product {
	var filtered []models.Product
	if query != "" {
		filtered = s.SearchProducts(query)
	} else {
		filtered = s.Products()
	}

	if len(f.Brands) > 0 {
		filtered = keep(filtered, func(p models.Product) bool {
			for _, b := range f.Brands {
				if p.Brand == b {
					return true
				}
			}
			return false
		})
	}

	filtered = keep(filtered, func(p models.Product) bool {
		return p.Price >= f.PriceRange[0] && p.Price <= f.PriceRange[1]
	})

	switch f.Availability {
	case models.AvailabilityInStock:
		filtered = keep(filtered, func(p models.Product) bool { return p.InStock })
	case models.AvailabilityOutOfStock:
		filtered = keep(filtered, func(p models.Product) bool { return !p.InStock })
	}

	if f.Rating > 0 {
		filtered = keep(filtered, func(p models.Product) bool { return p.Rating >= f.Rating })
	}

	sortProducts(filtered, f.SortBy)
	return filtered
}

// RecommendedProducts part de l'historique d'achat du client : les 3
// catégories les plus achetées, puis les meilleurs produits de ces
// catégories par note, plafonné à 6.
func (s *Store) RecommendedProducts(customerID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{}
	var seen []string
	for _, o := range s.orders {
		if o.CustomerID != customerID {
			continue
		}
		for _, it := range o.Items {
			cat := it.Product.Category
			if _, ok := counts[cat]; !ok {
				seen = append(seen, cat)
			}
			counts[cat] += it.Quantity
		}
	}
	if len(seen) == 0 {
		return nil
	}

	// tri stable : à fréquence égale, l'ordre de première apparition gagne
	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})
	if len(seen) > 3 {
		seen = seen[:3]
	}
	top := map[string]bool{}
	for _, cat := range seen {
		top[cat] = true
	}

	var out []models.Product
	for _, p := range s.products {
		if top[p.Category] {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > 6 {
		out = out[:6]
	}
	return out
}

// --- helpers ---

func matchesQuery(p models.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		tagMatches(p.Tags, q)
}

func tagMatches(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func keep(in []models.Product, pred func(models.Product) bool) []models.Product {
	out := in[:0]
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortByPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case models.SortByPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case models.SortByRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case models.SortByNewest:
		// les identifiants sont des millisecondes : plus grand = plus récent
		sort.SliceStable(products, func(i, j int) bool { return numericID(products[i].ID) > numericID(products[j].ID) })
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	}
}

func numericID(id string) int64 {
	n, _ := strconv.ParseInt(id, 10, 64)
	return n
}
