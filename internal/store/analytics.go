package store

import (
	"sort"

	"freshmart_back_end/internal/models"
)

// Analytics recalcule tout l'instantané à partir de la liste complète des
// commandes. Aucun cache : chaque appel repart de zéro, l'opération est
// idempotente et sans effet de bord.
func (s *Store) Analytics() models.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := models.Analytics{TotalOrders: len(s.orders)}

	customers := map[string]bool{}
	for _, o := range s.orders {
		a.TotalRevenue += o.Total
		customers[o.CustomerID] = true
	}
	a.TotalCustomers = len(customers)
	if a.TotalOrders > 0 {
		a.AverageOrderValue = a.TotalRevenue / float64(a.TotalOrders)
	}

	// cumul des ventes par produit, ordre de première apparition conservé
	sales := map[string]*models.ProductSales{}
	var seen []string
	for _, o := range s.orders {
		for _, it := range o.Items {
			id := it.Product.ID
			entry, ok := sales[id]
			if !ok {
				entry = &models.ProductSales{Product: it.Product}
				sales[id] = entry
				seen = append(seen, id)
			}
			entry.Quantity += it.Quantity
			entry.Revenue += it.Product.Price * float64(it.Quantity)
		}
	}

	top := make([]models.ProductSales, 0, len(seen))
	for _, id := range seen {
		top = append(top, *sales[id])
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Quantity > top[j].Quantity })
	if len(top) > 5 {
		top = top[:5]
	}
	a.TopSellingProducts = top

	// performance par catégorie, les catégories sans vente sont exclues
	for _, c := range s.categories {
		perf := models.CategoryPerformance{Category: c.Name}
		for _, o := range s.orders {
			for _, it := range o.Items {
				if it.Product.Category == c.Name {
					perf.Sales += it.Quantity
					perf.Revenue += it.Product.Price * float64(it.Quantity)
				}
			}
		}
		if perf.Sales > 0 {
			a.CategoryPerformance = append(a.CategoryPerformance, perf)
		}
	}

	return a
}
