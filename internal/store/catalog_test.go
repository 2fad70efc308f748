package store

import (
	"testing"
	"time"

	"freshmart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder capture les notifications émises par le magasin
type recorder struct {
	events []recordedEvent
}

type recordedEvent struct {
	UserID  string
	Title   string
	Message string
	Kind    models.NotificationType
}

func (r *recorder) Notify(userID, title, message string, kind models.NotificationType) {
	r.events = append(r.events, recordedEvent{userID, title, message, kind})
}

func (r *recorder) titles(userID string) []string {
	var out []string
	for _, e := range r.events {
		if e.UserID == userID {
			out = append(out, e.Title)
		}
	}
	return out
}

func newTestStore(t *testing.T) (*Store, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := New(rec)
	// horloge pilotée par les tests, incrémentée pour que nextID reste croissant
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s, rec
}

func freshProduct() models.Product {
	return models.Product{
		Name:     "Mangue Alphonso",
		Price:    250,
		Category: "Fruits & Vegetables",
		Brand:    "Orchard Fresh",
		Stock:    40,
		InStock:  true,
		Rating:   4.8,
		Reviews:  12,
		Tags:     []string{"mangue", "fruit"},
	}
}

func TestAddProductAssignsFreshID(t *testing.T) {
	s, rec := newTestStore(t)

	created, err := s.AddProduct(freshProduct())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := s.ProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mangue Alphonso", got.Name)

	assert.Contains(t, rec.titles(models.AdminChannel), "Produit ajouté")
}

func TestAddProductRejectsUnknownCategory(t *testing.T) {
	s, _ := newTestStore(t)

	p := freshProduct()
	p.Category = "Électronique"
	_, err := s.AddProduct(p)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestAddProductValidation(t *testing.T) {
	s, _ := newTestStore(t)

	cases := []struct {
		name   string
		mutate func(*models.Product)
	}{
		{"nom vide", func(p *models.Product) { p.Name = "" }},
		{"prix négatif", func(p *models.Product) { p.Price = -1 }},
		{"stock négatif", func(p *models.Product) { p.Stock = -5 }},
		{"note trop haute", func(p *models.Product) { p.Rating = 5.5 }},
		{"avis négatifs", func(p *models.Product) { p.Reviews = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := freshProduct()
			tc.mutate(&p)
			_, err := s.AddProduct(p)
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestUpdateProductMergesOnlyProvidedFields(t *testing.T) {
	s, _ := newTestStore(t)

	price := 99.0
	stock := 8
	err := s.UpdateProduct("1", models.ProductPatch{Price: &price, Stock: &stock})
	require.NoError(t, err)

	p, err := s.ProductByID("1")
	require.NoError(t, err)
	assert.Equal(t, 99.0, p.Price)
	assert.Equal(t, 8, p.Stock)
	// les champs absents du patch ne bougent pas
	assert.Equal(t, "Fresh Bananas", p.Name)
	assert.Equal(t, "Fresh Farm", p.Brand)
}

func TestUpdateProductUnknownID(t *testing.T) {
	s, _ := newTestStore(t)

	name := "Inconnu"
	err := s.UpdateProduct("does-not-exist", models.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProductRejectsInvalidMerge(t *testing.T) {
	s, _ := newTestStore(t)

	bad := -10.0
	err := s.UpdateProduct("1", models.ProductPatch{Price: &bad})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	// le produit d'origine reste intact
	p, _ := s.ProductByID("1")
	assert.Equal(t, 89.0, p.Price)
}

func TestDeleteProductKeepsCartSnapshots(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.ProductByID("1")
	require.NoError(t, err)
	require.NoError(t, s.AddToCart("user-1", p, 2))

	require.NoError(t, s.DeleteProduct("1"))

	_, err = s.ProductByID("1")
	assert.ErrorIs(t, err, ErrProductNotFound)

	cart := s.Cart("user-1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Fresh Bananas", cart.Items[0].Product.Name)
}

func TestBulkUpdateSkipsPatchesWithoutID(t *testing.T) {
	s, rec := newTestStore(t)

	price := 100.0
	processed := s.BulkUpdateProducts([]models.ProductPatch{
		{ID: "1", Price: &price},
		{Price: &price}, // pas d'id, ignoré
		{ID: "2", Price: &price},
	})
	assert.Equal(t, 2, processed)

	p, _ := s.ProductByID("1")
	assert.Equal(t, 100.0, p.Price)

	assert.Contains(t, rec.titles(models.AdminChannel), "Mise à jour groupée terminée")
}

func TestLowStockThreshold(t *testing.T) {
	s, _ := newTestStore(t)

	at := 10
	above := 11
	require.NoError(t, s.UpdateProduct("1", models.ProductPatch{Stock: &at}))
	require.NoError(t, s.UpdateProduct("2", models.ProductPatch{Stock: &above}))

	low := s.LowStockProducts()
	ids := make([]string, 0, len(low))
	for _, p := range low {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "1")
	assert.NotContains(t, ids, "2")
}

func TestStockAlertFiresAtFiveWhileInStock(t *testing.T) {
	s, rec := newTestStore(t)

	five := 5
	require.NoError(t, s.UpdateProduct("1", models.ProductPatch{Stock: &five}))
	assert.Contains(t, rec.titles(models.AdminChannel), "Alerte stock faible")

	// épuisé et marqué hors stock : plus d'alerte
	rec.events = nil
	zero := 0
	out := false
	require.NoError(t, s.UpdateProduct("2", models.ProductPatch{Stock: &zero, InStock: &out}))
	assert.NotContains(t, rec.titles(models.AdminChannel), "Alerte stock faible")
}

func TestCategoriesCountsAreDerived(t *testing.T) {
	s, _ := newTestStore(t)

	counts := map[string]int{}
	for _, c := range s.Categories() {
		counts[c.Name] = c.ProductCount
	}
	assert.Equal(t, 3, counts["Fruits & Vegetables"])

	require.NoError(t, s.DeleteProduct("1"))
	for _, c := range s.Categories() {
		if c.Name == "Fruits & Vegetables" {
			assert.Equal(t, 2, c.ProductCount)
		}
	}

	// un changement de catégorie déplace le compte
	snacks := "Snacks"
	require.NoError(t, s.UpdateProduct("2", models.ProductPatch{Category: &snacks}))
	counts = map[string]int{}
	for _, c := range s.Categories() {
		counts[c.Name] = c.ProductCount
	}
	assert.Equal(t, 1, counts["Fruits & Vegetables"])
	assert.Equal(t, 2, counts["Snacks"])
}
