package models

// Seuils de stock utilisés par le tableau de bord admin
const (
	LowStockThreshold   = 10 // produit classé "stock faible"
	StockAlertThreshold = 5  // déclenche une notification admin
)

type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	Category      string         `json:"category"`
	Brand         string         `json:"brand"`
	Image         string         `json:"image"`
	Stock         int            `json:"stock"`
	InStock       bool           `json:"inStock"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	Tags          []string       `json:"tags"`
	NutritionInfo *NutritionInfo `json:"nutritionInfo,omitempty"`
}

// IsLowStock est dérivé du stock courant, jamais stocké
func (p Product) IsLowStock() bool {
	return p.Stock <= LowStockThreshold
}

// ProductPatch décrit une mise à jour partielle : seuls les champs
// non-nil sont appliqués
type ProductPatch struct {
	ID            string         `json:"id,omitempty"`
	Name          *string        `json:"name,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Price         *float64       `json:"price,omitempty"`
	Category      *string        `json:"category,omitempty"`
	Brand         *string        `json:"brand,omitempty"`
	Image         *string        `json:"image,omitempty"`
	Stock         *int           `json:"stock,omitempty"`
	InStock       *bool          `json:"inStock,omitempty"`
	Rating        *float64       `json:"rating,omitempty"`
	Reviews       *int           `json:"reviews,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	NutritionInfo *NutritionInfo `json:"nutritionInfo,omitempty"`
}

// Apply fusionne le patch champ par champ sur le produit
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		p.Reviews = *patch.Reviews
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags
	}
	if patch.NutritionInfo != nil {
		p.NutritionInfo = patch.NutritionInfo
	}
}
