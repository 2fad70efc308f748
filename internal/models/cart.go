package models

// CartItem garde un instantané complet du produit : un changement de prix
// au catalogue ne modifie pas une ligne déjà ajoutée au panier
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart est la vue renvoyée au front : lignes + totaux dérivés
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}
