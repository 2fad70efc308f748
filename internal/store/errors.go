package store

import "errors"

var (
	ErrProductNotFound     = errors.New("produit introuvable")
	ErrOrderNotFound       = errors.New("commande introuvable")
	ErrUnknownCategory     = errors.New("catégorie inconnue")
	ErrInvalidProduct      = errors.New("données produit invalides")
	ErrInvalidQuantity     = errors.New("quantité invalide")
	ErrEmptyCart           = errors.New("le panier est vide")
	ErrUnknownTimeSlot     = errors.New("créneau de retrait inconnu")
	ErrInvalidPayment      = errors.New("méthode de paiement invalide")
	ErrInvalidStatusChange = errors.New("transition de statut invalide")
)
