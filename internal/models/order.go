package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal : une commande terminée ou annulée ne bouge plus
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

type Order struct {
	ID               string        `json:"id"`
	CustomerID       string        `json:"customerId"`
	CustomerName     string        `json:"customerName"`
	Items            []CartItem    `json:"items"`
	Total            float64       `json:"total"`
	Status           OrderStatus   `json:"status"`
	Timestamp        time.Time     `json:"timestamp"`
	PickupTime       time.Time     `json:"pickupTime"`
	SelectedTimeSlot string        `json:"selectedTimeSlot,omitempty"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	Notes            string        `json:"notes,omitempty"`
}
