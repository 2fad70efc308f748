package store

import (
	"fmt"
	"time"

	"freshmart_back_end/internal/models"
)

// TaxRate est la taxe fixe appliquée au sous-total à la création
// de la commande, jamais recalculée ensuite.
const TaxRate = 0.05

// Créneaux de retrait proposés au checkout
var slotOffsets = map[string]time.Duration{
	"30 minutes": 30 * time.Minute,
	"1 hour":     time.Hour,
	"1.5 hours":  90 * time.Minute,
	"2 hours":    2 * time.Hour,
}

// PickupSlots renvoie les libellés de créneaux acceptés par Checkout.
func PickupSlots() []string {
	return []string{"30 minutes", "1 hour", "1.5 hours", "2 hours"}
}

var statusRank = map[models.OrderStatus]int{
	models.StatusPending:   0,
	models.StatusPreparing: 1,
	models.StatusReady:     2,
	models.StatusCompleted: 3,
}

type CheckoutInput struct {
	CustomerID    string
	CustomerName  string
	TimeSlot      string
	PaymentMethod models.PaymentMethod
	Notes         string
}

// Checkout transforme le panier du client en commande : instantané des
// lignes, total TTC figé, créneau de retrait converti en heure promise.
// Le panier est vidé dans la même section critique.
func (s *Store) Checkout(in CheckoutInput) (models.Order, error) {
	offset, ok := slotOffsets[in.TimeSlot]
	if !ok {
		return models.Order{}, fmt.Errorf("%w: %q", ErrUnknownTimeSlot, in.TimeSlot)
	}
	if !in.PaymentMethod.Valid() {
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidPayment, in.PaymentMethod)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[in.CustomerID]
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Product.Price * float64(it.Quantity)
	}

	now := s.now()
	order := models.Order{
		ID:               "ORDER-" + s.nextID(),
		CustomerID:       in.CustomerID,
		CustomerName:     in.CustomerName,
		Items:            append([]models.CartItem(nil), items...),
		Total:            subtotal + subtotal*TaxRate,
		Status:           models.StatusPending,
		Timestamp:        now,
		PickupTime:       now.Add(offset),
		SelectedTimeSlot: in.TimeSlot,
		PaymentMethod:    in.PaymentMethod,
		Notes:            in.Notes,
	}

	s.orders = append(s.orders, order)
	delete(s.carts, in.CustomerID)

	s.notify(models.AdminChannel, "Nouvelle commande",
		fmt.Sprintf("Commande %s de %s — %.2f€", order.ID, order.CustomerName, order.Total),
		models.NotifInfo)
	s.notify(order.CustomerID, "Commande confirmée",
		fmt.Sprintf("Votre commande %s a bien été enregistrée. Retrait dans %s.", order.ID, order.SelectedTimeSlot),
		models.NotifSuccess)

	return order, nil
}

// UpdateOrderStatus fait avancer la commande dans le cycle
// pending → preparing → ready → completed. Tout retour en arrière est
// refusé ; cancelled reste atteignable depuis n'importe quel état
// non terminal.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: statut inconnu %q", ErrInvalidStatusChange, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findOrder(orderID)
	if i < 0 {
		return ErrOrderNotFound
	}

	current := s.orders[i].Status
	if current.IsTerminal() {
		return fmt.Errorf("%w: la commande est déjà %s", ErrInvalidStatusChange, current)
	}
	if status != models.StatusCancelled && statusRank[status] <= statusRank[current] {
		return fmt.Errorf("%w: %s → %s", ErrInvalidStatusChange, current, status)
	}

	s.orders[i].Status = status

	message, kind := statusMessage(status)
	s.notify(s.orders[i].CustomerID, "Statut de commande mis à jour",
		fmt.Sprintf("Commande %s : %s", orderID, message), kind)
	return nil
}

func (s *Store) OrdersByStatus(status models.OrderStatus) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *Store) OrderByID(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findOrder(id)
	if i < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	return s.orders[i], nil
}

func (s *Store) OrdersForCustomer(customerID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) findOrder(id string) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func statusMessage(status models.OrderStatus) (string, models.NotificationType) {
	switch status {
	case models.StatusPreparing:
		return "votre commande est en préparation", models.NotifInfo
	case models.StatusReady:
		return "votre commande est prête, venez la récupérer !", models.NotifSuccess
	case models.StatusCompleted:
		return "merci pour votre commande !", models.NotifInfo
	case models.StatusCancelled:
		return "votre commande a été annulée", models.NotifInfo
	default:
		return "le statut de votre commande a été mis à jour", models.NotifInfo
	}
}
