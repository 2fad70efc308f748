package store

import (
	"strings"
	"testing"
	"time"

	"freshmart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutBananas(t *testing.T, s *Store, userID string, qty int) models.Order {
	t.Helper()
	p, err := s.ProductByID("1") // Fresh Bananas, 89
	require.NoError(t, err)
	require.NoError(t, s.AddToCart(userID, p, qty))

	order, err := s.Checkout(CheckoutInput{
		CustomerID:    userID,
		CustomerName:  "Claire Martin",
		TimeSlot:      "1 hour",
		PaymentMethod: models.PaymentCard,
	})
	require.NoError(t, err)
	return order
}

func TestCheckoutComputesTaxedTotal(t *testing.T) {
	s, _ := newTestStore(t)

	order := checkoutBananas(t, s, "user-1", 2)

	// 2 × 89 = 178, +5% de taxe = 186.90
	assert.InDelta(t, 186.90, order.Total, 1e-9)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.ID, "ORDER-"))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCheckoutEmptiesCart(t *testing.T) {
	s, _ := newTestStore(t)

	checkoutBananas(t, s, "user-1", 1)
	assert.Empty(t, s.Cart("user-1").Items)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Checkout(CheckoutInput{
		CustomerID:    "user-1",
		TimeSlot:      "1 hour",
		PaymentMethod: models.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutRejectsUnknownTimeSlot(t *testing.T) {
	s, _ := newTestStore(t)

	p, _ := s.ProductByID("1")
	require.NoError(t, s.AddToCart("user-1", p, 1))

	_, err := s.Checkout(CheckoutInput{
		CustomerID:    "user-1",
		TimeSlot:      "45 minutes",
		PaymentMethod: models.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)

	// le panier n'a pas été touché
	assert.Len(t, s.Cart("user-1").Items, 1)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	s, _ := newTestStore(t)

	p, _ := s.ProductByID("1")
	require.NoError(t, s.AddToCart("user-1", p, 1))

	_, err := s.Checkout(CheckoutInput{
		CustomerID:    "user-1",
		TimeSlot:      "1 hour",
		PaymentMethod: "chèque",
	})
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestCheckoutPickupTimeFollowsSlot(t *testing.T) {
	s, _ := newTestStore(t)

	p, _ := s.ProductByID("1")
	require.NoError(t, s.AddToCart("user-1", p, 1))

	order, err := s.Checkout(CheckoutInput{
		CustomerID:    "user-1",
		TimeSlot:      "1.5 hours",
		PaymentMethod: models.PaymentUPI,
	})
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, order.PickupTime.Sub(order.Timestamp))
	assert.Equal(t, "1.5 hours", order.SelectedTimeSlot)
}

func TestCheckoutOrderSnapshotSurvivesPriceChange(t *testing.T) {
	s, _ := newTestStore(t)

	order := checkoutBananas(t, s, "user-1", 2)

	newPrice := 999.0
	require.NoError(t, s.UpdateProduct("1", models.ProductPatch{Price: &newPrice}))

	got, err := s.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 89.0, got.Items[0].Product.Price)
	assert.InDelta(t, 186.90, got.Total, 1e-9)
}

func TestCheckoutNotifiesAdminAndCustomer(t *testing.T) {
	s, rec := newTestStore(t)

	checkoutBananas(t, s, "user-1", 1)

	assert.Contains(t, rec.titles(models.AdminChannel), "Nouvelle commande")
	assert.Contains(t, rec.titles("user-1"), "Commande confirmée")
}

func TestUpdateOrderStatusForwardSequence(t *testing.T) {
	s, _ := newTestStore(t)
	order := checkoutBananas(t, s, "user-1", 1)

	for _, next := range []models.OrderStatus{
		models.StatusPreparing,
		models.StatusReady,
		models.StatusCompleted,
	} {
		assert.Empty(t, s.OrdersByStatus(models.StatusCompleted))
		require.NoError(t, s.UpdateOrderStatus(order.ID, next))
		got, _ := s.OrderByID(order.ID)
		assert.Equal(t, next, got.Status)
	}
	assert.Len(t, s.OrdersByStatus(models.StatusCompleted), 1)
}

func TestUpdateOrderStatusRejectsRegression(t *testing.T) {
	s, _ := newTestStore(t)
	order := checkoutBananas(t, s, "user-1", 1)

	require.NoError(t, s.UpdateOrderStatus(order.ID, models.StatusReady))
	err := s.UpdateOrderStatus(order.ID, models.StatusPreparing)
	assert.ErrorIs(t, err, ErrInvalidStatusChange)

	got, _ := s.OrderByID(order.ID)
	assert.Equal(t, models.StatusReady, got.Status)
}

func TestUpdateOrderStatusTerminalIsFrozen(t *testing.T) {
	s, _ := newTestStore(t)
	order := checkoutBananas(t, s, "user-1", 1)

	require.NoError(t, s.UpdateOrderStatus(order.ID, models.StatusCancelled))
	err := s.UpdateOrderStatus(order.ID, models.StatusPreparing)
	assert.ErrorIs(t, err, ErrInvalidStatusChange)
}

func TestUpdateOrderStatusCancelFromAnyNonTerminal(t *testing.T) {
	s, _ := newTestStore(t)
	order := checkoutBananas(t, s, "user-1", 1)

	require.NoError(t, s.UpdateOrderStatus(order.ID, models.StatusPreparing))
	require.NoError(t, s.UpdateOrderStatus(order.ID, models.StatusCancelled))

	got, _ := s.OrderByID(order.ID)
	assert.Equal(t, models.StatusCancelled, got.Status)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.UpdateOrderStatus("ORDER-404", models.StatusPreparing)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrdersByStatusAndCustomer(t *testing.T) {
	s, _ := newTestStore(t)

	o1 := checkoutBananas(t, s, "user-1", 1)
	o2 := checkoutBananas(t, s, "user-2", 1)
	require.NoError(t, s.UpdateOrderStatus(o2.ID, models.StatusPreparing))

	pending := s.OrdersByStatus(models.StatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, o1.ID, pending[0].ID)

	mine := s.OrdersForCustomer("user-2")
	require.Len(t, mine, 1)
	assert.Equal(t, o2.ID, mine[0].ID)

	assert.Len(t, s.Orders(), 2)
}

func TestPickupSlotsAreStable(t *testing.T) {
	assert.Equal(t, []string{"30 minutes", "1 hour", "1.5 hours", "2 hours"}, PickupSlots())
}
