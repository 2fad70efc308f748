package notify

import (
	"testing"
	"time"

	"freshmart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyAppendsToFeed(t *testing.T) {
	h := NewHub()

	h.Notify("user-1", "Commande confirmée", "Votre commande ORDER-1 a bien été enregistrée.", models.NotifSuccess)

	feed := h.ForUser("user-1")
	require.Len(t, feed, 1)
	assert.Equal(t, "Commande confirmée", feed[0].Title)
	assert.Equal(t, models.NotifSuccess, feed[0].Type)
	assert.NotEmpty(t, feed[0].ID)
	assert.False(t, feed[0].Timestamp.IsZero())
	assert.False(t, feed[0].Read)
}

func TestForUserNewestFirst(t *testing.T) {
	h := NewHub()

	h.Notify("user-1", "Première", "", models.NotifInfo)
	h.Notify("user-1", "Deuxième", "", models.NotifInfo)

	feed := h.ForUser("user-1")
	require.Len(t, feed, 2)
	assert.Equal(t, "Deuxième", feed[0].Title)
	assert.Equal(t, "Première", feed[1].Title)
}

func TestFeedsAreIsolatedPerUser(t *testing.T) {
	h := NewHub()

	h.Notify("user-1", "Pour user-1", "", models.NotifInfo)
	h.Notify(models.AdminChannel, "Pour l'admin", "", models.NotifWarning)

	assert.Len(t, h.ForUser("user-1"), 1)
	assert.Len(t, h.ForUser(models.AdminChannel), 1)
	assert.Empty(t, h.ForUser("user-2"))
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	h := NewHub()

	h.Notify("user-1", "A", "", models.NotifInfo)
	h.Notify("user-1", "B", "", models.NotifInfo)
	assert.Equal(t, 2, h.UnreadCount("user-1"))

	feed := h.ForUser("user-1")
	assert.True(t, h.MarkRead("user-1", feed[0].ID))
	assert.Equal(t, 1, h.UnreadCount("user-1"))

	// id d'un autre fil : refusé
	assert.False(t, h.MarkRead("user-2", feed[1].ID))

	h.MarkAllRead("user-1")
	assert.Zero(t, h.UnreadCount("user-1"))
}

func TestSubscribeReceivesRealTime(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("user-1")
	defer cancel()

	h.Notify("user-1", "Temps réel", "", models.NotifInfo)

	select {
	case n := <-ch:
		assert.Equal(t, "Temps réel", n.Title)
	case <-time.After(time.Second):
		t.Fatal("notification temps réel jamais reçue")
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("user-1")
	cancel()

	h.Notify("user-1", "Après cancel", "", models.NotifInfo)

	select {
	case <-ch:
		t.Fatal("le canal annulé ne devrait plus rien recevoir")
	default:
	}

	// le fil persistant reçoit quand même
	assert.Len(t, h.ForUser("user-1"), 1)
}

func TestSaturatedSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()

	_, cancel := h.Subscribe("user-1")
	defer cancel()

	// personne ne lit : on dépasse largement le buffer du canal
	for i := 0; i < 50; i++ {
		h.Notify("user-1", "Rafale", "", models.NotifInfo)
	}
	assert.Len(t, h.ForUser("user-1"), 50)
}
