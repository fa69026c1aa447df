package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

func TestAddNotification_PrependYAutocompletado(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})

	s.AddNotification(entity.Notification{Category: entity.CategoryQuotes, Title: "primera"})
	s.AddNotification(entity.Notification{Category: entity.CategoryOrders, Title: "segunda"})

	st := s.Snapshot()
	require.Len(t, st.Notifications, 2)
	assert.Equal(t, "segunda", st.Notifications[0].Title, "la más reciente va primero")
	assert.Equal(t, "primera", st.Notifications[1].Title)
	assert.NotEmpty(t, st.Notifications[0].ID, "el ID faltante se genera")
	assert.False(t, st.Notifications[0].CreatedAt.IsZero(), "la fecha faltante se completa")
	assert.False(t, st.Notifications[0].IsRead)
}

// Los contadores se derivan de la lista; no existe acción que los fije aparte.
func TestUnreadCounts_DerivadosPorCategoria(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})

	s.AddNotification(entity.Notification{Category: entity.CategoryQuotes})
	s.AddNotification(entity.Notification{Category: entity.CategoryQuotes})
	s.AddNotification(entity.Notification{Category: entity.CategoryOrders})
	s.AddNotification(entity.Notification{Category: entity.CategoryMessages, IsRead: true})
	s.AddNotification(entity.Notification{Category: "desconocida"})

	c := s.Snapshot().UnreadCounts()
	assert.Equal(t, 2, c.Quotes)
	assert.Equal(t, 1, c.Orders)
	assert.Zero(t, c.Messages, "las ya leídas no cuentan")
	assert.Equal(t, 3, c.Total(), "las categorías desconocidas no suman a ningún contador")
}

func TestMarkNotificationRead(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})
	s.AddNotification(entity.Notification{ID: "n1", Category: entity.CategoryJobs})
	s.AddNotification(entity.Notification{ID: "n2", Category: entity.CategoryJobs})

	require.NoError(t, s.MarkNotificationRead("n1"))

	st := s.Snapshot()
	assert.Equal(t, 1, st.UnreadCounts().Jobs)
	for _, n := range st.Notifications {
		if n.ID == "n1" {
			assert.True(t, n.IsRead)
		}
	}
}

func TestMarkNotificationRead_IDInexistente(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})
	s.AddNotification(entity.Notification{ID: "n1", Category: entity.CategoryJobs})

	err := s.MarkNotificationRead("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Escenario del badge: tres no leídas, marcar todas, badge en cero.
func TestMarkAllNotificationsRead(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})
	s.AddNotification(entity.Notification{Category: entity.CategoryQuotes})
	s.AddNotification(entity.Notification{Category: entity.CategoryOrders})
	s.AddNotification(entity.Notification{Category: entity.CategoryMessages})
	require.Equal(t, 3, s.Snapshot().UnreadCounts().Total())

	s.MarkAllNotificationsRead()

	st := s.Snapshot()
	assert.Zero(t, st.UnreadCounts().Total())
	require.Len(t, st.Notifications, 3, "marcar leídas no borra la lista")
	for _, n := range st.Notifications {
		assert.True(t, n.IsRead)
	}
}

func TestSetNotifications_ReemplazaYEstampaRefresco(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})
	s.AddNotification(entity.Notification{Category: entity.CategoryQuotes, Title: "vieja"})

	antes := time.Now()
	s.SetNotifications([]entity.Notification{
		{ID: "srv-1", Category: entity.CategoryOrders, Title: "del servidor"},
	})

	st := s.Snapshot()
	require.Len(t, st.Notifications, 1)
	assert.Equal(t, "del servidor", st.Notifications[0].Title)
	require.NotNil(t, st.NotificationsRefreshedAt)
	assert.False(t, st.NotificationsRefreshedAt.Before(antes))
}

func TestClearNotifications(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})
	s.AddNotification(entity.Notification{Category: entity.CategoryQuotes})

	s.ClearNotifications()

	st := s.Snapshot()
	assert.Empty(t, st.Notifications)
	assert.Zero(t, st.UnreadCounts().Total())
}
