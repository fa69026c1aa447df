package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// ── Acciones de notificaciones ────────────────────────────────────────────────
//
// Mutaciones puras y locales: esta rebanada nunca toca la red. Los contadores
// de no leídas NO se guardan: se derivan de la lista con State.UnreadCounts(),
// así no existe forma de que lista y contadores se desincronicen.

// SetNotifications reemplaza la lista completa respetando el orden que entrega
// quien llama (un fetch fresco ya viene ordenado por el servidor).
func (s *Store) SetNotifications(list []entity.Notification) {
	now := time.Now()
	s.mutate(func(st *State) {
		st.Notifications = make([]entity.Notification, len(list))
		copy(st.Notifications, list)
		st.NotificationsRefreshedAt = &now
	})
}

// AddNotification antepone una notificación (la lista va de más nueva a más
// vieja). Completa ID y CreatedAt si vienen vacíos.
func (s *Store) AddNotification(n entity.Notification) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	s.mutate(func(st *State) {
		st.Notifications = append([]entity.Notification{n}, st.Notifications...)
	})
}

// MarkNotificationRead marca una notificación como leída por ID.
func (s *Store) MarkNotificationRead(id string) error {
	err := domain.ErrNotFound
	s.mutate(func(st *State) {
		for i := range st.Notifications {
			if st.Notifications[i].ID == id {
				st.Notifications[i].IsRead = true
				err = nil
				return
			}
		}
	})
	return err
}

// MarkAllNotificationsRead marca todo como leído; los contadores quedan en
// cero por construcción (se derivan de la lista).
func (s *Store) MarkAllNotificationsRead() {
	s.mutate(func(st *State) {
		for i := range st.Notifications {
			st.Notifications[i].IsRead = true
		}
	})
}

// ClearNotifications vacía la lista y el timestamp de refresco.
func (s *Store) ClearNotifications() {
	s.mutate(func(st *State) {
		st.Notifications = []entity.Notification{}
		st.NotificationsRefreshedAt = nil
	})
}
