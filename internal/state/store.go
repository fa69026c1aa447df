// Package state implementa el contenedor de estado de la aplicación: un único
// objeto construido al arranque (nunca un global oculto) que posee la sesión,
// las notificaciones, los feature flags, las constantes de negocio y el estado
// de los asistentes de cotización y reserva.
//
// Convención de enlace con las vistas: cada consumidor se suscribe a la
// proyección MÍNIMA de estado que necesita (un selector); el contenedor solo
// lo notifica cuando esa proyección concreta cambia, no en cada transición.
// Las vistas reciben snapshots de solo lectura y mutan únicamente vía acciones.
package state

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
	"github.com/tu-usuario/imprenta-pro/pkg/logger"
)

// Session estado de autenticación. Invariante en todo estado alcanzable:
// IsAuthenticated == (User != nil && AuthToken != "").
type Session struct {
	User            *entity.User
	AuthToken       string
	IsAuthenticated bool
	IsLoading       bool
	ErrorMessage    *string
}

// State snapshot completo del contenedor. Los consumidores lo reciben por
// valor (copia profunda); nada de lo que contiene comparte memoria con el store.
type State struct {
	Session                  Session
	Notifications            []entity.Notification
	NotificationsRefreshedAt *time.Time
	FeatureFlags             entity.FeatureFlags
	SystemConfig             entity.SystemConfig
	QuoteBuilder             entity.QuoteBuilderState
	Booking                  entity.BookingState
}

// UnreadCounts contadores de no leídas, derivados siempre de la lista
// (la lista y los contadores no pueden divergir porque no hay dos fuentes).
func (st State) UnreadCounts() entity.UnreadCounts {
	return entity.CountUnread(st.Notifications)
}

// clone copia profunda del estado.
func (st State) clone() State {
	cp := st
	cp.Session.User = st.Session.User.Clone()
	if st.Session.ErrorMessage != nil {
		msg := *st.Session.ErrorMessage
		cp.Session.ErrorMessage = &msg
	}
	cp.Notifications = make([]entity.Notification, len(st.Notifications))
	copy(cp.Notifications, st.Notifications)
	if st.NotificationsRefreshedAt != nil {
		ts := *st.NotificationsRefreshedAt
		cp.NotificationsRefreshedAt = &ts
	}
	cp.QuoteBuilder = st.QuoteBuilder.Clone()
	cp.Booking = st.Booking.Clone()
	return cp
}

// bootState estado inicial: sin sesión, con IsLoading=true porque la sonda de
// token (InitializeSession) aún no corrió.
func bootState() State {
	return State{
		Session:      Session{IsLoading: true},
		FeatureFlags: entity.DefaultFeatureFlags(),
		SystemConfig: entity.DefaultSystemConfig(),
		QuoteBuilder: entity.NewQuoteBuilderState(),
		Booking:      entity.NewBookingState(),
	}
}

// Selector proyección de estado que interesa a un suscriptor.
type Selector func(State) any

// Listener callback de notificación; recibe el snapshot completo ya copiado.
type Listener func(State)

type subscription struct {
	sel  Selector
	fn   Listener
	last any
}

// Options dependencias del contenedor.
type Options struct {
	API        AuthAPI
	Config     ConfigAPI
	Slot       Slot   // nil = sin persistencia durable
	StorageKey string // vacío = DefaultStorageKey
	Logger     *logger.Logger
}

// DefaultStorageKey clave fija bajo la que se persiste la proyección de estado.
const DefaultStorageKey = "imprenta_state_v1"

// Store el contenedor de estado. Todas las mutaciones pasan por mutate, que
// las aplica de forma atómica desde el punto de vista de los suscriptores.
type Store struct {
	mu    sync.Mutex
	state State

	api       AuthAPI
	configAPI ConfigAPI
	slot      Slot
	slotKey   string
	log       *logger.Logger

	subs      map[int]*subscription
	nextSubID int

	// authGen crece con cada acción de red de la sesión; una respuesta solo
	// aplica si su generación sigue siendo la vigente (ver session.go).
	authGen uint64
}

// New construye el contenedor con su estado de arranque. No hidrata: llamar
// Hydrate antes de renderizar la primera vista.
func New(opts Options) *Store {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	key := opts.StorageKey
	if key == "" {
		key = DefaultStorageKey
	}
	return &Store{
		state:     bootState(),
		api:       opts.API,
		configAPI: opts.Config,
		slot:      opts.Slot,
		slotKey:   key,
		log:       log.Component("store"),
		subs:      map[int]*subscription{},
	}
}

// Snapshot devuelve una copia del estado actual.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registra un suscriptor sobre la proyección que devuelve sel.
// El callback corre solo cuando la proyección cambia (comparación profunda).
// Devuelve la función para darse de baja.
func (s *Store) Subscribe(sel Selector, fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = &subscription{sel: sel, fn: fn, last: sel(s.state.clone())}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// mutate aplica fn bajo el lock, recalcula las proyecciones suscritas y
// notifica fuera del lock solo a quienes les cambió la proyección. Después
// persiste la proyección whitelist (mejor esfuerzo).
func (s *Store) mutate(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state.clone()

	var toNotify []Listener
	for _, sub := range s.subs {
		proj := sub.sel(snapshot)
		if !reflect.DeepEqual(proj, sub.last) {
			sub.last = proj
			toNotify = append(toNotify, sub.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range toNotify {
		fn(snapshot)
	}

	s.persist(snapshot)
}

// persist serializa y guarda la proyección whitelist. Los fallos se registran
// y nunca llegan al que disparó la acción.
func (s *Store) persist(snapshot State) {
	if s.slot == nil {
		return
	}
	raw, err := marshalProjection(snapshot)
	if err != nil {
		s.log.Error().Err(err).Msg("serializar proyección de estado")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.slot.Save(ctx, s.slotKey, raw); err != nil {
		s.log.Warn().Err(err).Msg("persistir estado local")
	}
}
