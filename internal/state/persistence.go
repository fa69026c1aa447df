package state

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// ── Adaptador de persistencia ─────────────────────────────────────────────────
//
// Tras cada mutación se serializa una proyección whitelist del estado a la
// ranura durable: sesión sin loading/error, feature flags, constantes de
// negocio y el asistente de cotización (los borradores sobreviven un reload).
// La reserva y las notificaciones quedan fuera a propósito.

// persistedProjection forma en disco de la proyección whitelist.
type persistedProjection struct {
	User         *entity.User             `json:"user,omitempty"`
	AuthToken    string                   `json:"auth_token,omitempty"`
	FeatureFlags entity.FeatureFlags      `json:"feature_flags"`
	SystemConfig entity.SystemConfig      `json:"system_config"`
	QuoteBuilder entity.QuoteBuilderState `json:"quote_builder"`
}

// marshalProjection serializa la proyección whitelist de un snapshot.
func marshalProjection(st State) ([]byte, error) {
	return json.Marshal(persistedProjection{
		User:         st.Session.User,
		AuthToken:    st.Session.AuthToken,
		FeatureFlags: st.FeatureFlags,
		SystemConfig: st.SystemConfig,
		QuoteBuilder: st.QuoteBuilder,
	})
}

// Hydrate siembra el contenedor desde la ranura durable antes del primer
// render. Datos ausentes o corruptos degradan a los valores por defecto de
// arranque; este camino nunca devuelve error.
//
// La sesión rehidratada recalcula IsAuthenticated a partir de usuario+token
// (provisional hasta que InitializeSession confirme o limpie), con
// IsLoading=true y sin mensaje de error, vengan como vengan los bytes.
func (s *Store) Hydrate(ctx context.Context) {
	if s.slot == nil {
		return
	}
	raw, err := s.slot.Load(ctx, s.slotKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn().Err(err).Msg("leer estado persistido; se arranca con defaults")
		}
		return
	}

	var p persistedProjection
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Warn().Err(err).Msg("estado persistido corrupto; se arranca con defaults")
		return
	}

	// JSON deja mapas/slices en nil; el asistente garantiza no-nil.
	if p.QuoteBuilder.Answers == nil {
		p.QuoteBuilder.Answers = map[string]string{}
	}
	if p.QuoteBuilder.Files == nil {
		p.QuoteBuilder.Files = []entity.QuoteFile{}
	}
	if p.QuoteBuilder.Step == "" {
		p.QuoteBuilder.Step = entity.QuoteStepService
	}

	s.mutate(func(st *State) {
		st.Session = Session{
			User:            p.User,
			AuthToken:       p.AuthToken,
			IsAuthenticated: p.User != nil && p.AuthToken != "",
			IsLoading:       true,
			ErrorMessage:    nil,
		}
		st.FeatureFlags = p.FeatureFlags
		st.SystemConfig = p.SystemConfig
		st.QuoteBuilder = p.QuoteBuilder
		st.Booking = entity.NewBookingState()
		st.Notifications = nil
		st.NotificationsRefreshedAt = nil
	})
}
