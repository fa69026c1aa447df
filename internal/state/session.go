package state

import (
	"context"

	"github.com/tu-usuario/imprenta-pro/internal/application/dto"
	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// ── Acciones de sesión ────────────────────────────────────────────────────────
//
// Las tres acciones con red (Login, Register, InitializeSession) llevan un
// número de generación: cada llamada invalida a las anteriores, así una
// respuesta vieja que resuelve tarde no pisa el estado escrito por una más
// nueva (ej. doble submit de login).

// beginAuthRequest marca la sesión como cargando y reserva una generación.
func (s *Store) beginAuthRequest() uint64 {
	var gen uint64
	s.mutate(func(st *State) {
		s.authGen++
		gen = s.authGen
		st.Session.IsLoading = true
		st.Session.ErrorMessage = nil
	})
	return gen
}

// isCurrentAuth informa si gen sigue siendo la generación vigente.
func (s *Store) isCurrentAuth(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.authGen
}

// Login autentica contra el backend. En éxito reemplaza la sesión completa de
// forma atómica; en fallo limpia la sesión, guarda el mensaje de error en el
// estado Y devuelve el error (doble reporte: la vista elige cómo mostrarlo).
// Sin reintentos: reenviar es decisión de quien llama.
func (s *Store) Login(ctx context.Context, email, password string) error {
	gen := s.beginAuthRequest()

	out, err := s.api.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.failAuth(gen, userMessage(err))
		return err
	}
	s.completeAuth(gen, out.User.ToEntity(), out.Token)
	return nil
}

// Register mismo contrato que Login contra el endpoint de registro, con
// campos de perfil opcionales.
func (s *Store) Register(ctx context.Context, in dto.RegisterRequest) error {
	gen := s.beginAuthRequest()

	out, err := s.api.Register(ctx, in)
	if err != nil {
		s.failAuth(gen, userMessage(err))
		return err
	}
	s.completeAuth(gen, out.User.ToEntity(), out.Token)
	return nil
}

// Logout avisa al servidor (mejor esfuerzo: el fallo se registra y se traga) y
// limpia sesión y notificaciones en UNA sola mutación, de modo que los
// suscriptores observan un único paso. Nunca devuelve error.
func (s *Store) Logout(ctx context.Context) {
	token := func() string {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.state.Session.AuthToken
	}()

	if token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("logout en servidor falló; se cierra sesión local igual")
		}
	}

	s.mutate(func(st *State) {
		s.authGen++ // invalida cualquier respuesta de login/initialize en vuelo
		st.Session = Session{}
		st.Notifications = []entity.Notification{}
		st.NotificationsRefreshedAt = nil
	})
}

// InitializeSession sonda de token al arranque, ejecutada una sola vez:
// unknown → validating → {authenticated | unauthenticated}.
//
// Sin token persistido: termina sin llamada de red, sesión no autenticada.
// Con token: GET /api/users/me; en éxito mezcla usuario + perfil y marca
// autenticado; ante CUALQUIER fallo (token vencido/ inválido/ red) degrada en
// silencio a no autenticado: un token viejo que no valida es estado normal de
// primer arranque, no un error para el usuario.
func (s *Store) InitializeSession(ctx context.Context) {
	token := func() string {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.state.Session.AuthToken
	}()

	if token == "" {
		s.mutate(func(st *State) {
			st.Session = Session{}
		})
		return
	}

	gen := s.beginAuthRequest()
	me, err := s.api.Me(ctx, token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token persistido rechazado; sesión limpia")
		s.clearAuthSilently(gen)
		return
	}
	s.completeAuth(gen, me.ToEntity(), token)
}

// completeAuth reemplazo atómico de la sesión completa en éxito.
func (s *Store) completeAuth(gen uint64, user *entity.User, token string) {
	s.mutate(func(st *State) {
		if gen != s.authGen {
			return // respuesta vieja: una llamada más nueva ya escribió
		}
		st.Session = Session{
			User:            user,
			AuthToken:       token,
			IsAuthenticated: true,
			IsLoading:       false,
		}
	})
}

// failAuth limpieza atómica en fallo de login/register, con mensaje visible.
func (s *Store) failAuth(gen uint64, msg string) {
	s.mutate(func(st *State) {
		if gen != s.authGen {
			return
		}
		st.Session = Session{ErrorMessage: &msg}
	})
}

// clearAuthSilently limpieza sin mensaje (sonda de token fallida).
func (s *Store) clearAuthSilently(gen uint64) {
	s.mutate(func(st *State) {
		if gen != s.authGen {
			return
		}
		st.Session = Session{}
	})
}

// UpdateProfile merge parcial y SOLO local sobre el usuario actual: quien
// llama ya persistió los cambios en el servidor y pasa los valores
// confirmados. Devuelve ErrNoSession si no hay usuario.
func (s *Store) UpdateProfile(userPatch dto.UserPatch, customer *dto.CustomerProfilePatch, staff *dto.StaffProfilePatch) error {
	var err error
	s.mutate(func(st *State) {
		if st.Session.User == nil {
			err = domain.ErrNoSession
			return
		}
		u := st.Session.User.Clone()
		if userPatch.Name != nil {
			u.Name = *userPatch.Name
		}
		if userPatch.Email != nil {
			u.Email = *userPatch.Email
		}
		if userPatch.Phone != nil {
			u.Phone = *userPatch.Phone
		}
		if customer != nil {
			if u.Customer == nil {
				u.Customer = &entity.CustomerProfile{}
			}
			if customer.CompanyName != nil {
				u.Customer.CompanyName = *customer.CompanyName
			}
			if customer.TaxID != nil {
				u.Customer.TaxID = *customer.TaxID
			}
			if customer.BillingAddress != nil {
				u.Customer.BillingAddress = *customer.BillingAddress
			}
			if customer.City != nil {
				u.Customer.City = *customer.City
			}
			if customer.PreferredContact != nil {
				u.Customer.PreferredContact = *customer.PreferredContact
			}
		}
		if staff != nil {
			if u.Staff == nil {
				u.Staff = &entity.StaffProfile{Permissions: map[string]bool{}}
			}
			if staff.Position != nil {
				u.Staff.Position = *staff.Position
			}
			if staff.Permissions != nil {
				perms := make(map[string]bool, len(staff.Permissions))
				for k, v := range staff.Permissions {
					perms[k] = v
				}
				u.Staff.Permissions = perms
			}
		}
		st.Session.User = u
	})
	return err
}

// ClearSessionError borra solo el mensaje de error de la sesión.
func (s *Store) ClearSessionError() {
	s.mutate(func(st *State) {
		st.Session.ErrorMessage = nil
	})
}
