package state

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// ── Flujo de reserva ──────────────────────────────────────────────────────────
//
// Selecciones efímeras de sesión: esta rebanada queda fuera de la proyección
// persistida; cada flujo de reserva arranca limpio.

// SetBookingDate fija la fecha elegida.
func (s *Store) SetBookingDate(date time.Time) {
	s.mutate(func(st *State) {
		d := date
		st.Booking.Date = &d
	})
}

// SetBookingSlot fija la franja horaria elegida.
func (s *Store) SetBookingSlot(slot entity.TimeSlot) {
	s.mutate(func(st *State) {
		sl := slot
		st.Booking.Slot = &sl
	})
}

// SetEmergencyBooking marca (o desmarca) el trabajo como urgente. Al
// desmarcar, el recargo queda forzado a cero sin importar lo que venga en fee.
func (s *Store) SetEmergencyBooking(on bool, fee decimal.Decimal) {
	s.mutate(func(st *State) {
		st.Booking.IsEmergency = on
		if !on {
			st.Booking.EmergencyFee = decimal.Zero
			return
		}
		st.Booking.EmergencyFee = fee
	})
}

// GoToBookingStep mueve el flujo a un paso permitido.
func (s *Store) GoToBookingStep(step entity.BookingStep) error {
	var err error
	s.mutate(func(st *State) {
		if !entity.CanTransitionBookingStep(st.Booking.Step, step) {
			err = fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, st.Booking.Step, step)
			return
		}
		st.Booking.Step = step
	})
	return err
}

// ResetBooking vuelve el flujo de reserva a su valor cero.
func (s *Store) ResetBooking() {
	s.mutate(func(st *State) {
		st.Booking = entity.NewBookingState()
	})
}
