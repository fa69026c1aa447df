package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStep paso del flujo de reserva de cita. Igual que el asistente de
// cotización: conjunto cerrado, transiciones explícitas.
type BookingStep string

const (
	BookingStepDate    BookingStep = "date"
	BookingStepSlot    BookingStep = "slot"
	BookingStepConfirm BookingStep = "confirm"
)

var bookingStepOrder = map[BookingStep]int{
	BookingStepDate:    0,
	BookingStepSlot:    1,
	BookingStepConfirm: 2,
}

// CanTransitionBookingStep mismo criterio que el asistente de cotización:
// mismo paso, avanzar uno, o retroceder a cualquiera anterior.
func CanTransitionBookingStep(from, to BookingStep) bool {
	fi, okFrom := bookingStepOrder[from]
	ti, okTo := bookingStepOrder[to]
	if !okFrom || !okTo {
		return false
	}
	return ti <= fi || ti == fi+1
}

// TimeSlot franja horaria ofrecida por el taller.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingState selecciones efímeras del flujo de reserva. Nunca se persiste:
// cada flujo de reserva arranca desde cero.
type BookingState struct {
	Date         *time.Time      `json:"date,omitempty"`
	Slot         *TimeSlot       `json:"slot,omitempty"`
	IsEmergency  bool            `json:"is_emergency"`
	EmergencyFee decimal.Decimal `json:"emergency_fee"`
	Step         BookingStep     `json:"step"`
}

// NewBookingState valor cero del flujo de reserva.
func NewBookingState() BookingState {
	return BookingState{Step: BookingStepDate}
}

// Clone copia profunda.
func (b BookingState) Clone() BookingState {
	cp := b
	if b.Date != nil {
		d := *b.Date
		cp.Date = &d
	}
	if b.Slot != nil {
		s := *b.Slot
		cp.Slot = &s
	}
	return cp
}
