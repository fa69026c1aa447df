package state

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// ── Asistente de cotización ───────────────────────────────────────────────────
//
// El paso actual es una máquina de estados cerrada (entity.QuoteStep): no se
// puede fijar un paso fuera del flujo ni saltar hacia adelante más de uno.
// Los archivos de arte llevan su propia submáquina pending→uploading→{completed|failed}.

// GoToQuoteStep mueve el asistente a un paso permitido por la tabla de transiciones.
func (s *Store) GoToQuoteStep(step entity.QuoteStep) error {
	var err error
	s.mutate(func(st *State) {
		if !entity.CanTransitionQuoteStep(st.QuoteBuilder.Step, step) {
			err = fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, st.QuoteBuilder.Step, step)
			return
		}
		st.QuoteBuilder.Step = step
	})
	return err
}

// SelectQuoteService fija el tipo de trabajo a cotizar.
func (s *Store) SelectQuoteService(serviceID string) {
	s.mutate(func(st *State) {
		st.QuoteBuilder.ServiceID = serviceID
	})
}

// SetQuoteAnswer mezcla una sola respuesta del cuestionario.
func (s *Store) SetQuoteAnswer(key, value string) {
	s.mutate(func(st *State) {
		st.QuoteBuilder.Answers[key] = value
	})
}

// MergeQuoteAnswers mezcla varias respuestas de una vez.
func (s *Store) MergeQuoteAnswers(partial map[string]string) {
	s.mutate(func(st *State) {
		for k, v := range partial {
			st.QuoteBuilder.Answers[k] = v
		}
	})
}

// AddQuoteFile agrega un descriptor de archivo de arte. ID vacío recibe uuid;
// estado vacío arranca en pending.
func (s *Store) AddQuoteFile(f entity.QuoteFile) string {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.Status == "" {
		f.Status = entity.FileStatusPending
	}
	s.mutate(func(st *State) {
		st.QuoteBuilder.Files = append(st.QuoteBuilder.Files, f)
	})
	return f.ID
}

// RemoveQuoteFile elimina un archivo por ID.
func (s *Store) RemoveQuoteFile(id string) error {
	err := domain.ErrNotFound
	s.mutate(func(st *State) {
		for i := range st.QuoteBuilder.Files {
			if st.QuoteBuilder.Files[i].ID == id {
				st.QuoteBuilder.Files = append(st.QuoteBuilder.Files[:i], st.QuoteBuilder.Files[i+1:]...)
				err = nil
				return
			}
		}
	})
	return err
}

// QuoteFilePatch merge parcial de un archivo. Puntero nil = no tocar.
type QuoteFilePatch struct {
	Status   *entity.FileStatus
	Progress *int
	RemoteID *string
	ErrorMsg *string
}

// UpdateQuoteFile aplica un parche a un archivo por ID. Los cambios de estado
// se validan contra la submáquina de carga; el progreso se recorta a 0–100.
func (s *Store) UpdateQuoteFile(id string, patch QuoteFilePatch) error {
	err := domain.ErrNotFound
	s.mutate(func(st *State) {
		for i := range st.QuoteBuilder.Files {
			f := &st.QuoteBuilder.Files[i]
			if f.ID != id {
				continue
			}
			if patch.Status != nil && !entity.CanTransitionFileStatus(f.Status, *patch.Status) {
				err = fmt.Errorf("%w: archivo %s → %s", domain.ErrInvalidTransition, f.Status, *patch.Status)
				return
			}
			if patch.Status != nil {
				f.Status = *patch.Status
			}
			if patch.Progress != nil {
				p := *patch.Progress
				if p < 0 {
					p = 0
				}
				if p > 100 {
					p = 100
				}
				f.Progress = p
			}
			if patch.RemoteID != nil {
				f.RemoteID = *patch.RemoteID
			}
			if patch.ErrorMsg != nil {
				f.ErrorMsg = *patch.ErrorMsg
			}
			err = nil
			return
		}
	})
	return err
}

// SelectPricingTier fija el nivel de precio elegido.
func (s *Store) SelectPricingTier(tier string) {
	s.mutate(func(st *State) {
		st.QuoteBuilder.Tier = tier
	})
}

// SetEstimateRange guarda el rango estimado calculado.
func (s *Store) SetEstimateRange(min, max decimal.Decimal) {
	s.mutate(func(st *State) {
		st.QuoteBuilder.Estimate = entity.EstimateRange{Min: min, Max: max}
	})
}

// MarkQuoteDraftSaved conmuta la marca de borrador guardado.
func (s *Store) MarkQuoteDraftSaved(saved bool) {
	s.mutate(func(st *State) {
		st.QuoteBuilder.DraftSaved = saved
	})
}

// SetQuoteDraftID fija (o limpia con nil) el ID del borrador remoto.
func (s *Store) SetQuoteDraftID(id *string) {
	s.mutate(func(st *State) {
		if id == nil {
			st.QuoteBuilder.DraftID = nil
			return
		}
		v := *id
		st.QuoteBuilder.DraftID = &v
	})
}

// ResetQuoteBuilder vuelve al valor cero documentado. Debe ser idéntico al
// estado de arranque: la recuperación de borradores lo compara por diff.
func (s *Store) ResetQuoteBuilder() {
	s.mutate(func(st *State) {
		st.QuoteBuilder = entity.NewQuoteBuilderState()
	})
}

// QuoteDraft parcial de un borrador guardado previamente; los campos de punteros
// nil no tocan el estado actual.
type QuoteDraft struct {
	Step      *entity.QuoteStep
	ServiceID *string
	Answers   map[string]string
	Files     []entity.QuoteFile
	Tier      *string
	Estimate  *entity.EstimateRange
	DraftID   *string
}

// LoadQuoteDraft merge-restaura un borrador (ej. al volver a una cotización en
// curso). El paso se fija directamente, sin pasar por la tabla de transiciones:
// un borrador guardado ya estuvo en ese paso.
func (s *Store) LoadQuoteDraft(d QuoteDraft) {
	s.mutate(func(st *State) {
		if d.Step != nil {
			st.QuoteBuilder.Step = *d.Step
		}
		if d.ServiceID != nil {
			st.QuoteBuilder.ServiceID = *d.ServiceID
		}
		for k, v := range d.Answers {
			st.QuoteBuilder.Answers[k] = v
		}
		if d.Files != nil {
			st.QuoteBuilder.Files = make([]entity.QuoteFile, len(d.Files))
			copy(st.QuoteBuilder.Files, d.Files)
		}
		if d.Tier != nil {
			st.QuoteBuilder.Tier = *d.Tier
		}
		if d.Estimate != nil {
			st.QuoteBuilder.Estimate = *d.Estimate
		}
		if d.DraftID != nil {
			id := *d.DraftID
			st.QuoteBuilder.DraftID = &id
			st.QuoteBuilder.DraftSaved = true
		}
	})
}
