package entity

import "github.com/shopspring/decimal"

// ── Pasos del asistente de cotización ─────────────────────────────────────────

// QuoteStep paso del asistente de cotización. Conjunto cerrado con tabla de
// transiciones explícita: un paso fuera de rango o saltado no puede fijarse.
type QuoteStep string

const (
	QuoteStepService QuoteStep = "service" // elegir tipo de trabajo (tarjetas, pendones, volantes...)
	QuoteStepDetails QuoteStep = "details" // cuestionario del trabajo (tamaño, papel, tintas...)
	QuoteStepArtwork QuoteStep = "artwork" // carga de archivos de arte
	QuoteStepTier    QuoteStep = "tier"    // nivel de precio
	QuoteStepReview  QuoteStep = "review"  // resumen y envío
)

// quoteStepOrder posición de cada paso dentro del flujo lineal.
var quoteStepOrder = map[QuoteStep]int{
	QuoteStepService: 0,
	QuoteStepDetails: 1,
	QuoteStepArtwork: 2,
	QuoteStepTier:    3,
	QuoteStepReview:  4,
}

// CanTransitionQuoteStep informa si el asistente puede pasar de `from` a `to`.
// Permitido: quedarse en el paso, avanzar exactamente uno, o retroceder a
// cualquier paso anterior (el usuario puede volver a revisar lo ya completado).
func CanTransitionQuoteStep(from, to QuoteStep) bool {
	fi, okFrom := quoteStepOrder[from]
	ti, okTo := quoteStepOrder[to]
	if !okFrom || !okTo {
		return false
	}
	return ti <= fi || ti == fi+1
}

// ── Archivos de arte ──────────────────────────────────────────────────────────

// FileStatus estado de carga de un archivo de arte.
type FileStatus string

const (
	FileStatusPending   FileStatus = "pending"
	FileStatusUploading FileStatus = "uploading"
	FileStatusCompleted FileStatus = "completed"
	FileStatusFailed    FileStatus = "failed"
)

// fileTransitions transiciones válidas de la máquina de estados de carga:
// pending → uploading → {completed | failed}. failed puede reintentar (→ uploading).
var fileTransitions = map[FileStatus][]FileStatus{
	FileStatusPending:   {FileStatusUploading},
	FileStatusUploading: {FileStatusCompleted, FileStatusFailed},
	FileStatusFailed:    {FileStatusUploading},
	FileStatusCompleted: {},
}

// CanTransitionFileStatus informa si el cambio de estado de carga es válido.
func CanTransitionFileStatus(from, to FileStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range fileTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// QuoteFile descriptor de un archivo de arte subido (o en proceso de subida).
type QuoteFile struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	SizeB    int64      `json:"size_b"`
	MimeType string     `json:"mime_type"`
	Status   FileStatus `json:"status"`
	Progress int        `json:"progress"` // 0–100
	RemoteID string     `json:"remote_id,omitempty"`
	ErrorMsg string     `json:"error_msg,omitempty"`
}

// ── Nivel de precio y estimado ────────────────────────────────────────────────

// Niveles de precio ofrecidos en el paso "tier".
const (
	TierEconomy  = "economy"
	TierStandard = "standard"
	TierRush     = "rush"
)

// EstimateRange rango estimado de precio calculado por el builder.
type EstimateRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// IsZero informa si el rango no ha sido calculado.
func (r EstimateRange) IsZero() bool {
	return r.Min.IsZero() && r.Max.IsZero()
}

// ── Estado de trabajo del asistente ───────────────────────────────────────────

// QuoteBuilderState datos de trabajo del asistente de cotización. Se construye
// incrementalmente paso a paso, puede guardarse como borrador (sobrevive un
// reload vía persistencia local) y vuelve a su valor cero al enviar o cancelar.
type QuoteBuilderState struct {
	Step       QuoteStep         `json:"step"`
	ServiceID  string            `json:"service_id"`
	Answers    map[string]string `json:"answers"`
	Files      []QuoteFile       `json:"files"`
	Tier       string            `json:"tier"`
	Estimate   EstimateRange     `json:"estimate"`
	DraftSaved bool              `json:"draft_saved"`
	DraftID    *string           `json:"draft_id,omitempty"`
}

// NewQuoteBuilderState devuelve el valor cero documentado del asistente.
// La recuperación de borradores depende de comparar contra este valor, así que
// Reset debe producir exactamente este mismo estado.
func NewQuoteBuilderState() QuoteBuilderState {
	return QuoteBuilderState{
		Step:    QuoteStepService,
		Answers: map[string]string{},
		Files:   []QuoteFile{},
	}
}

// Clone copia profunda (answers, files y draft id no comparten memoria).
func (q QuoteBuilderState) Clone() QuoteBuilderState {
	cp := q
	cp.Answers = make(map[string]string, len(q.Answers))
	for k, v := range q.Answers {
		cp.Answers[k] = v
	}
	cp.Files = make([]QuoteFile, len(q.Files))
	copy(cp.Files, q.Files)
	if q.DraftID != nil {
		id := *q.DraftID
		cp.DraftID = &id
	}
	return cp
}
