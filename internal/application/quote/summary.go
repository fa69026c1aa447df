package quote

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// SummaryLine una respuesta del cuestionario lista para imprimir.
type SummaryLine struct {
	Question string
	Answer   string
}

// Summary representación imprimible de una cotización en curso: lo que el
// cliente descarga desde el paso de revisión.
type Summary struct {
	ServiceID   string
	Tier        string
	Lines       []SummaryLine
	Files       []entity.QuoteFile // solo los completados
	Estimate    entity.EstimateRange
	TaxMin      decimal.Decimal
	TaxMax      decimal.Decimal
	DepositMin  decimal.Decimal
	DepositMax  decimal.Decimal
	CompanyName string
	Contact     string
	Address     string
	GeneratedAt time.Time
}

// BuildSummary arma el resumen a partir del estado del asistente y las
// constantes de negocio. Exige servicio elegido y estimado calculado
// (domain.ErrInvalidInput en caso contrario); impuesto y anticipo se calculan
// con aritmética decimal sobre ambos extremos del rango.
func BuildSummary(qb entity.QuoteBuilderState, cfg entity.SystemConfig, now time.Time) (*Summary, error) {
	if qb.ServiceID == "" {
		return nil, fmt.Errorf("%w: la cotización no tiene servicio elegido", domain.ErrInvalidInput)
	}
	if qb.Estimate.IsZero() {
		return nil, fmt.Errorf("%w: la cotización no tiene estimado calculado", domain.ErrInvalidInput)
	}

	// Respuestas en orden estable (el mapa no tiene orden propio).
	keys := make([]string, 0, len(qb.Answers))
	for k := range qb.Answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]SummaryLine, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, SummaryLine{Question: k, Answer: qb.Answers[k]})
	}

	files := make([]entity.QuoteFile, 0, len(qb.Files))
	for _, f := range qb.Files {
		if f.Status == entity.FileStatusCompleted {
			files = append(files, f)
		}
	}

	return &Summary{
		ServiceID:   qb.ServiceID,
		Tier:        qb.Tier,
		Lines:       lines,
		Files:       files,
		Estimate:    qb.Estimate,
		TaxMin:      qb.Estimate.Min.Mul(cfg.TaxRate).Round(2),
		TaxMax:      qb.Estimate.Max.Mul(cfg.TaxRate).Round(2),
		DepositMin:  qb.Estimate.Min.Mul(cfg.DepositPercent).Round(2),
		DepositMax:  qb.Estimate.Max.Mul(cfg.DepositPercent).Round(2),
		CompanyName: cfg.CompanyName,
		Contact:     contactLine(cfg),
		Address:     cfg.Address,
		GeneratedAt: now,
	}, nil
}

func contactLine(cfg entity.SystemConfig) string {
	switch {
	case cfg.ContactEmail != "" && cfg.ContactPhone != "":
		return cfg.ContactEmail + "   |   " + cfg.ContactPhone
	case cfg.ContactEmail != "":
		return cfg.ContactEmail
	default:
		return cfg.ContactPhone
	}
}
