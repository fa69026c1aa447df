package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/imprenta-pro/internal/state"
)

// SummaryPDFGenerator contrato del generador de PDF (lo implementa
// internal/infrastructure/pdf con Maroto).
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, s *Summary) ([]byte, error)
}

// ExportUseCase "descargar cotización": toma el snapshot del contenedor, arma
// el resumen y lo convierte a PDF.
type ExportUseCase struct {
	store     *state.Store
	generator SummaryPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(store *state.Store, generator SummaryPDFGenerator) *ExportUseCase {
	return &ExportUseCase{store: store, generator: generator}
}

// ExportPDF genera el PDF del resumen de la cotización en curso.
// Retorna (pdfBytes, filename, nil) o el error de validación/generación.
func (uc *ExportUseCase) ExportPDF(ctx context.Context) ([]byte, string, error) {
	snap := uc.store.Snapshot()

	summary, err := BuildSummary(snap.QuoteBuilder, snap.SystemConfig, time.Now())
	if err != nil {
		return nil, "", err
	}

	raw, err := uc.generator.GenerateSummaryPDF(ctx, summary)
	if err != nil {
		return nil, "", fmt.Errorf("exportar cotización: %w", err)
	}

	filename := fmt.Sprintf("cotizacion_%s_%s.pdf", summary.ServiceID, summary.GeneratedAt.Format("20060102"))
	return raw, filename, nil
}
