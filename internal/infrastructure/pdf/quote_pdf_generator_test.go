package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appquote "github.com/tu-usuario/imprenta-pro/internal/application/quote"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
	"github.com/tu-usuario/imprenta-pro/internal/infrastructure/pdf"
)

func resumenDePrueba(t *testing.T) *appquote.Summary {
	t.Helper()
	qb := entity.NewQuoteBuilderState()
	qb.ServiceID = "tarjetas-presentacion"
	qb.Tier = entity.TierRush
	qb.Answers = map[string]string{"papel": "opalina 240g", "cantidad": "1000"}
	qb.Files = []entity.QuoteFile{
		{ID: "f1", Name: "frente.pdf", Status: entity.FileStatusCompleted},
	}
	qb.Estimate = entity.EstimateRange{
		Min: decimal.NewFromInt(100000),
		Max: decimal.NewFromInt(150000),
	}
	sum, err := appquote.BuildSummary(qb, entity.DefaultSystemConfig(),
		time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return sum
}

func TestGenerateSummaryPDF_ProduceUnPDFValido(t *testing.T) {
	gen := pdf.NewMarotoSummaryGenerator()

	raw, err := gen.GenerateSummaryPDF(context.Background(), resumenDePrueba(t))
	require.NoError(t, err)

	require.NotEmpty(t, raw)
	assert.Greater(t, len(raw), 1000, "un A4 con tablas no puede pesar tan poco")
	assert.Equal(t, "%PDF", string(raw[:4]), "el archivo debe arrancar con la firma PDF")
}

// Un resumen mínimo (sin respuestas ni archivos) también debe renderizar.
func TestGenerateSummaryPDF_ResumenMinimo(t *testing.T) {
	qb := entity.NewQuoteBuilderState()
	qb.ServiceID = "volantes"
	qb.Estimate = entity.EstimateRange{Min: decimal.NewFromInt(5000), Max: decimal.NewFromInt(8000)}
	sum, err := appquote.BuildSummary(qb, entity.DefaultSystemConfig(), time.Now())
	require.NoError(t, err)

	gen := pdf.NewMarotoSummaryGenerator()
	raw, err := gen.GenerateSummaryPDF(context.Background(), sum)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(raw[:4]))
}
