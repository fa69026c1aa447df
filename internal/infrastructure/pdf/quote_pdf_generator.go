// Package pdf implementa la descarga en PDF del resumen de cotización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del taller  │  COTIZACIÓN + fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SERVICIO: tipo de trabajo + nivel de precio                │
//	│  TABLA: pregunta | respuesta del cuestionario               │
//	│  ARCHIVOS: artes cargados                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: rango estimado / impuesto / anticipo requerido    │
//	│  FOOTER: contacto + leyenda de validez                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appquote "github.com/tu-usuario/imprenta-pro/internal/application/quote"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSummaryGenerator implementa quote.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct{}

// NewMarotoSummaryGenerator construye el generador.
func NewMarotoSummaryGenerator() *MarotoSummaryGenerator { return &MarotoSummaryGenerator{} }

// GenerateSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(_ context.Context, s *appquote.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+s.ServiceID, true).
		WithAuthor(s.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(serviceRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Cuestionario
	if len(s.Lines) > 0 {
		m.AddRows(answersHeaderRow())
		for _, r := range answerRows(s.Lines) {
			m.AddRows(r)
		}
	}

	// Artes cargados
	if len(s.Files) > 0 {
		m.AddRows(filesRow(s.Files))
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(s))

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(s) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del taller (izq) y rótulo + fecha (der).
func headerRow(s *appquote.Summary) core.Row {
	fecha := s.GeneratedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(s.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(s.Address, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// serviceRow: tipo de trabajo y nivel de precio elegidos.
func serviceRow(s *appquote.Summary) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TRABAJO COTIZADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Servicio: %s   |   Nivel: %s",
				s.ServiceID, nonEmpty(tierLabel(s.Tier), "—"),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// answersHeaderRow: cabecera de la tabla del cuestionario.
func answersHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		}))
	}
	return row.New(8).Add(
		h("Detalle", 5),
		h("Especificación", 7),
	)
}

// answerRows: una fila por respuesta del cuestionario.
func answerRows(lines []appquote.SummaryLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(l.Question, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(7).Add(text.New(l.Answer, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return result
}

// filesRow: lista compacta de artes completados.
func filesRow(files []entity.QuoteFile) core.Row {
	names := ""
	for i, f := range files {
		if i > 0 {
			names += ", "
		}
		names += f.Name
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("ARCHIVOS DE ARTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(names, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// totalsRow: bloque de totales alineado a la derecha (rango min–max).
func totalsRow(s *appquote.Summary) core.Row {
	label := func(t string) core.Component {
		return text.New(t, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(t string) core.Component {
		return text.New(t, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(t string) core.Component {
		return text.New(t, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(t string) core.Component {
		return text.New(t, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	rango := fmt.Sprintf("$%s – $%s", s.Estimate.Min.StringFixed(0), s.Estimate.Max.StringFixed(0))
	impuesto := fmt.Sprintf("$%s – $%s", s.TaxMin.StringFixed(0), s.TaxMax.StringFixed(0))
	anticipo := fmt.Sprintf("$%s – $%s", s.DepositMin.StringFixed(0), s.DepositMax.StringFixed(0))

	return row.New(26).Add(
		col.New(2), // espacio izquierdo
		col.New(4).Add(
			label("Estimado:"),
			label("Impuesto:"),
			grandLabel("ANTICIPO REQUERIDO:"),
		),
		col.New(4).Add(
			value(rango),
			value(impuesto),
			grandValue(anticipo),
		),
		col.New(2), // espacio derecho
	)
}

// footerRows: contacto + leyenda de validez del estimado.
func footerRows(s *appquote.Summary) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CONTACTO DEL TALLER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(nonEmpty(s.Contact, "—"), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este documento es un estimado preliminar y no constituye una orden de trabajo. "+
				"El precio final se confirma al aprobar el arte y las cantidades.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func tierLabel(tier string) string {
	switch tier {
	case entity.TierEconomy:
		return "Económico"
	case entity.TierStandard:
		return "Estándar"
	case entity.TierRush:
		return "Urgente"
	default:
		return tier
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
