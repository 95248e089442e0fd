// Package pdf implementa la exportación en PDF del Reporte de Antigüedad de
// Cartera (aging report).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Título del reporte + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cliente | Factura | Vence | Días | Tramo | Monto     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES POR TRAMO: 0-30 / 31-60 / 61-90 / 90+               │
//	│  TOTAL PENDIENTE                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/collectfast-api/internal/application/dto"
	"github.com/jhoicas/collectfast-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// AgingReportPDFGenerator genera el PDF del aging report usando Maroto v2.
type AgingReportPDFGenerator struct{}

// NewAgingReportPDFGenerator construye el generador.
func NewAgingReportPDFGenerator() *AgingReportPDFGenerator { return &AgingReportPDFGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *AgingReportPDFGenerator) Generate(
	company *entity.Company,
	rows []entity.AgingReportRow,
	bucketTotals []dto.AgingBucketTotalDTO,
	asOf time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Aging Report", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, asOf))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(bucketTotals, company.Currency) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + fecha de corte (der).
func headerRow(company *entity.Company, asOf time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(company.Industry+"   |   "+company.Currency, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("AGING REPORT", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Corte: "+asOf.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de cartera pendiente.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cliente", 3, align.Left),
		h("Factura", 2, align.Left),
		h("Vence", 2, align.Center),
		h("Días mora", 1, align.Center),
		h("Tramo", 1, align.Center),
		h("Pendiente", 3, align.Right),
	)
}

// tableRows: una fila por línea del reporte.
func tableRows(rows []entity.AgingReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(
				r.CustomerName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				r.InvoiceNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				r.DueDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.DaysOverdue),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				r.AgingBucket,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+r.Outstanding.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: total pendiente por tramo + total general.
func totalsRows(bucketTotals []dto.AgingBucketTotalDTO, currency string) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("TOTALES POR TRAMO ("+currency+")", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}

	grand := decimal.Zero
	for _, bt := range bucketTotals {
		grand = grand.Add(bt.Outstanding)
		rows = append(rows, row.New(5).Add(
			col.New(6),
			col.New(3).Add(text.New(bt.Bucket+" días:", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2,
			})),
			col.New(3).Add(text.New("$"+bt.Outstanding.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Right: 1,
			})),
		))
	}

	rows = append(rows, row.New(8).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL PENDIENTE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})),
		col.New(3).Add(text.New("$"+grand.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})),
	))

	return rows
}
