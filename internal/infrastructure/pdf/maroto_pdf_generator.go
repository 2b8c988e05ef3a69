// Package pdf genera la representación imprimible del reporte de ventas por editorial.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Editorial + identificador  │  Fecha de emisión     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Título | Tienda | Precio | Fecha | Cant.            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: ventas / unidades / importe                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// DateLayout formato de fecha de las filas (dd-mm-yyyy).
const DateLayout = "02-01-2006"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.SalesReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.SalesReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// GenerateSalesReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSalesReportPDF(_ context.Context, rep *dto.SalesReportResponse) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas por editorial", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(rep.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep.Rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: editorial + criterio (izq) y fecha de emisión (der).
func headerRow(rep *dto.SalesReportResponse, issued time.Time) core.Row {
	publisher := "—"
	if rep.Publisher != nil {
		publisher = *rep.Publisher
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(publisher, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Identificador: %s (%s)", rep.Identifier, rep.MatchedBy), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+issued.Format(DateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Título", 4, align.Left),
		h("Tienda", 3, align.Left),
		h("Precio", 2, align.Right),
		h("Fecha", 2, align.Center),
		h("Cant.", 1, align.Center),
	)
}

// tableRows: una fila por venta, en el orden recibido.
func tableRows(rows []dto.SaleRowDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(r.Title, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.ShopName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Price, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(r.DateSale.Format(DateLayout), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Count), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// totalsRow: número de ventas, unidades e importe (precio × cantidad).
func totalsRow(rows []dto.SaleRowDTO) core.Row {
	units, amount := Totals(rows)
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(8).Add(
		col.New(6),
		col.New(3).Add(label(fmt.Sprintf("Ventas: %d  Unidades: %d", len(rows), units))),
		col.New(3).Add(value("Importe: "+amount.StringFixed(entity.PriceScale))),
	)
}

// Totals suma unidades e importe de las filas. Los precios inválidos cuentan como cero.
func Totals(rows []dto.SaleRowDTO) (int, decimal.Decimal) {
	units := 0
	amount := decimal.Zero
	for _, r := range rows {
		units += r.Count
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			continue
		}
		amount = amount.Add(price.Mul(decimal.NewFromInt(int64(r.Count))))
	}
	return units, amount
}
