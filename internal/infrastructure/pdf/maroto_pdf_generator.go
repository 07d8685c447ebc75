// Package pdf genera el resumen del tablero en PDF y valida los PDF que
// devuelve el backend.
//
// Layout de la página A4 del resumen:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Panel ACIB + fecha de generación    │  QR al panel │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONFORMIDAD: conformes / no conformes / % conformes         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Etapa | No Conformes | Salidas                       │
//	│  TABLA: Proceso | Entradas | Salidas | % Ent. | % Sal.       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÉXITO: procesos con menor y mayor éxito promedio            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/panel-acib/internal/application/charts"
	"github.com/jhoicas/panel-acib/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// SummaryGenerator implementa usecase.SummaryRenderer usando Maroto v2.
type SummaryGenerator struct {
	panelURL string
}

// NewSummaryGenerator construye el generador. Con panelURL vacío el resumen
// no lleva código QR.
func NewSummaryGenerator(panelURL string) *SummaryGenerator {
	return &SummaryGenerator{panelURL: panelURL}
}

// RenderDashboard genera el PDF y devuelve sus bytes.
func (g *SummaryGenerator) RenderDashboard(ctx context.Context, d *dto.DashboardDTO, generatedAt time.Time) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("pdf: tablero vacío")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen del panel de procesos", true).
		WithCreationDate(generatedAt).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(conformityRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("ESTADO GENERAL POR ETAPA"))
	m.AddRows(tableHeaderRow([]string{"Etapa", "No Conformes", "Salidas"}, []int{4, 4, 4}))
	m.AddRows(stageRows(d.Etapas)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("ENTRADAS / SALIDAS POR PROCESO"))
	m.AddRows(tableHeaderRow([]string{"Proceso", "Entradas", "Salidas", "% Ent.", "% Sal."}, []int{4, 2, 2, 2, 2}))
	m.AddRows(carbonRows(d.Carbon)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(successRows("PROCESOS CON MENOR ÉXITO", d.MenosExito, colorAlert)...)
	m.AddRows(successRows("PROCESOS CON MAYOR ÉXITO", d.MayorExito, colorPrimary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y fecha (izq), QR al panel (der).
func (g *SummaryGenerator) headerRow(at time.Time) core.Row {
	title := col.New(9).Add(
		text.New("Panel de procesos ACIB", props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
		text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
			Size: 9, Top: 9, Color: colorGray,
		}),
	)
	if g.panelURL == "" {
		return row.New(18).Add(title, col.New(3))
	}
	return row.New(24).Add(
		title,
		col.New(3).Add(code.NewQr(g.panelURL, props.Rect{Percent: 90, Center: true})),
	)
}

// conformityRow: totales y porcentaje de conformes.
func conformityRow(d *dto.DashboardDTO) core.Row {
	return row.New(14).Add(
		col.New(4).Add(
			text.New("Conformes", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(strconv.Itoa(d.TotalConformes), props.Text{Size: 11, Top: 6}),
		),
		col.New(4).Add(
			text.New("No Conformes", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorAlert, Top: 1}),
			text.New(strconv.Itoa(d.TotalNoConformes), props.Text{Size: 11, Top: 6}),
		),
		col.New(4).Add(
			text.New("% Conformes", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(d.PorcentajeConformes.StringFixed(2)+"%", props.Text{Size: 11, Align: align.Right, Top: 6}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols[i] = col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(cols...)
}

// stageRows: una fila por etapa a partir de las series del gráfico de líneas.
func stageRows(c charts.Chart) []core.Row {
	series := func(i, j int) string {
		if j >= len(c.Datasets) || i >= len(c.Datasets[j].Data) {
			return "0"
		}
		return formatNumber(c.Datasets[j].Data[i])
	}
	rows := make([]core.Row, 0, len(c.Labels))
	for i, label := range c.Labels {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(cell(label, align.Left)),
			col.New(4).Add(cell(series(i, 0), align.Right)),
			col.New(4).Add(cell(series(i, 1), align.Right)),
		))
	}
	return emptyTable(rows)
}

func carbonRows(items []dto.CarbonDTO) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(cell(it.Nombre, align.Left)),
			col.New(2).Add(cell(formatNumber(it.Barra.Inputs), align.Right)),
			col.New(2).Add(cell(formatNumber(it.Barra.Outputs), align.Right)),
			col.New(2).Add(cell(strconv.FormatFloat(it.Barra.InputPct, 'f', 1, 64), align.Right)),
			col.New(2).Add(cell(strconv.FormatFloat(it.Barra.OutputPct, 'f', 1, 64), align.Right)),
		))
	}
	return emptyTable(rows)
}

func successRows(title string, items []dto.SuccessDTO, color *props.Color) []core.Row {
	rows := []core.Row{row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: color, Top: 2}),
	))}
	for _, it := range items {
		rows = append(rows, row.New(5).Add(
			col.New(9).Add(cell(fmt.Sprintf("%d · %s", it.IDProceso, it.Nombre), align.Left)),
			col.New(3).Add(cell(it.ExitoPromedio.StringFixed(2)+"%", align.Right)),
		))
	}
	return emptyTable(rows)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cell(s string, a align.Type) core.Component {
	return text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1})
}

func emptyTable(rows []core.Row) []core.Row {
	if len(rows) > 0 {
		return rows
	}
	return []core.Row{row.New(5).Add(col.New(12).Add(
		text.New("Sin datos", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))}
}

// formatNumber sin decimales si el valor es entero.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
