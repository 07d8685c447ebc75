package charts

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

type radarAxis struct {
	label string
	pick  func(entity.DayFigures) float64
}

var radarAxes = []radarAxis{
	{"Indicadores", func(d entity.DayFigures) float64 { return d.Indicadores }},
	{"Procesos", func(d entity.DayFigures) float64 { return d.Procesos }},
	{"Entradas/Salidas", func(d entity.DayFigures) float64 { return d.EntradasSalidas }},
	{"Procesos Ejecutados", func(d entity.DayFigures) float64 { return d.ProcesosEjecutados }},
	{"Producción", func(d entity.DayFigures) float64 { return d.Produccion }},
	{"No Conformes", func(d entity.DayFigures) float64 { return d.NoConformes }},
}

// Radar compara hoy contra ayer. Cada eje se normaliza con el máximo de los
// dos días: valor/máx*100, y 0 cuando el máximo es 0.
func Radar(s entity.DailySummary) Chart {
	labels := make([]string, len(radarAxes))
	hoy := make([]float64, len(radarAxes))
	ayer := make([]float64, len(radarAxes))
	for i, ax := range radarAxes {
		h, a := ax.pick(s.Hoy), ax.pick(s.Ayer)
		maxV := max(h, a)
		labels[i] = fmt.Sprintf("%s (Máx: %s)", ax.label, strconv.FormatFloat(maxV, 'f', -1, 64))
		hoy[i] = normalize(h, maxV)
		ayer[i] = normalize(a, maxV)
	}
	return Chart{
		Kind:   "radar",
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Hoy", Data: hoy, Fill: true, Color: colorHoy},
			{Label: "Ayer", Data: ayer, Fill: true, Color: colorAyer},
		},
	}
}

func normalize(v, maxV float64) float64 {
	if maxV == 0 {
		return 0
	}
	return v / maxV * 100
}
