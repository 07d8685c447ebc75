// Package charts adapta series numéricas del backend a la configuración que
// consumen los gráficos del panel (pastel, líneas, radar).
package charts

import (
	"fmt"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// Dataset una serie de un gráfico.
type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	Fill  bool      `json:"fill"`
	Color string    `json:"borderColor,omitempty"`
}

// Chart etiquetas del eje y series.
type Chart struct {
	Kind     string    `json:"type"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

const (
	colorNoConformes = "rgba(255, 99, 132, 1)"
	colorSalidas     = "rgba(54, 162, 235, 1)"
	colorProcesos    = "rgba(255, 159, 64, 1)"
	colorHoy         = "rgb(75, 192, 192)"
	colorAyer        = "rgb(255, 99, 132)"
)

// Pie gráfico de pastel; labels y values deben tener el mismo largo.
func Pie(labels []string, values []float64) Chart {
	return Chart{
		Kind:     "pie",
		Labels:   append([]string{}, labels...),
		Datasets: []Dataset{{Label: "Total", Data: append([]float64{}, values...)}},
	}
}

// ConformityPie pastel Conformes / No Conformes.
func ConformityPie(c entity.Conformity) Chart {
	return Pie([]string{"Conformes", "No Conformes"}, []float64{float64(c.Conformes), float64(c.NoConformes)})
}

// StageLine estado general por etapa: etiqueta "Etapa N", series No Conformes
// y Salidas (conformes).
func StageLine(stages []entity.StageConformity) Chart {
	labels := make([]string, len(stages))
	noConf := make([]float64, len(stages))
	salidas := make([]float64, len(stages))
	for i, s := range stages {
		labels[i] = fmt.Sprintf("Etapa %d", s.NumEtapa)
		noConf[i] = float64(s.NoConformes)
		salidas[i] = float64(s.Conformes)
	}
	return Chart{
		Kind:   "line",
		Labels: labels,
		Datasets: []Dataset{
			{Label: "No Conformes", Data: noConf, Color: colorNoConformes},
			{Label: "Salidas", Data: salidas, Color: colorSalidas},
		},
	}
}
