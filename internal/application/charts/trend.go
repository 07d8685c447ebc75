package charts

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// Timeframe ventana del gráfico de tendencia.
type Timeframe string

const (
	Week  Timeframe = "week"
	Month Timeframe = "month"
	Year  Timeframe = "year"
)

// ParseTimeframe valida la ventana; vacío equivale a Week.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case "":
		return Week, nil
	case Week, Month, Year:
		return Timeframe(s), nil
	}
	return "", fmt.Errorf("ventana %q: %w", s, domain.ErrInvalidInput)
}

var (
	diasSemana = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	meses      = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
)

// creadoLayouts formatos de fecha que usa el backend en "creado".
var creadoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseCreado interpreta la fecha "creado" en la zona loc cuando no trae zona.
func ParseCreado(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range creadoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha %q: %w", s, domain.ErrInvalidInput)
}

// Trend agrupa las ejecuciones por día o mes y arma las series No Conformes,
// Salidas y Procesos (cantidad de ejecuciones).
//
//   - Week: 7 puntos, hoy..D-6, con etiqueta "Jueves 10".
//   - Month: 30 puntos, D-1..D-30 (D-1 es hoy).
//   - Year: 12 puntos, Ene..Dic del año de now.
//
// Las ejecuciones fuera de la ventana o con fecha ilegible se ignoran.
func Trend(execs []entity.ExecutedProcess, tf Timeframe, now time.Time) Chart {
	var labels []string
	switch tf {
	case Month:
		labels = make([]string, 30)
		for i := range labels {
			labels[i] = "D-" + strconv.Itoa(i+1)
		}
	case Year:
		labels = meses[:]
	default:
		// un Caser no se comparte entre goroutines
		title := cases.Title(language.Spanish)
		labels = make([]string, 7)
		for i := range labels {
			d := now.AddDate(0, 0, -i)
			labels[i] = title.String(diasSemana[d.Weekday()]) + " " + strconv.Itoa(d.Day())
		}
	}

	noConf := make([]float64, len(labels))
	salidas := make([]float64, len(labels))
	procesos := make([]float64, len(labels))
	today := truncateDay(now)
	for _, ex := range execs {
		at, err := ParseCreado(ex.Creado, now.Location())
		if err != nil {
			continue
		}
		idx := -1
		if tf == Year {
			if at.Year() == now.Year() {
				idx = int(at.Month()) - 1
			}
		} else {
			idx = daysBetween(truncateDay(at), today)
		}
		if idx < 0 || idx >= len(labels) {
			continue
		}
		noConf[idx] += float64(ex.NoConformidades)
		salidas[idx] += ex.CantidadSalida
		procesos[idx]++
	}

	return Chart{
		Kind:   "line",
		Labels: append([]string{}, labels...),
		Datasets: []Dataset{
			{Label: "No Conformes", Data: noConf, Fill: true, Color: colorNoConformes},
			{Label: "Salidas", Data: salidas, Fill: true, Color: colorSalidas},
			{Label: "Procesos", Data: procesos, Color: colorProcesos},
		},
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween días de calendario desde from hasta to (ambos truncados).
func daysBetween(from, to time.Time) int {
	if from.After(to) {
		return -1
	}
	// redondeo por cambios de horario
	return int((to.Sub(from) + 12*time.Hour) / (24 * time.Hour))
}
