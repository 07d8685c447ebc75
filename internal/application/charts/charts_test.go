package charts_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-acib/internal/application/charts"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

func TestStageLine_EtiquetasYSeries(t *testing.T) {
	c := charts.StageLine([]entity.StageConformity{
		{NumEtapa: 1, Conformes: 4, NoConformes: 1},
		{NumEtapa: 2, Conformes: 2, NoConformes: 3},
	})

	assert.Equal(t, []string{"Etapa 1", "Etapa 2"}, c.Labels)
	require.Len(t, c.Datasets, 2)
	assert.Equal(t, "No Conformes", c.Datasets[0].Label)
	assert.Equal(t, []float64{1, 3}, c.Datasets[0].Data)
	assert.Equal(t, "Salidas", c.Datasets[1].Label)
	assert.Equal(t, []float64{4, 2}, c.Datasets[1].Data)
}

func TestConformityPie(t *testing.T) {
	c := charts.ConformityPie(entity.Conformity{Conformes: 8, NoConformes: 2})
	assert.Equal(t, []string{"Conformes", "No Conformes"}, c.Labels)
	assert.Equal(t, []float64{8, 2}, c.Datasets[0].Data)
}

func TestRadar_NormalizaContraElMaximo(t *testing.T) {
	c := charts.Radar(entity.DailySummary{
		Hoy:  entity.DayFigures{Indicadores: 5, Procesos: 0, Produccion: 30},
		Ayer: entity.DayFigures{Indicadores: 10, Procesos: 0, Produccion: 15},
	})

	require.Len(t, c.Labels, 6)
	assert.Equal(t, "Indicadores (Máx: 10)", c.Labels[0])
	assert.Equal(t, "Producción (Máx: 30)", c.Labels[4])

	hoy, ayer := c.Datasets[0].Data, c.Datasets[1].Data
	assert.InDelta(t, 50, hoy[0], 1e-9)
	assert.InDelta(t, 100, ayer[0], 1e-9)
	assert.Zero(t, hoy[1], "máximo 0 da 0")
	assert.Zero(t, ayer[1])
	assert.InDelta(t, 100, hoy[4], 1e-9)
	assert.InDelta(t, 50, ayer[4], 1e-9)
}

func TestTrend_SemanaEtiquetasEnEspanol(t *testing.T) {
	// jueves 10 de octubre de 2024
	now := time.Date(2024, time.October, 10, 15, 0, 0, 0, time.UTC)
	c := charts.Trend(nil, charts.Week, now)

	require.Len(t, c.Labels, 7)
	assert.Equal(t, "Jueves 10", c.Labels[0])
	assert.Equal(t, "Miércoles 9", c.Labels[1])
	assert.Equal(t, "Viernes 4", c.Labels[6])
}

func TestTrend_AgrupaPorDia(t *testing.T) {
	now := time.Date(2024, time.October, 10, 15, 0, 0, 0, time.UTC)
	execs := []entity.ExecutedProcess{
		{Creado: "2024-10-10T08:00:00", NoConformidades: 1, CantidadSalida: 5},
		{Creado: "2024-10-10T09:30:00", NoConformidades: 2, CantidadSalida: 1},
		{Creado: "2024-10-08T09:30:00", CantidadSalida: 7},
		{Creado: "2024-09-01T00:00:00", CantidadSalida: 99}, // fuera de la semana
		{Creado: "2024-10-11T00:00:00", CantidadSalida: 99}, // futuro
		{Creado: "no es fecha", CantidadSalida: 99},
	}

	c := charts.Trend(execs, charts.Week, now)
	assert.Equal(t, []float64{3, 0, 0, 0, 0, 0, 0}, c.Datasets[0].Data)
	assert.Equal(t, []float64{6, 0, 7, 0, 0, 0, 0}, c.Datasets[1].Data)
	require.Len(t, c.Datasets, 3)
	assert.Equal(t, "Procesos", c.Datasets[2].Label)
	assert.Equal(t, []float64{2, 0, 1, 0, 0, 0, 0}, c.Datasets[2].Data, "ejecuciones por día")
}

func TestTrend_MesYAnio(t *testing.T) {
	now := time.Date(2024, time.October, 10, 15, 0, 0, 0, time.UTC)
	execs := []entity.ExecutedProcess{
		{Creado: "2024-10-01T08:00:00Z", CantidadSalida: 2},
		{Creado: "2024-02-14T08:00:00Z", CantidadSalida: 3},
		{Creado: "2023-02-14T08:00:00Z", CantidadSalida: 50},
	}

	month := charts.Trend(execs, charts.Month, now)
	require.Len(t, month.Labels, 30)
	assert.Equal(t, "D-1", month.Labels[0])
	assert.Equal(t, 2.0, month.Datasets[1].Data[9])

	year := charts.Trend(execs, charts.Year, now)
	assert.Equal(t, "Ene", year.Labels[0])
	assert.Equal(t, "Dic", year.Labels[11])
	assert.Equal(t, 3.0, year.Datasets[1].Data[1])
	assert.Equal(t, 2.0, year.Datasets[1].Data[9])
	assert.Equal(t, 1.0, year.Datasets[2].Data[1], "la de 2023 no cuenta")
}

func TestParseTimeframe(t *testing.T) {
	tf, err := charts.ParseTimeframe("")
	require.NoError(t, err)
	assert.Equal(t, charts.Week, tf)

	_, err = charts.ParseTimeframe("decada")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
