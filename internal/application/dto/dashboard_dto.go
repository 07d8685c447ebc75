package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-acib/internal/application/charts"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/proceso"
)

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	// Estado general por etapa (líneas No Conformes / Salidas)
	Etapas charts.Chart `json:"etapas"`

	// Diagrama de no conformidades y su porcentaje de conformes (2 decimales)
	Conformidad         charts.Chart    `json:"conformidad"`
	PorcentajeConformes decimal.Decimal `json:"porcentaje_conformes"`
	TotalConformes      int             `json:"total_conformes"`
	TotalNoConformes    int             `json:"total_no_conformes"`

	// Barra de entradas / salidas por proceso
	Carbon []CarbonDTO `json:"carbon"`

	MenosExito []SuccessDTO `json:"procesos_menos_exito"`
	MayorExito []SuccessDTO `json:"procesos_mayor_exito"`
}

// CarbonDTO barra de un proceso.
type CarbonDTO struct {
	ID     int               `json:"id"`
	Nombre string            `json:"nombre"`
	Barra  proceso.CarbonBar `json:"barra"`
}

// SuccessDTO éxito promedio redondeado a 2 decimales.
type SuccessDTO struct {
	IDProceso     int             `json:"id_proceso"`
	Nombre        string          `json:"nombre"`
	ExitoPromedio decimal.Decimal `json:"exito_promedio"`
}

// DailySummaryDTO comparación hoy / ayer para la vista de servicio no disponible.
type DailySummaryDTO struct {
	Resumen entity.DailySummary `json:"resumen"`
	Radar   charts.Chart        `json:"radar"`
}
