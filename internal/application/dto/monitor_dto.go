package dto

import (
	"time"

	"github.com/jhoicas/panel-acib/internal/application/charts"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// MonitorDTO respuesta de GET /api/monitoreo.
type MonitorDTO struct {
	Ejecutados []entity.ExecutedProcess `json:"ejecutados"`
	Registros  []entity.LogRecord       `json:"registros"`
	Tendencia  charts.Chart             `json:"tendencia"`
	Ventana    charts.Timeframe         `json:"ventana"`
}

// UpdateDateRequest nueva fecha de creación de un registro (RFC 3339).
type UpdateDateRequest struct {
	Fecha time.Time `json:"fecha"`
}
