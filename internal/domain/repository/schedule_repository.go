package repository

import (
	"context"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// ScheduleRepository ventana de disponibilidad del servicio.
type ScheduleRepository interface {
	Availability(ctx context.Context) (*entity.Availability, error)
	Configure(ctx context.Context, cfg entity.ScheduleConfig) error
	GenerateSummary(ctx context.Context) error
}
