package repository

import (
	"context"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// StatisticsRepository agregados de /stadistics/estadisticas y /resumen-dia (consultas read-only).
type StatisticsRepository interface {
	StageConformity(ctx context.Context) ([]entity.StageConformity, error)
	Conformity(ctx context.Context) (*entity.Conformity, error)
	InputOutputTotals(ctx context.Context) ([]entity.InputOutputTotals, error)
	SuccessRanking(ctx context.Context) (*entity.SuccessRanking, error)
	DailySummary(ctx context.Context) (*entity.DailySummary, error)
}
