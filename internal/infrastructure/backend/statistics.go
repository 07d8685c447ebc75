package backend

import (
	"context"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo consultas de estadísticas (solo lectura).
type StatisticsRepo struct {
	c *Client
}

// NewStatisticsRepository construye el adaptador de estadísticas.
func NewStatisticsRepository(c *Client) *StatisticsRepo {
	return &StatisticsRepo{c: c}
}

const statsPrefix = "/stadistics/estadisticas/"

// StageConformity GET estado-general-etapas.
func (r *StatisticsRepo) StageConformity(ctx context.Context) ([]entity.StageConformity, error) {
	var out []entity.StageConformity
	if err := r.c.getJSON(ctx, statsPrefix+"estado-general-etapas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Conformity GET diagrama-no-conformidades.
func (r *StatisticsRepo) Conformity(ctx context.Context) (*entity.Conformity, error) {
	var out entity.Conformity
	if err := r.c.getJSON(ctx, statsPrefix+"diagrama-no-conformidades", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InputOutputTotals GET estado-entradas-salidas.
func (r *StatisticsRepo) InputOutputTotals(ctx context.Context) ([]entity.InputOutputTotals, error) {
	var out []entity.InputOutputTotals
	if err := r.c.getJSON(ctx, statsPrefix+"estado-entradas-salidas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SuccessRanking GET procesos-exito.
func (r *StatisticsRepo) SuccessRanking(ctx context.Context) (*entity.SuccessRanking, error) {
	var out entity.SuccessRanking
	if err := r.c.getJSON(ctx, statsPrefix+"procesos-exito", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DailySummary GET /resumen-dia.
func (r *StatisticsRepo) DailySummary(ctx context.Context) (*entity.DailySummary, error) {
	var out entity.DailySummary
	if err := r.c.getJSON(ctx, "/resumen-dia", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
