package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/panel-acib/internal/application/charts"
	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/proceso"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

// DashboardUseCase arma el tablero de estadísticas y el resumen diario.
//
// Fuente de datos: StatisticsRepository (consultas read-only al backend).
type DashboardUseCase struct {
	stats    repository.StatisticsRepository
	renderer SummaryRenderer
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso. renderer puede ser nil si no
// se expone el PDF de resumen.
func NewDashboardUseCase(stats repository.StatisticsRepository, renderer SummaryRenderer) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, renderer: renderer, now: time.Now}
}

// Overview consulta en paralelo los cuatro agregados del tablero:
//  1. estado-general-etapas      → Etapas
//  2. diagrama-no-conformidades  → Conformidad + PorcentajeConformes
//  3. estado-entradas-salidas    → Carbon
//  4. procesos-exito             → MenosExito / MayorExito
func (uc *DashboardUseCase) Overview(ctx context.Context) (*dto.DashboardDTO, error) {
	var (
		stages  []entity.StageConformity
		conf    *entity.Conformity
		totals  []entity.InputOutputTotals
		ranking *entity.SuccessRanking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stages, err = uc.stats.StageConformity(gctx)
		return err
	})
	g.Go(func() (err error) {
		conf, err = uc.stats.Conformity(gctx)
		return err
	})
	g.Go(func() (err error) {
		totals, err = uc.stats.InputOutputTotals(gctx)
		return err
	})
	g.Go(func() (err error) {
		ranking, err = uc.stats.SuccessRanking(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	// ── Conformidad ───────────────────────────────────────────────────────────
	if conf == nil {
		conf = &entity.Conformity{}
	}
	out := &dto.DashboardDTO{
		Etapas:              charts.StageLine(stages),
		Conformidad:         charts.ConformityPie(*conf),
		PorcentajeConformes: conformityPct(*conf),
		TotalConformes:      conf.Conformes,
		TotalNoConformes:    conf.NoConformes,
		Carbon:              make([]dto.CarbonDTO, 0, len(totals)),
	}

	// ── Barras de entradas / salidas ──────────────────────────────────────────
	for _, t := range totals {
		out.Carbon = append(out.Carbon, dto.CarbonDTO{
			ID:     t.ID,
			Nombre: t.Nombre,
			Barra:  proceso.CarbonRatio(t.CantidadEntrada, t.CantidadSalida),
		})
	}

	// ── Éxito promedio ────────────────────────────────────────────────────────
	if ranking != nil {
		out.MenosExito = successDTOs(ranking.MenosExito)
		out.MayorExito = successDTOs(ranking.MayorExito)
	} else {
		out.MenosExito, out.MayorExito = []dto.SuccessDTO{}, []dto.SuccessDTO{}
	}
	return out, nil
}

// Daily resumen hoy / ayer con su radar normalizado.
func (uc *DashboardUseCase) Daily(ctx context.Context) (*dto.DailySummaryDTO, error) {
	s, err := uc.stats.DailySummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen diario: %w", err)
	}
	return &dto.DailySummaryDTO{Resumen: *s, Radar: charts.Radar(*s)}, nil
}

// SummaryPDF tablero actual renderizado como PDF.
func (uc *DashboardUseCase) SummaryPDF(ctx context.Context) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("resumen PDF no configurado")
	}
	d, err := uc.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderDashboard(ctx, d, uc.now())
}

// conformityPct porcentaje de conformes con 2 decimales; 0 si no hay datos.
func conformityPct(c entity.Conformity) decimal.Decimal {
	total := c.Conformes + c.NoConformes
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(c.Conformes)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

func successDTOs(in []entity.ProcessSuccess) []dto.SuccessDTO {
	out := make([]dto.SuccessDTO, 0, len(in))
	for _, p := range in {
		out = append(out, dto.SuccessDTO{
			IDProceso:     p.IDProceso,
			Nombre:        p.Nombre,
			ExitoPromedio: decimal.NewFromFloat(p.ExitoPromedio).Round(2),
		})
	}
	return out
}
