package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/panel-acib/internal/application/charts"
	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

// monitorLimit cantidad de procesos ejecutados y registros que se muestran.
const monitorLimit = 100

// MonitorUseCase vista de monitoreo: últimas ejecuciones, actividad y tendencia.
type MonitorUseCase struct {
	logs repository.LogRepository
	now  func() time.Time
}

// NewMonitorUseCase construye el caso de uso.
func NewMonitorUseCase(logs repository.LogRepository) *MonitorUseCase {
	return &MonitorUseCase{logs: logs, now: time.Now}
}

// Overview últimos ejecutados y registros, con la tendencia en la ventana pedida.
func (uc *MonitorUseCase) Overview(ctx context.Context, timeframe string) (*dto.MonitorDTO, error) {
	tf, err := charts.ParseTimeframe(timeframe)
	if err != nil {
		return nil, err
	}

	var (
		execs []entity.ExecutedProcess
		logs  []entity.LogRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		execs, err = uc.logs.LatestExecuted(gctx, monitorLimit)
		return err
	})
	g.Go(func() (err error) {
		logs, err = uc.logs.Latest(gctx, monitorLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("monitoreo: %w", err)
	}

	if execs == nil {
		execs = []entity.ExecutedProcess{}
	}
	if logs == nil {
		logs = []entity.LogRecord{}
	}
	return &dto.MonitorDTO{
		Ejecutados: execs,
		Registros:  logs,
		Tendencia:  charts.Trend(execs, tf, uc.now()),
		Ventana:    tf,
	}, nil
}

// Search busca registros de ejecución. Al menos un criterio es obligatorio.
func (uc *MonitorUseCase) Search(ctx context.Context, q entity.ExecutedSearch) ([]entity.LogRecord, error) {
	q = entity.ExecutedSearch{
		IDProceso:          strings.TrimSpace(q.IDProceso),
		IDProcesoEjecutado: strings.TrimSpace(q.IDProcesoEjecutado),
		NombreProceso:      strings.TrimSpace(q.NombreProceso),
	}
	if q.Empty() {
		return nil, fmt.Errorf("búsqueda sin criterios: %w", domain.ErrInvalidInput)
	}
	out, err := uc.logs.SearchExecuted(ctx, q)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entity.LogRecord{}
	}
	return out, nil
}

// UpdateCreationDate corrige la fecha de creación de un registro.
func (uc *MonitorUseCase) UpdateCreationDate(ctx context.Context, recordID int, at time.Time) error {
	if recordID <= 0 || at.IsZero() {
		return fmt.Errorf("registro %d: id y fecha requeridos: %w", recordID, domain.ErrInvalidInput)
	}
	return uc.logs.UpdateCreationDate(ctx, recordID, at)
}
