package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

// CatalogUseCase procesos, entradas e indicadores definidos en el backend.
type CatalogUseCase struct {
	processes repository.ProcessRepository
	catalog   repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(processes repository.ProcessRepository, catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{processes: processes, catalog: catalog}
}

// Catalog consulta en paralelo procesos, indicadores y entradas.
func (uc *CatalogUseCase) Catalog(ctx context.Context) (*dto.CatalogResponse, error) {
	out := &dto.CatalogResponse{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Procesos, err = uc.processes.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Indicadores, err = uc.catalog.ListIndicators(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Entradas, err = uc.catalog.ListInputs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("catálogo: %w", err)
	}
	return out, nil
}

// ListProcesses procesos definidos.
func (uc *CatalogUseCase) ListProcesses(ctx context.Context) ([]entity.Process, error) {
	return uc.processes.List(ctx)
}

// GetProcess proceso con sus etapas.
func (uc *CatalogUseCase) GetProcess(ctx context.Context, id int) (*entity.Process, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id de proceso %d: %w", id, domain.ErrInvalidInput)
	}
	return uc.processes.GetByID(ctx, id)
}

// CreateInput valida y crea una entrada.
func (uc *CatalogUseCase) CreateInput(ctx context.Context, in dto.CreateInputRequest) error {
	kind := entity.ValueKind(in.Tipo)
	if in.ID <= 0 || strings.TrimSpace(in.Nombre) == "" || !kind.Valid() {
		return fmt.Errorf("entrada: id, nombre y tipo (int|float) requeridos: %w", domain.ErrInvalidInput)
	}
	return uc.catalog.CreateInput(ctx, entity.Input{ID: in.ID, Nombre: strings.TrimSpace(in.Nombre), Tipo: kind})
}

// CreateIndicator valida y crea un indicador.
func (uc *CatalogUseCase) CreateIndicator(ctx context.Context, in dto.CreateIndicatorRequest) error {
	kind := entity.IndicatorKind(in.Tipo)
	if in.ID <= 0 || strings.TrimSpace(in.Nombre) == "" || !kind.Valid() {
		return fmt.Errorf("indicador: id, nombre y tipo (range|criteria|checkbox) requeridos: %w", domain.ErrInvalidInput)
	}
	return uc.catalog.CreateIndicator(ctx, entity.Indicator{
		ID:        in.ID,
		Nombre:    strings.TrimSpace(in.Nombre),
		Tipo:      kind,
		EntradaID: in.EntradaID,
	})
}
