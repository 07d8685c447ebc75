package repository

import (
	"context"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// CatalogRepository catálogo reutilizable de entradas e indicadores.
type CatalogRepository interface {
	ListInputs(ctx context.Context) ([]entity.Input, error)
	CreateInput(ctx context.Context, in entity.Input) error
	ListIndicators(ctx context.Context) ([]entity.Indicator, error)
	CreateIndicator(ctx context.Context, ind entity.Indicator) error
}
