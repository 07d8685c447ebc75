package repository

import (
	"context"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// ProcessRepository define el puerto hacia las definiciones de proceso del backend (DIP).
type ProcessRepository interface {
	List(ctx context.Context) ([]entity.Process, error)
	GetByID(ctx context.Context, id int) (*entity.Process, error)
	// Create devuelve el id asignado por el backend (0 si no lo informa).
	Create(ctx context.Context, draft entity.ProcessDraft) (int, error)
}
