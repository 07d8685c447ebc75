package repository

import (
	"context"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// ExecutionRepository ejecución de procesos y previsualización de etapas.
// La lógica de evaluación vive en el backend; el panel no calcula salidas.
type ExecutionRepository interface {
	PreviewEvaluation(ctx context.Context, stage entity.StageAnswer) (*entity.PreviewResult, error)
	Submit(ctx context.Context, answer entity.ExecutionAnswer) error
}
