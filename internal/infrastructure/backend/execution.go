package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

var _ repository.ExecutionRepository = (*ExecutionRepo)(nil)

// ExecutionRepo ejecución y previsualización de procesos.
type ExecutionRepo struct {
	c *Client
}

// NewExecutionRepository construye el adaptador de ejecución.
func NewExecutionRepository(c *Client) *ExecutionRepo {
	return &ExecutionRepo{c: c}
}

// previewResponse el backend envuelve el resultado en "preview".
type previewResponse struct {
	Preview *entity.PreviewResult `json:"preview"`
}

// PreviewEvaluation POST /execution/preview-evaluation. Las salidas viajan en
// cero: las calcula el backend.
func (r *ExecutionRepo) PreviewEvaluation(ctx context.Context, stage entity.StageAnswer) (*entity.PreviewResult, error) {
	body := stage.Clone()
	for i := range body.Salidas {
		body.Salidas[i].Value = 0
	}

	var resp previewResponse
	if err := r.c.do(ctx, request{method: http.MethodPost, path: "/execution/preview-evaluation", body: body}, &resp); err != nil {
		return nil, err
	}
	if resp.Preview == nil {
		return &entity.PreviewResult{}, nil
	}
	return resp.Preview, nil
}

// Submit POST /execution/.
func (r *ExecutionRepo) Submit(ctx context.Context, answer entity.ExecutionAnswer) error {
	return r.c.do(ctx, request{method: http.MethodPost, path: "/execution/", body: answer}, nil)
}
