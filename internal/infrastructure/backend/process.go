package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

var (
	_ repository.ProcessRepository = (*ProcessRepo)(nil)
	_ repository.CatalogRepository = (*CatalogRepo)(nil)
)

// ProcessRepo definiciones de proceso sobre /process/.
type ProcessRepo struct {
	c *Client
}

// NewProcessRepository construye el adaptador de procesos.
func NewProcessRepository(c *Client) *ProcessRepo {
	return &ProcessRepo{c: c}
}

// CatalogRepo catálogo de entradas e indicadores.
type CatalogRepo struct {
	c *Client
}

// NewCatalogRepository construye el adaptador del catálogo.
func NewCatalogRepository(c *Client) *CatalogRepo {
	return &CatalogRepo{c: c}
}

// List GET /process/.
func (r *ProcessRepo) List(ctx context.Context) ([]entity.Process, error) {
	var out []entity.Process
	if err := r.c.getJSON(ctx, "/process/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID GET /process/{id}.
func (r *ProcessRepo) GetByID(ctx context.Context, id int) (*entity.Process, error) {
	var p entity.Process
	if err := r.c.getJSON(ctx, "/process/"+strconv.Itoa(id), nil, &p); err != nil {
		return nil, err
	}
	if p.ID == 0 {
		p.ID = id
	}
	return &p, nil
}

// Create POST /process/. El backend puede omitir el id en la respuesta.
func (r *ProcessRepo) Create(ctx context.Context, draft entity.ProcessDraft) (int, error) {
	var created struct {
		ID int `json:"id"`
	}
	if err := r.c.do(ctx, request{method: http.MethodPost, path: "/process/", body: draft}, &created); err != nil {
		return 0, fmt.Errorf("crear proceso %q: %w", draft.Nombre, err)
	}
	return created.ID, nil
}

// ListInputs GET /inputs/.
func (r *CatalogRepo) ListInputs(ctx context.Context) ([]entity.Input, error) {
	var out []entity.Input
	if err := r.c.getJSON(ctx, "/inputs/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateInput POST /inputs/.
func (r *CatalogRepo) CreateInput(ctx context.Context, in entity.Input) error {
	return r.c.do(ctx, request{method: http.MethodPost, path: "/inputs/", body: in}, nil)
}

// ListIndicators GET /indicators/.
func (r *CatalogRepo) ListIndicators(ctx context.Context) ([]entity.Indicator, error) {
	var out []entity.Indicator
	if err := r.c.getJSON(ctx, "/indicators/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIndicator POST /indicators/.
func (r *CatalogRepo) CreateIndicator(ctx context.Context, ind entity.Indicator) error {
	return r.c.do(ctx, request{method: http.MethodPost, path: "/indicators/", body: ind}, nil)
}
