package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo disponibilidad del servicio y su configuración.
type ScheduleRepo struct {
	c *Client
}

// NewScheduleRepository construye el adaptador de horario.
func NewScheduleRepository(c *Client) *ScheduleRepo {
	return &ScheduleRepo{c: c}
}

// Availability GET /disponibilidad.
func (r *ScheduleRepo) Availability(ctx context.Context) (*entity.Availability, error) {
	var out entity.Availability
	if err := r.c.getJSON(ctx, "/disponibilidad", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Configure POST /config/horario. Los parámetros viajan en la query; el cuerpo va vacío.
func (r *ScheduleRepo) Configure(ctx context.Context, cfg entity.ScheduleConfig) error {
	q := url.Values{}
	q.Set("hora_inicio", strconv.Itoa(cfg.HoraInicio))
	q.Set("duracion_horas", strconv.Itoa(cfg.DuracionHoras))
	return r.c.do(ctx, request{method: http.MethodPost, path: "/config/horario", query: q, body: struct{}{}}, nil)
}

// GenerateSummary POST /generar-resumen.
func (r *ScheduleRepo) GenerateSummary(ctx context.Context) error {
	return r.c.do(ctx, request{method: http.MethodPost, path: "/generar-resumen", body: struct{}{}}, nil)
}
