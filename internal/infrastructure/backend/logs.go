package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo registros de actividad.
type LogRepo struct {
	c *Client
}

// NewLogRepository construye el adaptador de registros.
func NewLogRepository(c *Client) *LogRepo {
	return &LogRepo{c: c}
}

// Latest GET /logs/latest/{limit}.
func (r *LogRepo) Latest(ctx context.Context, limit int) ([]entity.LogRecord, error) {
	var out []entity.LogRecord
	if err := r.c.getJSON(ctx, "/logs/latest/"+strconv.Itoa(limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LatestExecuted GET /logs/latest/executed/definition/{limit}.
func (r *LogRepo) LatestExecuted(ctx context.Context, limit int) ([]entity.ExecutedProcess, error) {
	var out []entity.ExecutedProcess
	if err := r.c.getJSON(ctx, "/logs/latest/executed/definition/"+strconv.Itoa(limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchExecuted GET /logs/search/process/executed; los criterios vacíos no se envían.
func (r *LogRepo) SearchExecuted(ctx context.Context, q entity.ExecutedSearch) ([]entity.LogRecord, error) {
	params := url.Values{}
	if q.IDProceso != "" {
		params.Set("id_proceso", q.IDProceso)
	}
	if q.IDProcesoEjecutado != "" {
		params.Set("id_proceso_ejecutado", q.IDProcesoEjecutado)
	}
	if q.NombreProceso != "" {
		params.Set("nombre_proceso", q.NombreProceso)
	}

	var out []entity.LogRecord
	if err := r.c.getJSON(ctx, "/logs/search/process/executed", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type creationDate struct {
	Anio   int `json:"anio"`
	Mes    int `json:"mes"`
	Dia    int `json:"dia"`
	Hora   int `json:"hora"`
	Minuto int `json:"minuto"`
}

// UpdateCreationDate PUT /update-creation-date/{id}. La fecha se envía en
// hora local de at, desglosada en componentes.
func (r *LogRepo) UpdateCreationDate(ctx context.Context, recordID int, at time.Time) error {
	body := creationDate{
		Anio:   at.Year(),
		Mes:    int(at.Month()),
		Dia:    at.Day(),
		Hora:   at.Hour(),
		Minuto: at.Minute(),
	}
	return r.c.do(ctx, request{
		method: http.MethodPut,
		path:   "/update-creation-date/" + strconv.Itoa(recordID),
		body:   body,
	}, nil)
}
