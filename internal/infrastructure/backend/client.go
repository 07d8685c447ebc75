// Package backend implementa los puertos de repositorio contra la API REST
// del panel A.C.I.B. Usa net/http de la librería estándar; el backend no
// publica un SDK.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/pkg/bearer"
)

// Options parámetros de conexión.
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64
}

// Client adaptador HTTP del backend. Es seguro para uso concurrente.
type Client struct {
	baseURL    string
	maxBody    int64
	httpClient *http.Client
	log        zerolog.Logger
}

// New construye el cliente. BaseURL no debe terminar en "/".
func New(opts Options, log zerolog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 20 << 20
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		maxBody:    opts.MaxBodyBytes,
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        log.With().Str("component", "backend").Logger(),
	}
}

// ── Núcleo ────────────────────────────────────────────────────────────────────

// request describe una llamada; body es JSON salvo que contentType se indique.
type request struct {
	method      string
	path        string
	query       url.Values
	body        any
	raw         io.Reader
	contentType string
}

// getJSON atajo para GET con respuesta JSON.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

// do ejecuta la llamada y decodifica la respuesta JSON en out (si no es nil).
func (c *Client) do(ctx context.Context, r request, out any) error {
	raw, err := c.doRaw(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Error().Err(err).Str("path", r.path).Msg("respuesta no decodificable")
		return fmt.Errorf("backend: decodificar %s: %v: %w", r.path, err, domain.ErrBackend)
	}
	return nil
}

// doRaw ejecuta la llamada y devuelve el cuerpo tal cual.
func (c *Client) doRaw(ctx context.Context, r request) ([]byte, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	body := r.raw
	contentType := r.contentType
	if body == nil && r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("backend: serializar %s: %w", r.path, err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request %s: %w", r.path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if tok := bearer.FromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", r.method).Str("path", r.path).Msg("llamada al backend fallida")
		if ctx.Err() != nil {
			return nil, fmt.Errorf("backend: %s %s cancelado: %w", r.method, r.path, ctx.Err())
		}
		return nil, fmt.Errorf("backend: %s %s: %v: %w", r.method, r.path, err, domain.ErrBackend)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("backend: leer %s: %v: %w", r.path, err, domain.ErrBackend)
	}
	if int64(len(raw)) > c.maxBody {
		c.log.Warn().Str("path", r.path).Int64("limit", c.maxBody).Msg("respuesta del backend demasiado grande")
		return nil, fmt.Errorf("backend: %s: respuesta mayor a %d bytes: %w", r.path, c.maxBody, domain.ErrBackend)
	}

	c.log.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := statusError(resp.StatusCode, raw)
		c.log.Warn().Err(err).Str("method", r.method).Str("path", r.path).Int("status", resp.StatusCode).Msg("backend respondió con error")
		return nil, fmt.Errorf("backend: %s %s: %w", r.method, r.path, err)
	}
	return raw, nil
}

// detailBody forma de error que devuelve el backend ({"detail": ...}).
type detailBody struct {
	Detail json.RawMessage `json:"detail"`
}

// statusError traduce el código HTTP a un error de dominio.
func statusError(status int, raw []byte) error {
	var sentinel error
	switch status {
	case http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		sentinel = domain.ErrInvalidInput
	default:
		sentinel = domain.ErrBackend
	}

	detail := ""
	var db detailBody
	if json.Unmarshal(raw, &db) == nil && len(db.Detail) > 0 {
		detail = string(db.Detail)
		var s string
		if json.Unmarshal(db.Detail, &s) == nil {
			detail = s
		}
	}
	if detail == "" {
		return fmt.Errorf("HTTP %d: %w", status, sentinel)
	}
	return fmt.Errorf("HTTP %d (%s): %w", status, detail, sentinel)
}
