package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/state"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	apphttp "github.com/jhoicas/panel-acib/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// withUser simula una sesión ya resuelta.
func withUser(u *entity.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if u != nil {
			c.Locals(apphttp.LocalUser, u)
		}
		return c.Next()
	}
}

func okHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// availabilityFake devuelve siempre la misma foto.
type availabilityFake struct {
	state state.AvailabilityState
}

func (f availabilityFake) WaitLoaded(context.Context) (state.AvailabilityState, error) {
	return f.state, nil
}

// usersFake resuelve cualquier token a u, o devuelve err.
type usersFake struct {
	u   *entity.User
	err error
}

func (f usersFake) Me(context.Context, string) (*entity.User, error) {
	return f.u, f.err
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

var (
	admin   = &entity.User{ID: 1, Nombre: "Ana", Email: "admin@acib.co", Tipo: entity.RoleAdmin}
	op      = &entity.User{ID: 2, Nombre: "Olga", Email: "op@acib.co", Tipo: entity.RoleUser}
	auditor = &entity.User{ID: 3, Nombre: "Raúl", Email: "aud@acib.co", Tipo: entity.RoleAuditor}
)

// ──────────────────────────────────────────────────────────────────────────────
// RequireSession
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSession_SinToken(t *testing.T) {
	sessions := apphttp.NewSessionManager(session.New())
	app := fiber.New()
	app.Get("/vista", apphttp.RequireSession(sessions, usersFake{u: op}, apphttp.SurfaceView), okHandler)
	app.Get("/api", apphttp.RequireSession(sessions, usersFake{u: op}, apphttp.SurfaceAPI), okHandler)

	resp := get(t, app, "/vista")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"), "las vistas redirigen a la portada")

	resp = get(t, app, "/api")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_SESSION", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name   string
		user   *entity.User
		roles  []entity.Role
		status int
	}{
		{"admin en ruta admin", admin, []entity.Role{entity.RoleAdmin}, fiber.StatusOK},
		{"operador en creación", op, []entity.Role{entity.RoleAdmin, entity.RoleUser}, fiber.StatusOK},
		{"auditor en creación", auditor, []entity.Role{entity.RoleAdmin, entity.RoleUser}, fiber.StatusForbidden},
		{"operador en monitoreo", op, []entity.Role{entity.RoleAdmin, entity.RoleAuditor}, fiber.StatusForbidden},
		{"sin usuario", nil, []entity.Role{entity.RoleAdmin}, fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/p", withUser(tc.user), apphttp.RequireRole(apphttp.SurfaceAPI, tc.roles...), okHandler)
			assert.Equal(t, tc.status, get(t, app, "/p").StatusCode)
		})
	}
}

func TestRequireRole_VistaRedirige(t *testing.T) {
	app := fiber.New()
	app.Get("/p", withUser(auditor), apphttp.RequireRole(apphttp.SurfaceView, entity.RoleAdmin), okHandler)

	resp := get(t, app, "/p")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAvailability
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAvailability(t *testing.T) {
	open := state.AvailabilityState{Known: true, Window: entity.Availability{Disponible: true}}
	closed := state.AvailabilityState{Known: true, Window: entity.Availability{Disponible: false}}
	unknown := state.AvailabilityState{}

	cases := []struct {
		name   string
		user   *entity.User
		state  state.AvailabilityState
		status int
	}{
		{"operador en horario", op, open, fiber.StatusOK},
		{"operador fuera de horario", op, closed, fiber.StatusServiceUnavailable},
		{"disponibilidad desconocida", auditor, unknown, fiber.StatusServiceUnavailable},
		{"admin fuera de horario", admin, closed, fiber.StatusOK},
		{"admin sin disponibilidad", admin, unknown, fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/p", withUser(tc.user),
				apphttp.RequireAvailability(availabilityFake{state: tc.state}, apphttp.SurfaceAPI), okHandler)
			resp := get(t, app, "/p")
			require.Equal(t, tc.status, resp.StatusCode)
			if tc.status == fiber.StatusServiceUnavailable {
				assert.Equal(t, "UNAVAILABLE", decodeError(t, resp).Code)
			}
		})
	}
}

func TestRequireAvailability_VistaRedirigeANoDisponible(t *testing.T) {
	closed := state.AvailabilityState{Known: true}
	app := fiber.New()
	app.Get("/p", withUser(op), apphttp.RequireAvailability(availabilityFake{state: closed}, apphttp.SurfaceView), okHandler)

	resp := get(t, app, "/p")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/no-disponible", resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// ErrorHandler
// ──────────────────────────────────────────────────────────────────────────────

func TestErrorHandler_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		code    string
		generic bool
	}{
		{domain.ErrBackend, fiber.StatusBadGateway, "BACKEND", true},
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", true},
		{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", true},
		{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", true},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", false},
		{domain.ErrUnavailable, fiber.StatusServiceUnavailable, "UNAVAILABLE", false},
		{domain.ErrBusy, fiber.StatusConflict, "BUSY", false},
		{domain.ErrClosed, fiber.StatusGone, "CLOSED", false},
		{domain.ErrNoReport, fiber.StatusNotFound, "NO_REPORT", false},
		{errors.New("fallo local"), fiber.StatusInternalServerError, "INTERNAL", true},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
			app.Get("/p", func(*fiber.Ctx) error {
				return fmt.Errorf("backend: GET /x: HTTP 500 (detalle interno): %w", tc.err)
			})

			resp := get(t, app, "/p")
			require.Equal(t, tc.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tc.code, body.Code)
			assert.NotContains(t, body.Message, "detalle interno", "el detalle técnico no llega al usuario")
			if tc.generic {
				assert.Equal(t, dto.MensajeGenerico, body.Message)
			}
		})
	}
}

func TestErrorHandler_ErrorDeFiberConservaStatus(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	resp := get(t, app, "/no-existe")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "HTTP", decodeError(t, resp).Code)
}
