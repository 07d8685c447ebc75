package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-acib/internal/application/auth"
	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/execution"
	"github.com/jhoicas/panel-acib/internal/application/state"
	"github.com/jhoicas/panel-acib/internal/application/usecase"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/infrastructure/backend"
	"github.com/jhoicas/panel-acib/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/panel-acib/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/panel-acib/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/panel-acib/pkg/jwt"
	"github.com/jhoicas/panel-acib/web"
)

const (
	testSecret   = "secreto-de-pruebas"
	testPassword = "clave"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend simulado
// ──────────────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	mu               sync.Mutex
	disponible       bool
	availabilityDown bool
	created          []entity.ProcessDraft
	executed         []entity.ExecutionAnswer
}

var backendUsers = map[string]*entity.User{
	admin.Email:   admin,
	op.Email:      op,
	auditor.Email: auditor,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if _, ok := backendUsers[in.Username]; !ok || in.Password != testPassword {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect username or password"})
			return
		}
		tok, _ := pkgjwt.Generate(testSecret, in.Username, 10)
		writeJSON(w, http.StatusOK, map[string]string{"access_token": tok, "token_type": "bearer"})
	})

	mux.HandleFunc("GET /users/{email}", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
			return
		}
		u, ok := backendUsers[r.PathValue("email")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "User not found"})
			return
		}
		writeJSON(w, http.StatusOK, u)
	})

	mux.HandleFunc("GET /disponibilidad", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.availabilityDown {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "db"})
			return
		}
		writeJSON(w, http.StatusOK, entity.Availability{Disponible: f.disponible, Inicio: "08:00", Fin: "18:00"})
	})

	// público en el backend, igual que /disponibilidad
	mux.HandleFunc("GET /resumen-dia", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, entity.DailySummary{
			Hoy:  entity.DayFigures{ProcesosEjecutados: 12, Produccion: 340, NoConformes: 1},
			Ayer: entity.DayFigures{ProcesosEjecutados: 9, Produccion: 280, NoConformes: 3},
		})
	})

	mux.HandleFunc("GET /process/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "7" {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Process not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id": 7, "nombre": "Mezcla", "num_etapas": 1,
			"etapas": []map[string]any{{
				"id": 1, "num_etapa": 1,
				"entradas":    []map[string]any{{"id": 1, "nombre": "Agua", "tipo": "float"}},
				"indicadores": []map[string]any{{"id": 1, "nombre": "Temperatura", "tipo": "range", "entrada_id": 1}},
				"salidas":     []map[string]any{{"id": 1, "nombre": "Producto", "tipo": "float"}},
			}},
		})
	})

	mux.HandleFunc("POST /process/{$}", func(w http.ResponseWriter, r *http.Request) {
		var d entity.ProcessDraft
		_ = json.NewDecoder(r.Body).Decode(&d)
		f.mu.Lock()
		f.created = append(f.created, d)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]int{"id": 7})
	})

	mux.HandleFunc("POST /execution/preview-evaluation", func(w http.ResponseWriter, r *http.Request) {
		var st entity.StageAnswer
		_ = json.NewDecoder(r.Body).Decode(&st)
		out := 0.0
		if len(st.Entradas) > 0 && st.Entradas[0].Value != nil {
			out = *st.Entradas[0].Value * 2
		}
		writeJSON(w, http.StatusOK, map[string]any{"preview": entity.PreviewResult{
			Salidas:     []entity.OutputValue{{ID: 1, Value: out}},
			Indicadores: []entity.PreviewIndicator{{ID: 1, State: true}},
		}})
	})

	mux.HandleFunc("POST /execution/{$}", func(w http.ResponseWriter, r *http.Request) {
		var a entity.ExecutionAnswer
		_ = json.NewDecoder(r.Body).Decode(&a)
		f.mu.Lock()
		f.executed = append(f.executed, a)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})

	return mux
}

// testDeps arma los casos de uso reales contra el backend simulado.
func testDeps(t *testing.T, fb *fakeBackend) apphttp.RouterDeps {
	t.Helper()
	srv := httptest.NewServer(fb.handler())
	t.Cleanup(srv.Close)

	log := zerolog.Nop()
	client := backend.New(backend.Options{BaseURL: srv.URL, Timeout: 5 * time.Second}, log)
	processRepo := backend.NewProcessRepository(client)
	scheduleRepo := backend.NewScheduleRepository(client)
	userRepo := backend.NewUserRepository(client)

	availability := state.NewAvailabilityStore(scheduleRepo, log)
	_ = availability.Load(context.Background())
	resolver := state.NewUserResolver(userRepo, memory.NewStore[entity.User](time.Minute), testSecret)

	return apphttp.RouterDeps{
		Sessions:     apphttp.NewSessionManager(session.New()),
		Availability: availability,
		AuthUC:       auth.NewAuthUseCase(backend.NewAuthRepository(client), resolver, log),
		CatalogUC:    usecase.NewCatalogUseCase(processRepo, backend.NewCatalogRepository(client)),
		DraftUC:      usecase.NewDraftUseCase(processRepo, memory.NewStore[*usecase.Draft](time.Minute), log),
		ExecutionUC: execution.NewUseCase(processRepo, backend.NewExecutionRepository(client),
			memory.NewStore[*execution.Session](time.Minute), time.Second, log),
		DashboardUC: usecase.NewDashboardUseCase(backend.NewStatisticsRepository(client), nil),
		MonitorUC:   usecase.NewMonitorUseCase(backend.NewLogRepository(client)),
		ReportUC: usecase.NewReportUseCase(backend.NewReportRepository(client), infrapdf.NewInspector(),
			memory.NewStore[*entity.Report](time.Minute), log),
		UserUC:     usecase.NewUserUseCase(userRepo),
		ScheduleUC: usecase.NewScheduleUseCase(scheduleRepo, availability, log),
	}
}

// newTestApp arma la API completa (sin vistas) contra el backend simulado.
// No activa Immutable: los handlers no deben retener strings de la petición.
func newTestApp(t *testing.T, fb *fakeBackend) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, testDeps(t, fb))
	return app
}

// newViewApp igual que newTestApp pero con las plantillas embebidas.
func newViewApp(t *testing.T, fb *fakeBackend) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.ErrorHandler,
		Views:        html.NewFileSystem(http.FS(web.Templates()), ".html"),
		ViewsLayout:  "layouts/main",
	})
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	app.Use("/static", filesystem.New(filesystem.Config{Root: http.FS(web.Static())}))
	deps := testDeps(t, fb)
	deps.Views = true
	apphttp.Router(app, deps)
	return app
}

// browser guarda la cookie de sesión entre peticiones.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, app *fiber.App) *browser {
	return &browser{t: t, app: app, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, path string, body any) (int, []byte) {
	b.t.Helper()
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(b.t, err)
		r = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		if c.Value == "" || c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = &http.Cookie{Name: c.Name, Value: c.Value}
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp.StatusCode, raw
}

func (b *browser) login(email string) {
	b.t.Helper()
	status, raw := b.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: testPassword})
	require.Equal(b.t, fiber.StatusOK, status, string(raw))
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_LoginMeLogout(t *testing.T) {
	b := newBrowser(t, newTestApp(t, &fakeBackend{disponible: true}))

	status, _ := b.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, raw := b.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: op.Email, Password: testPassword})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	sess := decode[dto.SessionResponse](t, raw)
	assert.Equal(t, "user", sess.Usuario.Tipo)
	assert.True(t, sess.Disponibilidad.Disponible)
	assert.NotContains(t, string(raw), "access_token", "el token no sale del servidor")

	status, raw = b.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Equal(t, op.Email, decode[dto.SessionResponse](t, raw).Usuario.Email)

	status, _ = b.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = b.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAPI_LoginInvalido(t *testing.T) {
	b := newBrowser(t, newTestApp(t, &fakeBackend{disponible: true}))

	status, raw := b.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: op.Email, Password: "otra"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", decode[dto.ErrorResponse](t, raw).Code)

	status, _ = b.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "", Password: "x"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas por rol y horario
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RolesPorRuta(t *testing.T) {
	b := newBrowser(t, newTestApp(t, &fakeBackend{disponible: true}))
	b.login(auditor.Email)

	status, _ := b.do(http.MethodPost, "/api/borradores", nil)
	assert.Equal(t, fiber.StatusForbidden, status, "el auditor no crea procesos")

	status, _ = b.do(http.MethodGet, "/api/usuarios", nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	// el guard de /borradores no alcanza a otras rutas
	status, raw := b.do(http.MethodGet, "/api/procesos/7", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Equal(t, "Mezcla", decode[entity.Process](t, raw).Nombre)
}

func TestAPI_RutaInexistenteEs404(t *testing.T) {
	b := newBrowser(t, newTestApp(t, &fakeBackend{disponible: true}))

	status, raw := b.do(http.MethodGet, "/api/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, status, "sin sesión tampoco es 401: %s", raw)

	b.login(op.Email)
	status, _ = b.do(http.MethodGet, "/api/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	// las rutas reales siguen protegidas
	anon := newBrowser(t, b.app)
	status, _ = anon.do(http.MethodGet, "/api/procesos/7", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	status, _ = anon.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAPI_FueraDeHorario(t *testing.T) {
	app := newTestApp(t, &fakeBackend{disponible: false})

	operador := newBrowser(t, app)
	operador.login(op.Email)
	status, raw := operador.do(http.MethodGet, "/api/procesos/7", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "UNAVAILABLE", decode[dto.ErrorResponse](t, raw).Code)

	// la disponibilidad es pública
	status, raw = operador.do(http.MethodGet, "/api/disponibilidad", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.False(t, decode[dto.AvailabilityResponse](t, raw).Disponible)

	administrador := newBrowser(t, app)
	administrador.login(admin.Email)
	status, _ = administrador.do(http.MethodGet, "/api/procesos/7", nil)
	assert.Equal(t, fiber.StatusOK, status, "el admin entra fuera de horario")
}

func TestAPI_DisponibilidadDesconocida(t *testing.T) {
	app := newTestApp(t, &fakeBackend{availabilityDown: true})

	b := newBrowser(t, app)
	b.login(op.Email)
	status, _ := b.do(http.MethodGet, "/api/procesos/7", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)

	status, raw := b.do(http.MethodGet, "/api/disponibilidad", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.False(t, decode[dto.AvailabilityResponse](t, raw).Conocida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear y ejecutar un proceso
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CrearYEjecutarMezcla(t *testing.T) {
	fb := &fakeBackend{disponible: true}
	b := newBrowser(t, newTestApp(t, fb))
	b.login(op.Email)

	// asistente de creación
	status, raw := b.do(http.MethodPost, "/api/borradores", nil)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	draftID := decode[dto.DraftResponse](t, raw).ID
	base := "/api/borradores/" + draftID

	status, _ = b.do(http.MethodPut, base+"/nombre", dto.RenameDraftRequest{Nombre: "Mezcla"})
	require.Equal(t, fiber.StatusOK, status)
	status, _ = b.do(http.MethodPost, base+"/etapas", nil)
	require.Equal(t, fiber.StatusOK, status)

	entrada := 1
	status, _ = b.do(http.MethodPost, base+"/etapas/0/entradas", dto.StageItemRequest{ID: 1})
	require.Equal(t, fiber.StatusOK, status)
	status, _ = b.do(http.MethodPost, base+"/etapas/0/indicadores", dto.StageItemRequest{ID: 1, EntradaID: &entrada})
	require.Equal(t, fiber.StatusOK, status)
	status, raw = b.do(http.MethodPost, base+"/etapas/0/salidas", dto.StageItemRequest{ID: 1})
	require.Equal(t, fiber.StatusOK, status)
	draft := decode[dto.DraftResponse](t, raw)
	require.Len(t, draft.Etapas, 1)
	assert.Len(t, draft.Etapas[0].Salidas, 1)

	status, raw = b.do(http.MethodPost, base+"/etapas/0/entradas", dto.StageItemRequest{ID: 1})
	assert.Equal(t, fiber.StatusConflict, status, "id repetido en la colección")
	assert.Equal(t, dto.MensajeGenerico, decode[dto.ErrorResponse](t, raw).Message)

	status, raw = b.do(http.MethodPost, base+"/enviar", nil)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	created := decode[dto.SubmitDraftResponse](t, raw)
	assert.Equal(t, 7, created.ProcesoID)
	require.NotNil(t, created.Proceso)
	assert.Equal(t, "Mezcla", created.Proceso.Nombre)

	require.Len(t, fb.created, 1)
	sent := fb.created[0]
	assert.Equal(t, "Mezcla", sent.Nombre)
	require.Len(t, sent.Etapas, 1)
	assert.Equal(t, 1, sent.Etapas[0].NumEtapa)
	assert.Equal(t, []entity.StageItem{{ID: 1}}, sent.Etapas[0].Entradas)
	require.Len(t, sent.Etapas[0].Indicadores, 1)
	assert.Equal(t, 1, *sent.Etapas[0].Indicadores[0].EntradaID)

	status, _ = b.do(http.MethodGet, base, nil)
	assert.Equal(t, fiber.StatusNotFound, status, "el borrador se descarta tras crear")

	// modal de ejecución
	status, raw = b.do(http.MethodPost, "/api/ejecuciones", dto.OpenExecutionRequest{ProcesoID: 7})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	view := decode[execution.View](t, raw)
	assert.Equal(t, execution.StatusReady, view.Status)
	exec := "/api/ejecuciones/" + view.ID

	status, raw = b.do(http.MethodPost, exec+"/enviar", nil)
	assert.Equal(t, fiber.StatusBadRequest, status, "faltan entradas: %s", raw)

	status, raw = b.do(http.MethodPut, exec+"/etapas/0/entradas/0", dto.SetInputRequest{Value: "12,5"})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Equal(t, 12.5, *decode[execution.View](t, raw).Respuestas.Etapas[0].Entradas[0].Value)

	status, _ = b.do(http.MethodPut, exec+"/etapas/0/indicadores/0", dto.SetIndicatorRequest{Value: json.RawMessage(`"10-20"`)})
	require.Equal(t, fiber.StatusOK, status)

	status, raw = b.do(http.MethodPost, exec+"/etapas/0/preview", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	view = decode[execution.View](t, raw)
	assert.Equal(t, 25.0, view.Respuestas.Etapas[0].Salidas[0].Value)
	assert.True(t, view.Respuestas.Etapas[0].Indicadores[0].State)

	status, raw = b.do(http.MethodPost, exec+"/enviar", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	view = decode[execution.View](t, raw)
	assert.Equal(t, execution.StatusClosed, view.Status)
	assert.Equal(t, execution.MensajeExito, view.Mensaje)

	require.Len(t, fb.executed, 1)
	ans := fb.executed[0]
	assert.Equal(t, 7, ans.ProcesoID)
	assert.Equal(t, 12.5, *ans.Etapas[0].Entradas[0].Value)
	assert.Equal(t, "10-20", *ans.Etapas[0].Indicadores[0].Range)

	status, _ = b.do(http.MethodPut, exec+"/etapas/0/entradas/0", dto.SetInputRequest{Value: "1"})
	assert.Equal(t, fiber.StatusGone, status, "la ejecución ya terminó")
}

func TestAPI_BorradorConservaElementosEntrePeticiones(t *testing.T) {
	b := newBrowser(t, newTestApp(t, &fakeBackend{disponible: true}))
	b.login(op.Email)

	_, raw := b.do(http.MethodPost, "/api/borradores", nil)
	base := "/api/borradores/" + decode[dto.DraftResponse](t, raw).ID
	b.do(http.MethodPost, base+"/etapas", nil)
	b.do(http.MethodPost, base+"/etapas", nil)

	adds := []struct {
		etapa int
		col   string
		id    int
	}{
		{0, "entradas", 1}, {0, "indicadores", 2}, {0, "salidas", 3},
		{1, "salidas", 4}, {1, "entradas", 5}, {0, "entradas", 6},
	}
	for _, a := range adds {
		status, raw := b.do(http.MethodPost, fmt.Sprintf("%s/etapas/%d/%s", base, a.etapa, a.col), dto.StageItemRequest{ID: a.id})
		require.Equal(t, fiber.StatusOK, status, string(raw))
		// otras peticiones reutilizan los buffers de fasthttp
		b.do(http.MethodGet, "/api/procesos/7", nil)
		b.do(http.MethodGet, "/api/disponibilidad", nil)
	}

	status, raw := b.do(http.MethodGet, base, nil)
	require.Equal(t, fiber.StatusOK, status)
	d := decode[dto.DraftResponse](t, raw)
	require.Len(t, d.Etapas, 2)
	assert.Equal(t, []entity.StageItem{{ID: 1}, {ID: 6}}, d.Etapas[0].Entradas)
	assert.Equal(t, []entity.StageItem{{ID: 2}}, d.Etapas[0].Indicadores)
	assert.Equal(t, []entity.StageItem{{ID: 3}}, d.Etapas[0].Salidas)
	assert.Equal(t, []entity.StageItem{{ID: 5}}, d.Etapas[1].Entradas)
	assert.Empty(t, d.Etapas[1].Indicadores)
	assert.Equal(t, []entity.StageItem{{ID: 4}}, d.Etapas[1].Salidas)

	status, _ = b.do(http.MethodDelete, base+"/etapas/0/entradas/1", nil)
	require.Equal(t, fiber.StatusOK, status)
	b.do(http.MethodGet, "/api/procesos/7", nil)
	_, raw = b.do(http.MethodGet, base, nil)
	assert.Equal(t, []entity.StageItem{{ID: 6}}, decode[dto.DraftResponse](t, raw).Etapas[0].Entradas)
}

func TestAPI_BorradorDeOtroOperador(t *testing.T) {
	app := newTestApp(t, &fakeBackend{disponible: true})

	propietario := newBrowser(t, app)
	propietario.login(op.Email)
	_, raw := propietario.do(http.MethodPost, "/api/borradores", nil)
	id := decode[dto.DraftResponse](t, raw).ID

	otro := newBrowser(t, app)
	otro.login(admin.Email)
	status, _ := otro.do(http.MethodGet, "/api/borradores/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas
// ──────────────────────────────────────────────────────────────────────────────

func TestViews_PortadaYGuardas(t *testing.T) {
	b := newBrowser(t, newViewApp(t, &fakeBackend{disponible: true}))

	status, raw := b.do(http.MethodGet, "/", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Contains(t, string(raw), `action="/login"`)
	assert.Contains(t, string(raw), "08:00")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := b.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"), "sin sesión vuelve a la portada")
}

func TestViews_NoDisponible(t *testing.T) {
	b := newBrowser(t, newViewApp(t, &fakeBackend{disponible: false}))

	status, raw := b.do(http.MethodGet, "/no-disponible", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, string(raw), "18:00")
	assert.Contains(t, string(raw), "Resumen del día", "el resumen no exige sesión")
	assert.Contains(t, string(raw), "340")
}

func TestViews_FormulariosUsanLaAPI(t *testing.T) {
	b := newBrowser(t, newViewApp(t, &fakeBackend{disponible: true}))

	status, raw := b.do(http.MethodGet, "/static/panel.js", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), "/api/borradores")

	b.login(admin.Email)
	status, raw = b.do(http.MethodGet, "/creacion", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	page := string(raw)
	assert.Contains(t, page, `src="/static/panel.js"`)
	assert.Contains(t, page, `id="asistente"`)
	assert.Contains(t, page, `id="ejecucion"`)
	assert.Contains(t, page, `data-api="POST /api/entradas"`)

	status, raw = b.do(http.MethodGet, "/monitoreo", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Contains(t, string(raw), `data-api="GET /api/monitoreo/busqueda"`)
	assert.Contains(t, string(raw), `data-api="POST /api/reportes"`)
	assert.Contains(t, string(raw), `data-api="PUT /api/registros/{id}/fecha"`)

	status, raw = b.do(http.MethodGet, "/administracion", nil)
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Contains(t, string(raw), `data-api="POST /api/usuarios"`)
	assert.Contains(t, string(raw), `data-api="PUT /api/horario"`)
}
