// Package execution implementa el modal de ejecución de procesos: carga la
// definición, mantiene el espejo de respuestas, previsualiza etapas contra el
// backend y envía la ejecución completa.
package execution

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// Status estado del modal.
type Status string

const (
	StatusLoading    Status = "loading"
	StatusReady      Status = "ready"
	StatusPreviewing Status = "previewing"
	StatusSubmitting Status = "submitting"
	StatusClosed     Status = "closed"
	StatusError      Status = "error"
)

// Mensajes que ve el operador. El detalle técnico de cada fallo se registra
// en el log, no se muestra.
const (
	MensajeExito          = "Proceso ejecutado exitosamente"
	MensajeErrorCarga     = "Error al cargar los datos del proceso. Por favor, intente de nuevo."
	MensajeErrorPreview   = "Error al obtener la previsualización. Intente de nuevo."
	MensajeErrorEjecucion = "Error al ejecutar el proceso. Por favor, intente de nuevo."
)

// View foto de una sesión para la interfaz.
type View struct {
	ID         string                 `json:"id"`
	Status     Status                 `json:"estado"`
	Proceso    entity.Process         `json:"proceso"`
	Respuestas entity.ExecutionAnswer `json:"respuestas"`
	Error      string                 `json:"error,omitempty"`
	Mensaje    string                 `json:"mensaje,omitempty"`
	ClosesAt   *time.Time             `json:"cierra,omitempty"`
}

// Session una ejecución abierta. Todos los métodos son seguros para uso
// concurrente; las llamadas de red quedan fuera del lock.
type Session struct {
	mu       sync.Mutex
	id       string
	owner    string
	status   Status
	process  entity.Process
	answer   entity.ExecutionAnswer
	pending  int // previsualizaciones en vuelo
	lastErr  string
	message  string
	closesAt time.Time
}

// NewSession crea la sesión en estado loading.
func NewSession(id, owner string) *Session {
	return &Session{id: id, owner: owner, status: StatusLoading}
}

// ID identificador de la sesión.
func (s *Session) ID() string { return s.id }

// Owner email del operador que abrió la sesión.
func (s *Session) Owner() string { return s.owner }

// Load recibe la definición y arma el espejo: entradas sin valor,
// indicadores con el slot de su tipo y salidas en cero.
func (s *Session) Load(p *entity.Process) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusLoading {
		return fmt.Errorf("sesión en estado %s: %w", s.status, domain.ErrInvalidInput)
	}
	s.process = *p
	s.answer = entity.NewExecutionAnswer(p)
	s.status = StatusReady
	return nil
}

// Fail marca el fallo de la carga inicial.
func (s *Session) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failLocked(MensajeErrorCarga)
}

func (s *Session) failLocked(msg string) {
	s.status = StatusError
	s.lastErr = msg
}

// View foto independiente del estado.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		ID:         s.id,
		Status:     s.status,
		Proceso:    s.process,
		Respuestas: s.answer.Clone(),
		Error:      s.lastErr,
		Mensaje:    s.message,
	}
	if !s.closesAt.IsZero() {
		at := s.closesAt
		v.ClosesAt = &at
	}
	return v
}

// editable estados desde los que el operador puede tocar el formulario.
func (s *Session) editableLocked() error {
	switch s.status {
	case StatusReady, StatusPreviewing, StatusError:
		return nil
	case StatusSubmitting:
		return domain.ErrBusy
	case StatusClosed:
		return domain.ErrClosed
	}
	return fmt.Errorf("sesión en estado %s: %w", s.status, domain.ErrInvalidInput)
}

// afterEditLocked una edición tras un error vuelve a habilitar el formulario.
func (s *Session) afterEditLocked() {
	if s.status == StatusError {
		s.status = StatusReady
		s.lastErr = ""
	}
}

func (s *Session) stageLocked(stage int) (*entity.Stage, *entity.StageAnswer, error) {
	if stage < 0 || stage >= len(s.answer.Etapas) {
		return nil, nil, fmt.Errorf("etapa %d: %w", stage, domain.ErrNotFound)
	}
	return &s.process.Etapas[stage], &s.answer.Etapas[stage], nil
}

// SetInput escribe la entrada index de la etapa stage (posiciones desde 0).
// raw se valida según el tipo de la entrada; vacío deja la entrada sin valor.
// No invalida salidas de previsualizaciones anteriores.
func (s *Session) SetInput(stage, index int, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	def, ans, err := s.stageLocked(stage)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(ans.Entradas) {
		return fmt.Errorf("entrada %d: %w", index, domain.ErrNotFound)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		ans.Entradas[index].Value = nil
		s.afterEditLocked()
		return nil
	}
	v, err := parseValue(def.Entradas[index].Tipo, raw)
	if err != nil {
		return fmt.Errorf("entrada %s: %w", def.Entradas[index].Nombre, err)
	}
	ans.Entradas[index].Value = &v
	s.afterEditLocked()
	return nil
}

func parseValue(kind entity.ValueKind, raw string) (float64, error) {
	if kind == entity.KindInt {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%q no es entero: %w", raw, domain.ErrInvalidInput)
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%q no es numérico: %w", raw, domain.ErrInvalidInput)
	}
	// ParseFloat acepta NaN e Inf, que no se pueden serializar a JSON
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q no es un número finito: %w", raw, domain.ErrInvalidInput)
	}
	return f, nil
}

// SetIndicator escribe el valor del indicador en el slot activo de su tipo:
// booleano para checkbox, texto para range y criteria.
func (s *Session) SetIndicator(stage, index int, raw json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	def, ans, err := s.stageLocked(stage)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(ans.Indicadores) {
		return fmt.Errorf("indicador %d: %w", index, domain.ErrNotFound)
	}

	ia := &ans.Indicadores[index]
	switch def.Indicadores[index].Tipo {
	case entity.IndicatorCheckbox:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return fmt.Errorf("indicador %s espera booleano: %w", def.Indicadores[index].Nombre, domain.ErrInvalidInput)
		}
		ia.Checkbox = &b
	case entity.IndicatorRange, entity.IndicatorCriteria:
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return fmt.Errorf("indicador %s espera texto: %w", def.Indicadores[index].Nombre, domain.ErrInvalidInput)
		}
		if def.Indicadores[index].Tipo == entity.IndicatorRange {
			ia.Range = &str
		} else {
			ia.Criteria = &str
		}
	default:
		return fmt.Errorf("indicador %s de tipo %q: %w", def.Indicadores[index].Nombre, def.Indicadores[index].Tipo, domain.ErrInvalidInput)
	}
	s.afterEditLocked()
	return nil
}

// BeginPreview pasa a previewing y devuelve la foto de la etapa a evaluar.
func (s *Session) BeginPreview(stage int) (entity.StageAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return entity.StageAnswer{}, err
	}
	_, ans, err := s.stageLocked(stage)
	if err != nil {
		return entity.StageAnswer{}, err
	}
	s.pending++
	s.status = StatusPreviewing
	s.lastErr = ""
	return ans.Clone(), nil
}

// FinishPreview cierra una previsualización. Si current es false el resultado
// pertenece a una invocación reemplazada y se ignora. Solo se modifica la
// etapa stage: salidas por id e indicadores por id (o posición si el backend
// no informa id). La forma del espejo no cambia.
func (s *Session) FinishPreview(stage int, res *entity.PreviewResult, current bool, callErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending > 0 {
		s.pending--
	}
	if s.status == StatusClosed || s.status == StatusSubmitting {
		return
	}
	settle := func() {
		if s.pending == 0 {
			s.status = StatusReady
		}
	}

	if !current {
		settle()
		return
	}
	if callErr != nil {
		s.failLocked(MensajeErrorPreview)
		return
	}
	_, ans, err := s.stageLocked(stage)
	if err != nil {
		s.failLocked(MensajeErrorPreview)
		return
	}
	applyPreview(ans, res)
	settle()
}

func applyPreview(ans *entity.StageAnswer, res *entity.PreviewResult) {
	if res == nil {
		return
	}
	for _, out := range res.Salidas {
		for i := range ans.Salidas {
			if ans.Salidas[i].ID == out.ID {
				ans.Salidas[i].Value = out.Value
				break
			}
		}
	}
	for pos, ind := range res.Indicadores {
		target := -1
		if ind.ID != 0 {
			for i := range ans.Indicadores {
				if ans.Indicadores[i].ID == ind.ID {
					target = i
					break
				}
			}
		}
		if target < 0 && pos < len(ans.Indicadores) {
			target = pos
		}
		if target >= 0 {
			ans.Indicadores[target].State = ind.State
		}
	}
}

// BeginSubmit pasa a submitting y devuelve el conjunto completo de respuestas.
// Rechaza con ErrBusy si ya hay un envío o una previsualización en curso y
// exige todas las entradas con valor.
func (s *Session) BeginSubmit() (entity.ExecutionAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.status {
	case StatusSubmitting, StatusPreviewing:
		return entity.ExecutionAnswer{}, domain.ErrBusy
	case StatusClosed:
		return entity.ExecutionAnswer{}, domain.ErrClosed
	case StatusLoading:
		return entity.ExecutionAnswer{}, fmt.Errorf("sesión cargando: %w", domain.ErrInvalidInput)
	}
	for i, st := range s.answer.Etapas {
		for j, in := range st.Entradas {
			if in.Value == nil {
				return entity.ExecutionAnswer{}, fmt.Errorf("etapa %d: entrada %s sin valor: %w",
					st.NumEtapa, s.process.Etapas[i].Entradas[j].Nombre, domain.ErrInvalidInput)
			}
		}
	}
	s.status = StatusSubmitting
	s.lastErr = ""
	return s.answer.Clone(), nil
}

// FinishSubmit con éxito cierra la sesión (queda legible hasta closesAt); con
// error la deja en error para reintentar.
func (s *Session) FinishSubmit(callErr error, closesAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if callErr != nil {
		s.failLocked(MensajeErrorEjecucion)
		return
	}
	s.status = StatusClosed
	s.message = MensajeExito
	s.closesAt = closesAt
}
