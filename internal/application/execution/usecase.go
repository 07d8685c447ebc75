package execution

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
	"github.com/jhoicas/panel-acib/pkg/inflight"
)

// Sessions almacén de sesiones abiertas con expiración.
type Sessions interface {
	Put(id string, s *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
	ExpireIn(id string, d time.Duration)
}

// UseCase casos de uso del modal de ejecución.
type UseCase struct {
	processes  repository.ProcessRepository
	executions repository.ExecutionRepository
	sessions   Sessions
	inflight   *inflight.Tracker
	closeDelay time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso. closeDelay es el tiempo que la
// confirmación sigue disponible tras ejecutar.
func NewUseCase(
	processes repository.ProcessRepository,
	executions repository.ExecutionRepository,
	sessions Sessions,
	closeDelay time.Duration,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		processes:  processes,
		executions: executions,
		sessions:   sessions,
		inflight:   inflight.New(),
		closeDelay: closeDelay,
		log:        log.With().Str("component", "execution").Logger(),
		now:        time.Now,
	}
}

// Open carga el proceso y abre una sesión para owner.
func (uc *UseCase) Open(ctx context.Context, owner string, processID int) (View, error) {
	sess := NewSession(uuid.NewString(), owner)

	p, err := uc.processes.GetByID(ctx, processID)
	if err != nil {
		sess.Fail()
		uc.log.Error().Err(err).Int("proceso", processID).Msg("no se pudo cargar el proceso")
		return sess.View(), fmt.Errorf("cargar proceso %d: %w", processID, err)
	}
	if err := sess.Load(p); err != nil {
		return View{}, err
	}
	uc.sessions.Put(sess.ID(), sess)
	return sess.View(), nil
}

// Get foto de la sesión.
func (uc *UseCase) Get(owner, id string) (View, error) {
	sess, err := uc.session(owner, id)
	if err != nil {
		return View{}, err
	}
	return sess.View(), nil
}

// SetInput ver Session.SetInput.
func (uc *UseCase) SetInput(owner, id string, stage, index int, raw string) (View, error) {
	sess, err := uc.session(owner, id)
	if err != nil {
		return View{}, err
	}
	if err := sess.SetInput(stage, index, raw); err != nil {
		return sess.View(), err
	}
	return sess.View(), nil
}

// SetIndicator ver Session.SetIndicator.
func (uc *UseCase) SetIndicator(owner, id string, stage, index int, raw json.RawMessage) (View, error) {
	sess, err := uc.session(owner, id)
	if err != nil {
		return View{}, err
	}
	if err := sess.SetIndicator(stage, index, raw); err != nil {
		return sess.View(), err
	}
	return sess.View(), nil
}

// Preview evalúa la etapa en el backend. Si mientras tanto se pidió otra
// previsualización de la misma etapa, esta respuesta se descarta y se
// devuelve ErrSuperseded.
func (uc *UseCase) Preview(ctx context.Context, owner, id string, stage int) (View, error) {
	sess, err := uc.session(owner, id)
	if err != nil {
		return View{}, err
	}
	snap, err := sess.BeginPreview(stage)
	if err != nil {
		return sess.View(), err
	}

	tok := uc.inflight.Begin(previewKey(id, stage))
	res, callErr := uc.executions.PreviewEvaluation(ctx, snap)
	current := uc.inflight.Current(tok)
	sess.FinishPreview(stage, res, current, callErr)

	if !current {
		uc.log.Debug().Str("sesion", id).Int("etapa", stage).Msg("previsualización reemplazada")
		return sess.View(), domain.ErrSuperseded
	}
	if callErr != nil {
		uc.log.Error().Err(callErr).Str("sesion", id).Int("etapa", stage).Msg("previsualización fallida")
		return sess.View(), fmt.Errorf("previsualizar etapa %d: %w", stage, callErr)
	}
	return sess.View(), nil
}

// Submit envía la ejecución completa. Con éxito la sesión queda cerrada y
// legible durante closeDelay; luego expira.
func (uc *UseCase) Submit(ctx context.Context, owner, id string) (View, error) {
	sess, err := uc.session(owner, id)
	if err != nil {
		return View{}, err
	}
	answer, err := sess.BeginSubmit()
	if err != nil {
		return sess.View(), err
	}

	callErr := uc.executions.Submit(ctx, answer)
	sess.FinishSubmit(callErr, uc.now().Add(uc.closeDelay))
	if callErr != nil {
		uc.log.Error().Err(callErr).Str("sesion", id).Int("proceso", answer.ProcesoID).Msg("ejecución fallida")
		return sess.View(), fmt.Errorf("ejecutar proceso %d: %w", answer.ProcesoID, callErr)
	}

	uc.log.Info().Str("sesion", id).Int("proceso", answer.ProcesoID).Str("operador", owner).Msg("proceso ejecutado")
	uc.sessions.ExpireIn(id, uc.closeDelay)
	uc.forgetPreviews(id, len(answer.Etapas))
	return sess.View(), nil
}

// Close descarta la sesión (el operador cerró el modal).
func (uc *UseCase) Close(owner, id string) error {
	sess, err := uc.session(owner, id)
	if err != nil {
		return err
	}
	uc.sessions.Delete(id)
	uc.forgetPreviews(id, len(sess.View().Respuestas.Etapas))
	return nil
}

// session busca la sesión; la de otro operador se reporta como inexistente.
func (uc *UseCase) session(owner, id string) (*Session, error) {
	sess, ok := uc.sessions.Get(id)
	if !ok || sess.Owner() != owner {
		return nil, fmt.Errorf("sesión de ejecución %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

func (uc *UseCase) forgetPreviews(id string, stages int) {
	for i := 0; i < stages; i++ {
		uc.inflight.Forget(previewKey(id, i))
	}
}

func previewKey(id string, stage int) string {
	return id + "/" + strconv.Itoa(stage)
}
