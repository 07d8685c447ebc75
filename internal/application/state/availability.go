package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
	"github.com/jhoicas/panel-acib/pkg/inflight"
)

// AvailabilityState foto de la ventana de disponibilidad.
type AvailabilityState struct {
	Loading   bool
	Known     bool // hubo al menos una respuesta válida del backend
	Window    entity.Availability
	CheckedAt time.Time
}

// Allows indica si un usuario con ese rol puede entrar a las rutas protegidas.
// El admin siempre entra (debe poder reconfigurar el horario); para el resto,
// una disponibilidad desconocida cuenta como no disponible.
func (s AvailabilityState) Allows(role entity.Role) bool {
	if role == entity.RoleAdmin {
		return true
	}
	return s.Known && s.Window.Disponible
}

const availabilityKey = "disponibilidad"

// AvailabilityStore disponibilidad del servicio: carga inicial al arrancar y
// refresco bajo demanda tras reconfigurar el horario.
type AvailabilityStore struct {
	repo     repository.ScheduleRepository
	store    *Store[AvailabilityState]
	inflight *inflight.Tracker
	loaded   chan struct{}
	once     sync.Once
	log      zerolog.Logger
	now      func() time.Time
}

// NewAvailabilityStore crea el contenedor en estado Loading.
func NewAvailabilityStore(repo repository.ScheduleRepository, log zerolog.Logger) *AvailabilityStore {
	return &AvailabilityStore{
		repo:     repo,
		store:    NewStore(AvailabilityState{Loading: true}),
		inflight: inflight.New(),
		loaded:   make(chan struct{}),
		log:      log.With().Str("component", "availability").Logger(),
		now:      time.Now,
	}
}

// Snapshot foto actual.
func (a *AvailabilityStore) Snapshot() AvailabilityState { return a.store.Snapshot() }

// Subscribe ver Store.Subscribe.
func (a *AvailabilityStore) Subscribe(fn func(AvailabilityState)) func() { return a.store.Subscribe(fn) }

// Load primera consulta. Libera a quienes esperan en WaitLoaded aunque falle.
func (a *AvailabilityStore) Load(ctx context.Context) error {
	defer a.once.Do(func() { close(a.loaded) })
	return a.Refresh(ctx)
}

// WaitLoaded bloquea hasta que termine la carga inicial o se cancele ctx.
func (a *AvailabilityStore) WaitLoaded(ctx context.Context) (AvailabilityState, error) {
	select {
	case <-a.loaded:
		return a.Snapshot(), nil
	case <-ctx.Done():
		return a.Snapshot(), ctx.Err()
	}
}

// Refresh vuelve a consultar /disponibilidad. Si otra llamada a Refresh
// empezó después, el resultado de esta se descarta y devuelve ErrSuperseded.
// Un fallo conserva la última ventana conocida.
func (a *AvailabilityStore) Refresh(ctx context.Context) error {
	tok := a.inflight.Begin(availabilityKey)
	a.store.Dispatch(func(s AvailabilityState) AvailabilityState {
		s.Loading = true
		return s
	})

	win, err := a.repo.Availability(ctx)
	if !a.inflight.Current(tok) {
		return domain.ErrSuperseded
	}
	if err != nil {
		a.log.Warn().Err(err).Msg("no se pudo consultar la disponibilidad")
		a.store.Dispatch(func(s AvailabilityState) AvailabilityState {
			s.Loading = false
			return s
		})
		return fmt.Errorf("consultar disponibilidad: %w", err)
	}

	next := a.store.Dispatch(func(AvailabilityState) AvailabilityState {
		return AvailabilityState{Known: true, Window: *win, CheckedAt: a.now()}
	})
	a.log.Info().Bool("disponible", next.Window.Disponible).Str("inicio", win.Inicio).Str("fin", win.Fin).Msg("disponibilidad actualizada")
	return nil
}
