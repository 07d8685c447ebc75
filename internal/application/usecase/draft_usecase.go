package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/proceso"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

// Draft borrador de proceso de un operador. El builder no es seguro para uso
// concurrente; todo acceso pasa por mu.
type Draft struct {
	mu      sync.Mutex
	id      string
	owner   string
	builder *proceso.ProcessBuilder
}

func (d *Draft) response() *dto.DraftResponse {
	draft := d.builder.Draft()
	return &dto.DraftResponse{ID: d.id, Nombre: draft.Nombre, Etapas: draft.Etapas}
}

// DraftUseCase asistente de creación de procesos.
type DraftUseCase struct {
	processes repository.ProcessRepository
	drafts    DraftStore
	log       zerolog.Logger
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(processes repository.ProcessRepository, drafts DraftStore, log zerolog.Logger) *DraftUseCase {
	return &DraftUseCase{
		processes: processes,
		drafts:    drafts,
		log:       log.With().Str("component", "drafts").Logger(),
	}
}

// Create abre un borrador vacío.
func (uc *DraftUseCase) Create(owner string) *dto.DraftResponse {
	d := &Draft{id: uuid.NewString(), owner: owner, builder: proceso.NewProcessBuilder()}
	uc.drafts.Put(d.id, d)
	return d.response()
}

// Get foto del borrador.
func (uc *DraftUseCase) Get(owner, id string) (*dto.DraftResponse, error) {
	var out *dto.DraftResponse
	err := uc.with(owner, id, func(d *Draft) error {
		out = d.response()
		return nil
	})
	return out, err
}

// Rename cambia el nombre del proceso.
func (uc *DraftUseCase) Rename(owner, id, nombre string) (*dto.DraftResponse, error) {
	return uc.mutate(owner, id, func(b *proceso.ProcessBuilder) error {
		b.SetName(nombre)
		return nil
	})
}

// AddStage agrega una etapa vacía al final.
func (uc *DraftUseCase) AddStage(owner, id string) (*dto.DraftResponse, error) {
	return uc.mutate(owner, id, func(b *proceso.ProcessBuilder) error {
		b.AddStage()
		return nil
	})
}

// RemoveStage elimina la etapa en la posición index (desde 0).
func (uc *DraftUseCase) RemoveStage(owner, id string, index int) (*dto.DraftResponse, error) {
	return uc.mutate(owner, id, func(b *proceso.ProcessBuilder) error {
		return b.RemoveStage(index)
	})
}

// AddItem agrega un elemento a una colección de la etapa en la posición index.
func (uc *DraftUseCase) AddItem(owner, id string, index int, collection string, item dto.StageItemRequest) (*dto.DraftResponse, error) {
	col, err := proceso.ParseCollection(collection)
	if err != nil {
		return nil, err
	}
	// los ids del backend son enteros positivos; 0 es un id ausente en el JSON
	if item.ID <= 0 {
		return nil, fmt.Errorf("id de %s requerido: %w", col, domain.ErrInvalidInput)
	}
	return uc.mutate(owner, id, func(b *proceso.ProcessBuilder) error {
		ed, err := b.Editor(index)
		if err != nil {
			return err
		}
		return ed.Add(col, item.ID, item.EntradaID)
	})
}

// RemoveItem quita un elemento de una colección de la etapa.
func (uc *DraftUseCase) RemoveItem(owner, id string, index int, collection string, itemID int) (*dto.DraftResponse, error) {
	col, err := proceso.ParseCollection(collection)
	if err != nil {
		return nil, err
	}
	return uc.mutate(owner, id, func(b *proceso.ProcessBuilder) error {
		ed, err := b.Editor(index)
		if err != nil {
			return err
		}
		return ed.Remove(col, itemID)
	})
}

// Submit crea el proceso en el backend. Con éxito el borrador se descarta y
// se devuelve el proceso tal como quedó guardado; con error queda intacto.
func (uc *DraftUseCase) Submit(ctx context.Context, owner, id string) (*dto.SubmitDraftResponse, error) {
	var procesoID int
	err := uc.with(owner, id, func(d *Draft) error {
		var err error
		procesoID, err = d.builder.Submit(ctx, uc.processes.Create)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			uc.log.Error().Err(err).Str("borrador", id).Msg("no se pudo crear el proceso")
		}
		return nil, err
	}
	uc.drafts.Delete(id)
	uc.log.Info().Str("borrador", id).Int("proceso", procesoID).Str("autor", owner).Msg("proceso creado")

	out := &dto.SubmitDraftResponse{ProcesoID: procesoID}
	if procesoID > 0 {
		p, err := uc.processes.GetByID(ctx, procesoID)
		if err != nil {
			// el proceso ya existe; solo falla la relectura
			uc.log.Warn().Err(err).Int("proceso", procesoID).Msg("no se pudo releer el proceso creado")
			return out, nil
		}
		out.Proceso = p
	}
	return out, nil
}

// Discard descarta el borrador.
func (uc *DraftUseCase) Discard(owner, id string) error {
	return uc.with(owner, id, func(*Draft) error {
		uc.drafts.Delete(id)
		return nil
	})
}

func (uc *DraftUseCase) mutate(owner, id string, fn func(*proceso.ProcessBuilder) error) (*dto.DraftResponse, error) {
	var out *dto.DraftResponse
	err := uc.with(owner, id, func(d *Draft) error {
		if err := fn(d.builder); err != nil {
			return err
		}
		out = d.response()
		return nil
	})
	return out, err
}

// with ejecuta fn con el borrador bloqueado. El de otro operador se reporta
// como inexistente.
func (uc *DraftUseCase) with(owner, id string, fn func(*Draft) error) error {
	d, ok := uc.drafts.Get(id)
	if !ok || d.owner != owner {
		return fmt.Errorf("borrador %s: %w", id, domain.ErrNotFound)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(d)
}
