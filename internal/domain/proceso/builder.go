package proceso

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// CreateFunc crea el proceso en el backend y devuelve su id.
type CreateFunc func(ctx context.Context, draft entity.ProcessDraft) (int, error)

// ProcessBuilder agrega una lista ordenada de etapas en una definición de proceso.
//
// Los números de etapa se asignan como len+1 al agregar y no se renumeran al
// eliminar: quitar la etapa 2 de 3 deja los números {1, 3}.
type ProcessBuilder struct {
	name    string
	stages  []entity.StageDraft
	editors []*StageEditor
}

// NewProcessBuilder crea un constructor vacío.
func NewProcessBuilder() *ProcessBuilder {
	return &ProcessBuilder{}
}

// SetName cambia el nombre del proceso.
func (b *ProcessBuilder) SetName(name string) { b.name = name }

// Name nombre actual.
func (b *ProcessBuilder) Name() string { return b.name }

// AddStage agrega una etapa vacía con número len+1 y devuelve su posición.
func (b *ProcessBuilder) AddStage() int {
	num := len(b.stages) + 1
	b.stages = append(b.stages, entity.StageDraft{
		NumEtapa:    num,
		Entradas:    []entity.StageItem{},
		Indicadores: []entity.StageItem{},
		Salidas:     []entity.StageItem{},
	})
	var ed *StageEditor
	ed = NewStageEditor(num, func(d entity.StageDraft) {
		// tras eliminar y agregar dos etapas pueden compartir número; el
		// editor se ubica por identidad, no por NumEtapa
		b.replaceFrom(ed, d)
	})
	b.editors = append(b.editors, ed)
	return len(b.stages) - 1
}

func (b *ProcessBuilder) replaceFrom(ed *StageEditor, d entity.StageDraft) {
	for i, e := range b.editors {
		if e == ed {
			b.stages[i] = d.Clone()
			return
		}
	}
}

// RemoveStage elimina por posición en el arreglo, no por número de etapa.
func (b *ProcessBuilder) RemoveStage(index int) error {
	if index < 0 || index >= len(b.stages) {
		return fmt.Errorf("posición %d: %w", index, domain.ErrNotFound)
	}
	b.stages = append(b.stages[:index:index], b.stages[index+1:]...)
	b.editors = append(b.editors[:index:index], b.editors[index+1:]...)
	return nil
}

// UpdateStage reemplaza la etapa con número NumEtapa. Si el número no existe
// o lo comparten varias etapas (hueco tras eliminar y volver a agregar)
// devuelve ErrStageMismatch sin tocar nada.
func (b *ProcessBuilder) UpdateStage(d entity.StageDraft) error {
	pos := -1
	for i := range b.stages {
		if b.stages[i].NumEtapa != d.NumEtapa {
			continue
		}
		if pos >= 0 {
			return fmt.Errorf("etapa %d ambigua: %w", d.NumEtapa, domain.ErrStageMismatch)
		}
		pos = i
	}
	if pos < 0 {
		return fmt.Errorf("etapa %d: %w", d.NumEtapa, domain.ErrStageMismatch)
	}
	b.stages[pos] = d.Clone()
	return nil
}

// Editor devuelve el editor de la etapa en la posición index.
func (b *ProcessBuilder) Editor(index int) (*StageEditor, error) {
	if index < 0 || index >= len(b.editors) {
		return nil, fmt.Errorf("posición %d: %w", index, domain.ErrNotFound)
	}
	return b.editors[index], nil
}

// Len cantidad de etapas.
func (b *ProcessBuilder) Len() int { return len(b.stages) }

// Draft foto del proceso tal como se enviaría al backend.
func (b *ProcessBuilder) Draft() entity.ProcessDraft {
	out := entity.ProcessDraft{Nombre: b.name, Etapas: make([]entity.StageDraft, len(b.stages))}
	for i, st := range b.stages {
		out.Etapas[i] = st.Clone()
	}
	return out
}

// Submit envía el borrador a create y solo lo limpia si create tuvo éxito.
// Un fallo deja nombre y etapas intactos para reintentar.
func (b *ProcessBuilder) Submit(ctx context.Context, create CreateFunc) (int, error) {
	if strings.TrimSpace(b.name) == "" {
		return 0, fmt.Errorf("nombre del proceso requerido: %w", domain.ErrInvalidInput)
	}
	if len(b.stages) == 0 {
		return 0, fmt.Errorf("el proceso necesita al menos una etapa: %w", domain.ErrInvalidInput)
	}

	id, err := create(ctx, b.Draft())
	if err != nil {
		return 0, fmt.Errorf("crear proceso: %w", err)
	}

	b.name = ""
	b.stages = nil
	b.editors = nil
	return id, nil
}
