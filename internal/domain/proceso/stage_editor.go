// Package proceso contiene el modelo de edición de procesos: el editor de
// etapas, el constructor de procesos y el cálculo de la barra de carbono.
// No hace I/O; la creación en el backend se recibe como función.
package proceso

import (
	"fmt"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// Collection nombre de una de las tres colecciones de una etapa.
type Collection string

const (
	Entradas    Collection = "entradas"
	Indicadores Collection = "indicadores"
	Salidas     Collection = "salidas"
)

// ParseCollection valida el nombre recibido por la API. Devuelve siempre la
// constante: s puede apuntar al buffer de la petición, que fasthttp reutiliza.
func ParseCollection(s string) (Collection, error) {
	switch s {
	case string(Entradas):
		return Entradas, nil
	case string(Indicadores):
		return Indicadores, nil
	case string(Salidas):
		return Salidas, nil
	}
	return "", fmt.Errorf("colección %q: %w", s, domain.ErrInvalidInput)
}

// StageEditor mantiene las entradas, indicadores y salidas de una etapa y
// notifica al padre con la foto completa tras cada cambio.
type StageEditor struct {
	num    int
	items  map[Collection][]entity.StageItem
	notify func(entity.StageDraft)
}

// NewStageEditor crea el editor de la etapa num. notify puede ser nil.
func NewStageEditor(num int, notify func(entity.StageDraft)) *StageEditor {
	return &StageEditor{
		num: num,
		items: map[Collection][]entity.StageItem{
			Entradas:    {},
			Indicadores: {},
			Salidas:     {},
		},
		notify: notify,
	}
}

// Num número de etapa que reporta el editor.
func (e *StageEditor) Num() int { return e.num }

// Add agrega el id a la colección. entradaID solo se conserva en indicadores.
// Un id repetido dentro de la misma colección se rechaza con ErrDuplicate.
func (e *StageEditor) Add(col Collection, id int, entradaID *int) error {
	list, ok := e.items[col]
	if !ok {
		return fmt.Errorf("colección %q: %w", col, domain.ErrInvalidInput)
	}
	for _, it := range list {
		if it.ID == id {
			return fmt.Errorf("%s %d: %w", col, id, domain.ErrDuplicate)
		}
	}

	item := entity.StageItem{ID: id}
	if col == Indicadores && entradaID != nil {
		v := *entradaID
		item.EntradaID = &v
	}
	e.items[col] = append(list, item)
	e.emit()
	return nil
}

// Remove quita el primer elemento con ese id.
func (e *StageEditor) Remove(col Collection, id int) error {
	list, ok := e.items[col]
	if !ok {
		return fmt.Errorf("colección %q: %w", col, domain.ErrInvalidInput)
	}
	for i, it := range list {
		if it.ID == id {
			next := make([]entity.StageItem, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			e.items[col] = next
			e.emit()
			return nil
		}
	}
	return fmt.Errorf("%s %d: %w", col, id, domain.ErrNotFound)
}

// Snapshot foto independiente del estado actual.
func (e *StageEditor) Snapshot() entity.StageDraft {
	return entity.StageDraft{
		NumEtapa:    e.num,
		Entradas:    e.items[Entradas],
		Indicadores: e.items[Indicadores],
		Salidas:     e.items[Salidas],
	}.Clone()
}

func (e *StageEditor) emit() {
	if e.notify != nil {
		e.notify(e.Snapshot())
	}
}
