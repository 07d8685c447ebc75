package entity

import "sort"

// Selection conjunto de ids marcados en la interfaz (filas expandidas,
// elementos de reporte). Se reconstruye en cada refresco y nunca se persiste.
type Selection map[int]struct{}

// NewSelection crea la selección a partir de ids (los repetidos se ignoran).
func NewSelection(ids ...int) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Toggle agrega el id si no está, o lo quita si está.
func (s Selection) Toggle(id int) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// Has indica si el id está seleccionado.
func (s Selection) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs devuelve los ids ordenados de forma ascendente.
func (s Selection) IDs() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
