// Package state contiene los contenedores de estado compartido del panel:
// disponibilidad del servicio y usuario de la sesión. Cada contenedor expone
// fotos de solo lectura y un único punto de escritura.
package state

import "sync"

// Store contenedor observable de un valor T. Las lecturas devuelven una copia
// (T debe ser un tipo valor); toda escritura pasa por Dispatch.
type Store[T any] struct {
	mu    sync.RWMutex
	state T
	subs  map[int]func(T)
	next  int
}

// NewStore crea el contenedor con el estado inicial.
func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{state: initial, subs: make(map[int]func(T))}
}

// Snapshot foto del estado actual.
func (s *Store[T]) Snapshot() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch aplica reduce al estado actual y notifica a los suscriptores con
// el resultado. Las notificaciones se hacen fuera del lock.
func (s *Store[T]) Dispatch(reduce func(T) T) T {
	s.mu.Lock()
	s.state = reduce(s.state)
	next := s.state
	subs := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registra fn para cada cambio; devuelve la función que la da de baja.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
