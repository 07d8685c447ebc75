// Package memory guarda en proceso el estado efímero del panel (borradores,
// sesiones de ejecución, reportes generados, usuarios resueltos) con
// expiración por TTL.
package memory

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store almacén tipado con expiración sobre go-cache. Es seguro para uso concurrente.
type Store[T any] struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore crea un almacén cuyos elementos expiran tras ttl sin ser escritos.
// ttl <= 0 significa sin expiración.
func NewStore[T any](ttl time.Duration) *Store[T] {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	cleanup := 10 * time.Minute
	if ttl > 0 && ttl < cleanup {
		cleanup = ttl
	}
	return &Store[T]{cache: gocache.New(ttl, cleanup), ttl: ttl}
}

// Put guarda v con el TTL por defecto del almacén.
func (s *Store[T]) Put(key string, v T) {
	s.cache.Set(key, v, gocache.DefaultExpiration)
}

// Get devuelve el valor y si existe (y no expiró).
func (s *Store[T]) Get(key string) (T, bool) {
	var zero T
	raw, found := s.cache.Get(key)
	if !found {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// ExpireIn acorta la vida del elemento a d; no hace nada si no existe.
func (s *Store[T]) ExpireIn(key string, d time.Duration) {
	raw, found := s.cache.Get(key)
	if !found {
		return
	}
	s.cache.Set(key, raw, d)
}

// Delete elimina el elemento.
func (s *Store[T]) Delete(key string) {
	s.cache.Delete(key)
}

// Len cantidad de elementos, incluidos los expirados aún no purgados.
func (s *Store[T]) Len() int {
	return s.cache.ItemCount()
}
