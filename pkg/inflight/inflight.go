// Package inflight marca cada invocación de una operación asíncrona con un
// token. Una invocación nueva de la misma clave reemplaza a la anterior: el
// resultado de la vieja debe descartarse al volver.
package inflight

import "sync"

// Token identifica una invocación concreta.
type Token struct {
	key string
	seq uint64
}

// Key clave de la operación a la que pertenece el token.
func (t Token) Key() string { return t.key }

// Tracker lleva el último token emitido por clave. Seguro para uso concurrente.
type Tracker struct {
	mu   sync.Mutex
	last map[string]uint64
}

// New crea un tracker vacío.
func New() *Tracker {
	return &Tracker{last: make(map[string]uint64)}
}

// Begin emite un token nuevo para key, invalidando los anteriores.
func (t *Tracker) Begin(key string) Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last[key]++
	return Token{key: key, seq: t.last[key]}
}

// Current indica si tok sigue siendo la última invocación de su clave.
func (t *Tracker) Current(tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tok.seq != 0 && t.last[tok.key] == tok.seq
}

// Forget elimina la clave (p. ej. al cerrar la sesión dueña de la operación).
func (t *Tracker) Forget(key string) {
	t.mu.Lock()
	delete(t.last, key)
	t.mu.Unlock()
}
