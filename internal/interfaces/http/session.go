package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionToken = "token"

// SessionManager guarda el bearer token del backend en la sesión de Fiber.
// Es el único estado del navegador que persiste entre peticiones.
type SessionManager struct {
	store *session.Store
}

// NewSessionManager envuelve el store de sesiones.
func NewSessionManager(store *session.Store) *SessionManager {
	return &SessionManager{store: store}
}

// Token devuelve el token guardado, o "".
func (m *SessionManager) Token(c *fiber.Ctx) string {
	sess, err := m.store.Get(c)
	if err != nil {
		return ""
	}
	tok, _ := sess.Get(sessionToken).(string)
	return tok
}

// SetToken guarda el token en una sesión nueva (el id anterior se descarta).
func (m *SessionManager) SetToken(c *fiber.Ctx, token string) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fmt.Errorf("sesión: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("sesión: regenerar: %w", err)
	}
	sess.Set(sessionToken, token)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("sesión: guardar: %w", err)
	}
	return nil
}

// Clear destruye la sesión.
func (m *SessionManager) Clear(c *fiber.Ctx) {
	sess, err := m.store.Get(c)
	if err != nil {
		return
	}
	if err := sess.Destroy(); err != nil {
		requestLog(c).Warn().Err(err).Msg("no se pudo destruir la sesión")
	}
}
