package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("id duplicado en la colección")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrUnavailable   = errors.New("servicio no disponible en este horario")
	ErrBackend       = errors.New("error del backend de procesos")
	ErrSuperseded    = errors.New("resultado descartado: existe una petición más reciente")
	ErrBusy          = errors.New("operación en curso")
	ErrClosed        = errors.New("la sesión ya está cerrada")
	ErrStageMismatch = errors.New("la etapa no corresponde a ninguna posición del proceso")
	ErrNoReport      = errors.New("no hay un reporte generado")
)
