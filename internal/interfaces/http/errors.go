package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/domain"
)

// errorMapping status y código por error de dominio. El mensaje que ve el
// usuario es el genérico salvo en los casos de sesión y disponibilidad.
var errorMapping = []struct {
	err     error
	status  int
	code    string
	message string
}{
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión inválida o expirada"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "no tiene permisos para esta sección"},
	{domain.ErrUnavailable, fiber.StatusServiceUnavailable, "UNAVAILABLE", "servicio no disponible en este horario"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", dto.MensajeGenerico},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", dto.MensajeGenerico},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", dto.MensajeGenerico},
	{domain.ErrStageMismatch, fiber.StatusConflict, "STAGE_MISMATCH", dto.MensajeGenerico},
	{domain.ErrBusy, fiber.StatusConflict, "BUSY", "operación en curso"},
	{domain.ErrClosed, fiber.StatusGone, "CLOSED", "la ejecución ya terminó"},
	{domain.ErrSuperseded, fiber.StatusConflict, "SUPERSEDED", dto.MensajeGenerico},
	{domain.ErrNoReport, fiber.StatusNotFound, "NO_REPORT", "primero genere el reporte"},
	{domain.ErrBackend, fiber.StatusBadGateway, "BACKEND", dto.MensajeGenerico},
}

// errorResponse traduce err a status y cuerpo. Los errores sin mapeo (contexto
// cancelado, fallos locales) son 500 con el mensaje genérico.
func errorResponse(err error) (int, dto.ErrorResponse) {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return m.status, dto.ErrorResponse{Code: m.code, Message: m.message}
		}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: dto.MensajeGenerico}
}

// writeError responde err como JSON y lo registra.
func writeError(c *fiber.Ctx, err error) error {
	status, body := errorResponse(err)
	ev := requestLog(c).Warn()
	if status >= fiber.StatusInternalServerError {
		ev = requestLog(c).Error()
	}
	ev.Err(err).Str("code", body.Code).Int("status", status).Msg("petición fallida")
	return c.Status(status).JSON(body)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func badParam(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: name + " inválido"})
}

// ErrorHandler manejador de errores de la app: los *fiber.Error (ruta
// inexistente, método no permitido) conservan su status; el resto pasa por
// el mapeo de dominio.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP", Message: fe.Message})
	}
	return writeError(c, err)
}
