package dto

// MensajeGenerico único mensaje que ve el usuario ante un fallo del backend,
// sea de red, de validación o del servidor. El código distingue el caso.
const MensajeGenerico = "Error, por favor intente de nuevo"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
