package dto

import "encoding/json"

// OpenExecutionRequest abre el modal de ejecución de un proceso.
type OpenExecutionRequest struct {
	ProcesoID int `json:"proceso_id"`
}

// SetInputRequest valor de una entrada tal como lo escribió el operador.
type SetInputRequest struct {
	Value string `json:"value"`
}

// SetIndicatorRequest booleano para checkbox, texto para range y criteria.
type SetIndicatorRequest struct {
	Value json.RawMessage `json:"value"`
}
