package dto

import "github.com/jhoicas/panel-acib/internal/domain/entity"

// RenameDraftRequest nombre del proceso en edición.
type RenameDraftRequest struct {
	Nombre string `json:"nombre"`
}

// StageItemRequest elemento a agregar a una colección de la etapa.
type StageItemRequest struct {
	ID        int  `json:"id"`
	EntradaID *int `json:"entrada_id,omitempty"`
}

// DraftResponse borrador del asistente de creación.
type DraftResponse struct {
	ID     string              `json:"id"`
	Nombre string              `json:"nombre"`
	Etapas []entity.StageDraft `json:"etapas"`
}

// SubmitDraftResponse proceso creado. Proceso es nil si el backend no
// informó el id.
type SubmitDraftResponse struct {
	ProcesoID int             `json:"proceso_id"`
	Proceso   *entity.Process `json:"proceso,omitempty"`
}
