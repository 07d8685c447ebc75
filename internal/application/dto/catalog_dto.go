package dto

import "github.com/jhoicas/panel-acib/internal/domain/entity"

// CreateInputRequest alta de entrada; el id lo asigna quien la define.
type CreateInputRequest struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
}

// CreateIndicatorRequest alta de indicador.
type CreateIndicatorRequest struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	EntradaID *int   `json:"entrada_id,omitempty"`
}

// CatalogResponse procesos, indicadores y entradas disponibles.
type CatalogResponse struct {
	Procesos    []entity.Process   `json:"procesos"`
	Indicadores []entity.Indicator `json:"indicadores"`
	Entradas    []entity.Input     `json:"entradas"`
}
