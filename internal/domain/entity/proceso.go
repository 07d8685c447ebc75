package entity

// ValueKind tipo numérico de una entrada o salida.
type ValueKind string

const (
	KindInt   ValueKind = "int"
	KindFloat ValueKind = "float"
)

// Valid indica si el tipo es uno de los admitidos por el backend.
func (k ValueKind) Valid() bool { return k == KindInt || k == KindFloat }

// IndicatorKind selecciona cuál de los tres valores del indicador está activo.
type IndicatorKind string

const (
	IndicatorRange    IndicatorKind = "range"    // rango numérico libre, ej. "10-50"
	IndicatorCriteria IndicatorKind = "criteria" // criterio libre, ej. ">300"
	IndicatorCheckbox IndicatorKind = "checkbox" // booleano
)

// Valid indica si el tipo de indicador es conocido.
func (k IndicatorKind) Valid() bool {
	return k == IndicatorRange || k == IndicatorCriteria || k == IndicatorCheckbox
}

// Input ("entrada") valor numérico que consume una etapa.
// El id lo asigna quien lo define, no se genera.
type Input struct {
	ID     int       `json:"id"`
	Nombre string    `json:"nombre"`
	Tipo   ValueKind `json:"tipo"`
}

// Indicator regla de evaluación de una etapa, opcionalmente ligada a una entrada.
type Indicator struct {
	ID        int           `json:"id"`
	Nombre    string        `json:"nombre"`
	Tipo      IndicatorKind `json:"tipo"`
	EntradaID *int          `json:"entrada_id,omitempty"`
}

// Output ("salida") resultado numérico de una etapa.
type Output struct {
	ID     int       `json:"id"`
	Nombre string    `json:"nombre"`
	Tipo   ValueKind `json:"tipo"`
}

// Stage una etapa de un proceso tal como la devuelve el backend.
type Stage struct {
	ID          int         `json:"id,omitempty"`
	NumEtapa    int         `json:"num_etapa"`
	Entradas    []Input     `json:"entradas"`
	Indicadores []Indicator `json:"indicadores"`
	Salidas     []Output    `json:"salidas"`
}

// Process secuencia ordenada de etapas. El orden es significativo.
type Process struct {
	ID        int     `json:"id"`
	Nombre    string  `json:"nombre"`
	NumEtapas int     `json:"num_etapas,omitempty"`
	Etapas    []Stage `json:"etapas"`
}

// StageItem referencia por id a una entrada, indicador o salida dentro de un borrador.
// EntradaID solo aplica a indicadores.
type StageItem struct {
	ID        int  `json:"id"`
	EntradaID *int `json:"entrada_id,omitempty"`
}

// StageDraft etapa en edición dentro del asistente de creación.
type StageDraft struct {
	NumEtapa    int         `json:"num_etapa"`
	Entradas    []StageItem `json:"entradas"`
	Indicadores []StageItem `json:"indicadores"`
	Salidas     []StageItem `json:"salidas"`
}

// Clone copia profunda del borrador de etapa.
func (s StageDraft) Clone() StageDraft {
	return StageDraft{
		NumEtapa:    s.NumEtapa,
		Entradas:    cloneItems(s.Entradas),
		Indicadores: cloneItems(s.Indicadores),
		Salidas:     cloneItems(s.Salidas),
	}
}

// ProcessDraft cuerpo de POST /process/.
type ProcessDraft struct {
	Nombre string       `json:"nombre"`
	Etapas []StageDraft `json:"etapas"`
}

func cloneItems(in []StageItem) []StageItem {
	out := make([]StageItem, len(in))
	for i, it := range in {
		out[i] = StageItem{ID: it.ID}
		if it.EntradaID != nil {
			v := *it.EntradaID
			out[i].EntradaID = &v
		}
	}
	return out
}
