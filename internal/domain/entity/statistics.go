package entity

// StageConformity conformes / no conformes por número de etapa.
type StageConformity struct {
	NumEtapa    int `json:"num_etapa"`
	Conformes   int `json:"conformes"`
	NoConformes int `json:"no_conformes"`
}

// Conformity totales globales de conformidad.
type Conformity struct {
	Conformes   int `json:"conformes"`
	NoConformes int `json:"no_conformes"`
}

// InputOutputTotals cantidades de entrada y salida acumuladas por proceso.
type InputOutputTotals struct {
	ID              int     `json:"id"`
	Nombre          string  `json:"nombre"`
	CantidadEntrada float64 `json:"cantidad_entrada"`
	CantidadSalida  float64 `json:"cantidad_salida"`
}

// ProcessSuccess éxito promedio de un proceso.
type ProcessSuccess struct {
	IDProceso     int     `json:"id_proceso"`
	Nombre        string  `json:"nombre"`
	ExitoPromedio float64 `json:"exito_promedio"`
}

// SuccessRanking procesos con menor y mayor éxito.
type SuccessRanking struct {
	MenosExito []ProcessSuccess `json:"procesos_menos_exito"`
	MayorExito []ProcessSuccess `json:"procesos_mayor_exito"`
}

// DayFigures cifras de un día para el resumen diario.
type DayFigures struct {
	Fecha              string  `json:"fecha"`
	Indicadores        float64 `json:"indicadores"`
	Procesos           float64 `json:"procesos"`
	EntradasSalidas    float64 `json:"entradas_salidas"`
	ProcesosEjecutados float64 `json:"procesos_ejecutados"`
	Produccion         float64 `json:"produccion"`
	NoConformes        float64 `json:"no_conformes"`
}

// DailySummary comparación hoy / ayer (/resumen-dia).
type DailySummary struct {
	Hoy  DayFigures `json:"hoy"`
	Ayer DayFigures `json:"ayer"`
}
