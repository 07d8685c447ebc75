package entity

// ExecutedProcess resumen de un proceso ejecutado (/logs/latest/executed/definition/N).
type ExecutedProcess struct {
	IDProcesoEjecutado        int     `json:"id_proceso_ejecutado"`
	NoConformidades           int     `json:"no_conformidades"`
	Conformidades             int     `json:"conformidades"`
	NumEtapasConConformidades int     `json:"num_etapas_con_conformidades"`
	TasaDeExito               float64 `json:"tasa_de_exito"`
	CantidadSalida            float64 `json:"cantidad_salida"`
	CantidadEntrada           float64 `json:"cantidad_entrada"`
	Creado                    string  `json:"creado"`
	NombreProceso             string  `json:"nombre_proceso"`
	IDUsuario                 int     `json:"id_usuario"`
	NombreUsuario             string  `json:"nombre_usuario"`
}

// LogRecord registro de actividad (/logs/latest/N, /logs/search/process/executed).
type LogRecord struct {
	ID                 int    `json:"id"`
	IDUsuario          int    `json:"id_usuario"`
	Descripcion        string `json:"descripcion"`
	Creado             string `json:"creado"`
	Modificado         string `json:"modificado"`
	IDProceso          *int   `json:"id_proceso"`
	IDIndicador        *int   `json:"id_indicador"`
	IDEntrada          *int   `json:"id_entrada"`
	IDProcesoEjecutado *int   `json:"id_proceso_ejecutado"`
}

// ExecutedSearch criterios de búsqueda de registros de ejecución. Los campos
// vacíos no se envían.
type ExecutedSearch struct {
	IDProceso          string
	IDProcesoEjecutado string
	NombreProceso      string
}

// Empty indica si no hay ningún criterio.
func (s ExecutedSearch) Empty() bool {
	return s.IDProceso == "" && s.IDProcesoEjecutado == "" && s.NombreProceso == ""
}
