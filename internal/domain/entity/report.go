package entity

// ReportInfo elementos seleccionados que se incluyen en el reporte.
type ReportInfo struct {
	ProcesosEjecutados []int `json:"procesos_ejecutados"`
	Registros          []int `json:"registros"`
}

// ReportRequest cuerpo de POST /latex/generate.
type ReportRequest struct {
	Titulo      string     `json:"titulo"`
	Motivo      string     `json:"motivo"`
	Usuario     int        `json:"usuario"`
	Notas       string     `json:"notas"`
	Destino     []int      `json:"destino"`
	Informacion ReportInfo `json:"informacion"`
}

// Report PDF generado y pendiente de envío.
type Report struct {
	ID      string
	Destino []int
	PDF     []byte
	Paginas int
}
