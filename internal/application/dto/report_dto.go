package dto

// GenerateReportRequest datos del reporte y elementos seleccionados.
type GenerateReportRequest struct {
	Titulo             string `json:"titulo"`
	Motivo             string `json:"motivo"`
	Notas              string `json:"notas"`
	Destino            []int  `json:"destino"`
	ProcesosEjecutados []int  `json:"procesos_ejecutados"`
	Registros          []int  `json:"registros"`
}

// ReportResponse reporte generado y pendiente de envío.
type ReportResponse struct {
	ID      string `json:"id"`
	Paginas int    `json:"paginas"`
	Bytes   int    `json:"bytes"`
	Destino []int  `json:"destino"`
}
