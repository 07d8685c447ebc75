package dto

// ScheduleRequest nueva ventana de atención.
type ScheduleRequest struct {
	HoraInicio    int `json:"hora_inicio"`
	DuracionHoras int `json:"duracion_horas"`
}

// AvailabilityResponse ventana vigente. Conocida es false si el backend
// nunca respondió.
type AvailabilityResponse struct {
	Disponible bool   `json:"disponible"`
	Inicio     string `json:"inicio"`
	Fin        string `json:"fin"`
	Conocida   bool   `json:"conocida"`
	Cargando   bool   `json:"cargando"`
}
