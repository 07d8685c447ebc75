package entity

// Availability ventana horaria en la que el servicio atiende a los usuarios.
// Inicio y Fin se conservan tal como los envía el backend.
type Availability struct {
	Disponible bool   `json:"disponible"`
	Inicio     string `json:"inicio"`
	Fin        string `json:"fin"`
}

// ScheduleConfig parámetros de POST /config/horario.
type ScheduleConfig struct {
	HoraInicio    int // 0-23
	DuracionHoras int // 1-24
}
