package dto

// LoginRequest entrada de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest alta de usuario (el backend hashea el password).
type CreateUserRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Tipo     string `json:"tipo"`
	Password string `json:"password"`
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Tipo   string `json:"tipo"`
}

// SessionResponse usuario de la sesión y disponibilidad actual.
type SessionResponse struct {
	Usuario        UserResponse         `json:"usuario"`
	Disponibilidad AvailabilityResponse `json:"disponibilidad"`
}
