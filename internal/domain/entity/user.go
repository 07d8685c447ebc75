package entity

// Role tipo de usuario del panel.
type Role string

// Roles válidos para User.
const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleAuditor Role = "auditor"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleAuditor
}

// User usuario tal como lo expone el backend en /users.
type User struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Tipo   Role   `json:"tipo"`
}

// NewUser cuerpo de POST /users (el password viaja en texto; lo hashea el backend).
type NewUser struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Tipo     Role   `json:"tipo"`
	Password string `json:"password"`
}
