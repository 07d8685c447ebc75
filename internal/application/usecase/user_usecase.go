package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

// minPasswordLen largo mínimo aceptado en el alta.
const minPasswordLen = 6

// UserUseCase administración de usuarios del panel.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto hacia el backend.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List usuarios registrados.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out, nil
}

// GetByEmail obtiene un usuario por email.
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	r := ToUserResponse(u)
	return &r, nil
}

// Create valida y da de alta un usuario.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Tipo)
	nombre := strings.TrimSpace(in.Nombre)
	email := strings.TrimSpace(in.Email)
	switch {
	case nombre == "":
		return nil, fmt.Errorf("usuario: nombre requerido: %w", domain.ErrInvalidInput)
	case !validEmail(email):
		return nil, fmt.Errorf("usuario: email %q: %w", email, domain.ErrInvalidInput)
	case !role.Valid():
		return nil, fmt.Errorf("usuario: tipo %q: %w", in.Tipo, domain.ErrInvalidInput)
	case len(in.Password) < minPasswordLen:
		return nil, fmt.Errorf("usuario: password de al menos %d caracteres: %w", minPasswordLen, domain.ErrInvalidInput)
	}

	u, err := uc.repo.Create(ctx, entity.NewUser{Nombre: nombre, Email: email, Tipo: role, Password: in.Password})
	if err != nil {
		return nil, err
	}
	r := ToUserResponse(u)
	return &r, nil
}

// ToUserResponse usuario sin credenciales.
func ToUserResponse(u *entity.User) dto.UserResponse {
	if u == nil {
		return dto.UserResponse{}
	}
	return dto.UserResponse{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Tipo: string(u.Tipo)}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
