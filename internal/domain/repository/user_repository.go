package repository

import (
	"context"

	"github.com/jhoicas/panel-acib/internal/domain/entity"
)

// UserRepository define el puerto hacia los usuarios del backend (DIP).
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Create(ctx context.Context, u entity.NewUser) (*entity.User, error)
}

// AuthRepository login contra el backend; devuelve el bearer token.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (string, error)
}
