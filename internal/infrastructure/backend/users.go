package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
)

var (
	_ repository.UserRepository = (*UserRepo)(nil)
	_ repository.AuthRepository = (*AuthRepo)(nil)
)

// UserRepo usuarios del backend.
type UserRepo struct {
	c *Client
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(c *Client) *UserRepo {
	return &UserRepo{c: c}
}

// AuthRepo login contra /auth/login.
type AuthRepo struct {
	c *Client
}

// NewAuthRepository construye el adaptador de autenticación.
func NewAuthRepository(c *Client) *AuthRepo {
	return &AuthRepo{c: c}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login POST /auth/login. El email viaja como username.
func (r *AuthRepo) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := r.c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Username: email, Password: password},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("backend: login sin access_token: %w", domain.ErrBackend)
	}
	return resp.AccessToken, nil
}

// GetByEmail GET /users/{email}.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.c.getJSON(ctx, "/users/"+url.PathEscape(email), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// List GET /users (requiere bearer).
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := r.c.getJSON(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /users (requiere bearer).
func (r *UserRepo) Create(ctx context.Context, u entity.NewUser) (*entity.User, error) {
	var created entity.User
	if err := r.c.do(ctx, request{method: http.MethodPost, path: "/users", body: u}, &created); err != nil {
		return nil, err
	}
	if created.Email == "" {
		created = entity.User{Nombre: u.Nombre, Email: u.Email, Tipo: u.Tipo}
	}
	return &created, nil
}
