// Package auth inicio y cierre de sesión contra el backend de procesos.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/panel-acib/internal/application/dto"
	"github.com/jhoicas/panel-acib/internal/application/state"
	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
	"github.com/jhoicas/panel-acib/pkg/bearer"
)

// AuthUseCase casos de uso de autenticación: login, logout y usuario actual.
// El password nunca se guarda; solo se reenvía al backend.
type AuthUseCase struct {
	auth     repository.AuthRepository
	resolver *state.UserResolver
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(auth repository.AuthRepository, resolver *state.UserResolver, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{auth: auth, resolver: resolver, log: log.With().Str("component", "auth").Logger()}
}

// Login obtiene el token del backend y resuelve el usuario dueño del token.
// Devuelve el token para guardarlo en la sesión del servidor.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (string, *entity.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return "", nil, fmt.Errorf("login: email y password requeridos: %w", domain.ErrInvalidInput)
	}

	token, err := uc.auth.Login(ctx, email, in.Password)
	if err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("login rechazado")
		return "", nil, err
	}

	u, err := uc.resolver.Resolve(bearer.WithToken(ctx, token), token)
	if err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("token emitido pero usuario no resuelto")
		return "", nil, err
	}
	uc.log.Info().Str("email", u.Email).Str("tipo", string(u.Tipo)).Msg("sesión iniciada")
	return token, u, nil
}

// Me usuario dueño del token de la sesión.
func (uc *AuthUseCase) Me(ctx context.Context, token string) (*entity.User, error) {
	return uc.resolver.Resolve(bearer.WithToken(ctx, token), token)
}

// Logout olvida el usuario cacheado para el token.
func (uc *AuthUseCase) Logout(token string) {
	if token == "" {
		return
	}
	uc.resolver.Forget(token)
}
