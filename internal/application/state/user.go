package state

import (
	"context"
	"fmt"

	"github.com/jhoicas/panel-acib/internal/domain"
	"github.com/jhoicas/panel-acib/internal/domain/entity"
	"github.com/jhoicas/panel-acib/internal/domain/repository"
	pkgjwt "github.com/jhoicas/panel-acib/pkg/jwt"
)

// UserCache caché de usuarios resueltos, indexada por token.
type UserCache interface {
	Get(key string) (entity.User, bool)
	Put(key string, u entity.User)
	Delete(key string)
}

// UserResolver obtiene el usuario de la sesión a partir del bearer token:
// decodifica el subject (email) y consulta /users/{email}.
type UserResolver struct {
	users  repository.UserRepository
	cache  UserCache
	secret string
}

// NewUserResolver secret puede estar vacío (ver pkg/jwt.Decode).
func NewUserResolver(users repository.UserRepository, cache UserCache, secret string) *UserResolver {
	return &UserResolver{users: users, cache: cache, secret: secret}
}

// Resolve devuelve el usuario dueño del token. Cualquier fallo se informa como
// ErrUnauthorized envolviendo la causa; el llamador debe limpiar la sesión.
// ctx debe llevar el token para la llamada al backend.
func (r *UserResolver) Resolve(ctx context.Context, token string) (*entity.User, error) {
	claims, err := pkgjwt.Decode(r.secret, token)
	if err != nil {
		r.cache.Delete(token)
		return nil, fmt.Errorf("%v: %w", err, domain.ErrUnauthorized)
	}
	if u, ok := r.cache.Get(token); ok {
		return &u, nil
	}

	u, err := r.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("usuario %s: %v: %w", claims.Subject, err, domain.ErrUnauthorized)
	}
	if !u.Tipo.Valid() {
		return nil, fmt.Errorf("usuario %s con rol %q: %w", claims.Subject, u.Tipo, domain.ErrForbidden)
	}
	r.cache.Put(token, *u)
	return u, nil
}

// Forget olvida el usuario asociado al token (logout).
func (r *UserResolver) Forget(token string) {
	r.cache.Delete(token)
}
