// Package bearer transporta el token del backend en el context.Context de
// cada petición.
package bearer

import "context"

type tokenKey struct{}

// WithToken adjunta token a ctx. Un token vacío deja ctx igual.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// FromContext devuelve el token adjunto a ctx, o "".
func FromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}
