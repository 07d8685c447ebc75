package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims de los tokens que emite el backend en /auth/login.
// El subject es el email del usuario; el rol no viaja en el token y se
// consulta en /users/{email}.
type Claims struct {
	jwt.RegisteredClaims
}

// Token resultado de decodificar un bearer token.
type Token struct {
	Subject   string
	ExpiresAt time.Time // cero si el token no tiene exp
}

// Generate firma un token HS256 con el subject indicado. Lo usan los tests y
// los entornos locales que simulan el backend.
func Generate(secret, subject string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Decode extrae el subject del token.
//
// Con secret vacío el token se decodifica sin verificar la firma (el panel no
// conoce la clave del backend) pero sí se rechaza si está expirado. Con secret
// se valida firma HMAC y expiración.
func Decode(secret, tokenString string) (*Token, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}

	claims := &Claims{}
	if secret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, fmt.Errorf("jwt: decodificar: %w", err)
		}
		if claims.ExpiresAt != nil && !claims.ExpiresAt.After(time.Now()) {
			return nil, fmt.Errorf("jwt: token expirado")
		}
	} else {
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil {
			return nil, fmt.Errorf("jwt: validar: %w", err)
		}
		if !token.Valid {
			return nil, fmt.Errorf("jwt: claims inválidos")
		}
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("jwt: token sin subject")
	}
	out := &Token{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
