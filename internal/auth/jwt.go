package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// AccessTTL es el tiempo de vida del token de acceso.
const AccessTTL = 24 * time.Hour

// Init carga el secreto de firma. Debe llamarse una sola vez desde el
// punto de entrada del proceso, antes de atender requests.
func Init(secreto string) error {
	if secreto == "" {
		return errors.New("JWT_SECRET no definida")
	}
	jwtSecret = []byte(secreto)
	return nil
}

type Claims struct {
	UserID  uint `json:"userId"`
	EsAdmin bool `json:"esAdmin"`
	jwt.RegisteredClaims
}

// GenerarToken genera un JWT HS256 con validez de 24h.
func GenerarToken(userID uint, esAdmin bool) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("auth no inicializado")
	}
	claims := &Claims{
		UserID:  userID,
		EsAdmin: esAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidarToken valida el token y devuelve las claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido o expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("no fue posible extraer las claims")
	}
	return claims, nil
}
