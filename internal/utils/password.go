package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashClave genera un hash bcrypt para la clave en texto plano.
func HashClave(clave string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarClave compara un hash bcrypt con la clave en texto plano.
func VerificarClave(hash, clave string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(clave))
	return err == nil
}

// GenerarClaveTemporal genera una clave aleatoria segura de 12 caracteres.
func GenerarClaveTemporal() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}
