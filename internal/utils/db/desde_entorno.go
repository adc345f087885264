package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// DesdeEntorno arma la conexión leyendo las variables DB_* del entorno.
func DesdeEntorno() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // puerto por defecto de PostgreSQL
	}

	nombre := os.Getenv("DB_NAME")
	usuario := os.Getenv("DB_USER")
	clave := os.Getenv("DB_PASSWORD")
	return Conectar(uint(port), host, nombre, usuario, clave)
}
