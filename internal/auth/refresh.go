package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RefreshTTL es el tiempo de vida de los refresh tokens.
const RefreshTTL = 30 * 24 * time.Hour

// RefreshToken es el registro persistido de un refresh token rotativo.
// Solo se guarda el hash; el valor crudo viaja una única vez al cliente.
type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	FamilyID  string `gorm:"index"`
	Hash      string `gorm:"uniqueIndex"`
	EsAdmin   bool
	ExpiresAt time.Time `gorm:"index"`
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Migrate crea la tabla de refresh tokens.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&RefreshToken{})
}

func genRaw() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hashRaw(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return base64.RawURLEncoding.EncodeToString(h[:])
}

// EmitirTokens genera el par access+refresh tras un login válido y
// persiste el refresh. Devuelve (access, refresh crudo, error).
func EmitirTokens(db *gorm.DB, userID uint, esAdmin bool) (string, string, error) {
	access, err := GenerarToken(userID, esAdmin)
	if err != nil {
		return "", "", err
	}

	raw, err := genRaw()
	if err != nil {
		return "", "", err
	}

	rt := RefreshToken{
		UserID:    userID,
		FamilyID:  fmt.Sprintf("fam-%d", userID),
		Hash:      hashRaw(raw),
		EsAdmin:   esAdmin,
		ExpiresAt: time.Now().Add(RefreshTTL),
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", "", err
	}
	return access, raw, nil
}

// Rotar revoca el refresh recibido y emite un nuevo par access+refresh,
// preservando el rol guardado en el token.
func Rotar(db *gorm.DB, raw string) (string, string, error) {
	var cur RefreshToken
	if err := db.Where("hash = ?", hashRaw(raw)).First(&cur).Error; err != nil {
		return "", "", fmt.Errorf("refresh desconocido: %w", err)
	}
	if cur.RevokedAt != nil || time.Now().After(cur.ExpiresAt) {
		return "", "", fmt.Errorf("refresh revocado o vencido")
	}

	now := time.Now()
	if err := db.Model(&cur).Update("revoked_at", &now).Error; err != nil {
		return "", "", err
	}

	access, err := GenerarToken(cur.UserID, cur.EsAdmin)
	if err != nil {
		return "", "", err
	}
	newRaw, err := genRaw()
	if err != nil {
		return "", "", err
	}
	newRT := RefreshToken{
		UserID:    cur.UserID,
		FamilyID:  cur.FamilyID,
		Hash:      hashRaw(newRaw),
		EsAdmin:   cur.EsAdmin,
		ExpiresAt: time.Now().Add(RefreshTTL),
	}
	if err := db.Create(&newRT).Error; err != nil {
		return "", "", err
	}
	return access, newRaw, nil
}

// Revocar invalida un refresh token (logout).
func Revocar(db *gorm.DB, raw string) {
	now := time.Now()
	_ = db.Model(&RefreshToken{}).Where("hash = ?", hashRaw(raw)).Update("revoked_at", &now).Error
}
