package auth

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
)

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
}

// RefreshHandler trata POST /token/refresh: rota el refresh recibido y
// devuelve un nuevo par de tokens.
func RefreshHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
			http.Error(w, "refresh token ausente", http.StatusBadRequest)
			return
		}

		access, refresh, err := Rotar(db, req.RefreshToken)
		if err != nil {
			http.Error(w, "refresh inválido", http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tokenResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "Bearer",
			ExpiresIn:    int(AccessTTL.Seconds()),
		})
	}
}

// LogoutHandler trata POST /logout: revoca el refresh recibido.
func LogoutHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.RefreshToken != "" {
			Revocar(db, req.RefreshToken)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
