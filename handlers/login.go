package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"studylab/auth"
	"studylab/config"
)

// Login exchanges the shared password for an auth_token cookie. When no
// LOGIN_PASSWORD is configured the endpoint is disabled and the service runs
// open, matching the single-user local setup.
func Login(w http.ResponseWriter, r *http.Request) {
	password := os.Getenv("LOGIN_PASSWORD")
	if password == "" {
		http.Error(w, "Login is not configured", http.StatusNotFound)
		return
	}

	var requestData struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}

	if subtle.ConstantTimeCompare([]byte(requestData.Password), []byte(password)) != 1 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tokenString, err := auth.CreateToken("studylab")
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		log.Println("Token generation error:", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    tokenString,
		Path:     "/",
		Domain:   config.Env.Domain,
		HttpOnly: true,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "success"})
}
