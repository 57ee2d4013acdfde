package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Handler serves the operator profile. The display name comes from an
// optional bearer token so a shared deployment can greet each operator,
// falling back to the configured name for single-user setups.
type Handler struct {
	secret      []byte
	displayName string
}

func NewHandler(secret, displayName string) *Handler {
	return &Handler{secret: []byte(secret), displayName: displayName}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type profileResponse struct {
	DisplayName string `json:"display_name"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	name := h.displayName

	if token := bearerToken(r); token != "" && len(h.secret) > 0 {
		claimed, err := h.nameFromToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if claimed != "" {
			name = claimed
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(profileResponse{DisplayName: name}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if after, found := strings.CutPrefix(auth, "Bearer "); found {
		return after
	}

	return ""
}

func (h *Handler) nameFromToken(raw string) (string, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return h.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	name, _ := claims["name"].(string)

	return name, nil
}
