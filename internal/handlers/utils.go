package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/elite-arena/apiserver/internal/auth"
)

type contextKey string

const contextClaimsKey contextKey = "claims"

// claimsFromContext returns the verified claims injected by RequireAuth.
func claimsFromContext(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(contextClaimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, errors.New("missing claims")
	}
	return claims, nil
}

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
