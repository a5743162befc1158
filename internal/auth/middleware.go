package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/setterlabs/crm-backend/internal/client"
)

type Claims struct {
	Sub      string `json:"sub"`
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// JWTMiddleware guards the dashboard routes. The demo webhook and the
// fabricated demo endpoints stay open; only CRM data requires a token.
type JWTMiddleware struct {
	secret        []byte
	clientService *client.Service
}

func NewJWTMiddleware(secret string, cs *client.Service) *JWTMiddleware {
	return &JWTMiddleware{
		secret:        []byte(secret),
		clientService: cs,
	}
}

func (m *JWTMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractBearerToken(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
			writeError(w, http.StatusUnauthorized, "token expired")
			return
		}

		ctx := r.Context()

		if claims.ClientID != "" {
			clientID, err := uuid.Parse(claims.ClientID)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid client ID in token")
				return
			}
			c, err := m.clientService.GetByID(ctx, clientID)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "client not found")
				return
			}
			ctx = client.WithClient(ctx, c)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
