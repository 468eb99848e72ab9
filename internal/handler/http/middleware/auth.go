package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
	"github.com/staffdesk/checkin-backend-go/internal/handler/http/response"
)

// Identity extracts the caller identity from the access token the verifier
// placed on the request context. Refresh tokens are rejected so they cannot
// be used to reach protected endpoints.
func Identity(ctx context.Context) (auth.Context, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return auth.Context{}, auth.ErrInvalidToken
	}

	if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
		return auth.Context{}, auth.ErrInvalidToken
	}

	staffID, ok := claims["staff_id"].(string)
	if !ok || staffID == "" {
		return auth.Context{}, auth.ErrInvalidToken
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return auth.Context{
		StaffID: staffID,
		Name:    name,
		Role:    role,
	}, nil
}

func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := Identity(r.Context()); err != nil {
			response.HandleError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
