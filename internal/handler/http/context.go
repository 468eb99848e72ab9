package http

import (
	"net/http"

	"github.com/staffdesk/checkin-backend-go/internal/domain/auth"
	"github.com/staffdesk/checkin-backend-go/internal/handler/http/middleware"
)

// authContext builds the caller identity from the verified access token.
func authContext(r *http.Request) (auth.Context, error) {
	return middleware.Identity(r.Context())
}
