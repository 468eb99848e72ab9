package middleware

import (
	"net/http"

	"github.com/staffdesk/checkin-backend-go/internal/domain/staff"
	"github.com/staffdesk/checkin-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actx, err := Identity(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actx.IsAdmin() {
			response.HandleError(w, staff.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
