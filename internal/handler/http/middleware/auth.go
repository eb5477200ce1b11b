package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type claimsKey struct{}

// Claims are the identity fields carried by an access token.
type Claims struct {
	WorkerID string
	Role     string
}

// AuthRequired rejects requests without a verified access token and stores its claims in the context.
// It must run after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			tokenType, _ := claims["type"].(string)
			workerID, _ := claims["worker_id"].(string)
			if tokenType != "access" || workerID == "" {
				response.Unauthorized(w, "Invalid token")
				return
			}
			role, _ := claims["role"].(string)

			ctx := context.WithValue(r.Context(), claimsKey{}, Claims{WorkerID: workerID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// ClaimsFromContext returns the claims stored by AuthRequired.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(Claims)
	return claims, ok
}
