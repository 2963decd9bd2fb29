package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leave-approval-backend/internal/domain/auth"
	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/response"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/jwt"
)

type actorKey struct{}

// AuthRequired runs after jwtauth.Verifier. It rejects revoked and non-access
// tokens and stores the caller as a user.Actor on the request context.
func AuthRequired(revocations jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if revocations.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.Unauthorized(w, "Token revoked")
				return
			}

			actor := jwt.ActorFromClaims(claims)
			if !actor.IsAuthenticated() {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromContext returns the caller stored by AuthRequired, or the zero
// Actor for unauthenticated requests.
func ActorFromContext(ctx context.Context) user.Actor {
	actor, _ := ctx.Value(actorKey{}).(user.Actor)
	return actor
}
