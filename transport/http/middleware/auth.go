package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotelier/infras/jwt"
	"hotelier/permissions"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/transport/http/response"
)

type Auth struct {
	jwt jwt.JWT
}

func ProvideAuth(jwtService jwt.JWT) *Auth {
	return &Auth{jwt: jwtService}
}

// Authenticate validates the bearer access token and stores the staff
// identity in the request context.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			response.WithError(w, failure.Unauthorized("missing or invalid authorization header"))

			return
		}

		claims, err := a.jwt.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			response.WithError(w, failure.Unauthorized(err.Error()))

			return
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyStaffID, claims.StaffID)
		ctx = context.WithValue(ctx, constant.ContextKeyPosition, claims.Position)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Permit checks the staff position against the permissions for the matched
// route. Runs after Authenticate.
func (a *Auth) Permit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pattern := chi.RouteContext(r.Context()).RoutePattern()
		position := PositionFromContext(r.Context())

		if !permissions.IsAllowed(r.Method, pattern, position) {
			response.WithError(w, failure.Forbidden("position is not allowed to access this resource"))

			return
		}

		next.ServeHTTP(w, r)
	})
}

// StaffIDFromContext returns the authenticated staff id, or an empty string
// on unauthenticated requests.
func StaffIDFromContext(ctx context.Context) string {
	staffID, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	return staffID
}

// PositionFromContext returns the authenticated staff position.
func PositionFromContext(ctx context.Context) string {
	position, _ := ctx.Value(constant.ContextKeyPosition).(string)

	return position
}
