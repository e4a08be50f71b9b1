package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth guards the admin routes.
type Auth interface {
	Auth(next http.Handler) http.Handler
	RequireRole(roles ...string) func(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Auth validates the bearer access token and stores its claims in the request context.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			message := "Invalid authorization header format"
			if errors.Is(err, jwt.ErrMissingHeader) {
				message = "Missing authorization header"
			}

			err = failure.Unauthorized(message)
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Invalid token"
			}

			err = failure.Unauthorized(message)
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Str("token_id", claims.ID).Msg("JWT claims: user id or email is empty")

			response.WithError(writer, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireRole lets the request through only when the authenticated role is one
// of roles. It must run after Auth.
func (m *authImpl) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")
			defer scope.End()

			userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

			if !slices.Contains(roles, userRole) {
				err := failure.ForbiddenError

				scope.TraceError(err)
				scope.SetAttributes(map[string]any{
					"user_role":     userRole,
					"allowed_roles": roles,
					"reason":        "role_not_allowed",
				})
				response.WithError(writer, err)

				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// Admin is the middleware chain of every admin route.
func Admin(auth Auth) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		auth.Auth,
		auth.RequireRole(constant.RoleAdmin, constant.RoleStaff),
	}
}
