package middleware

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/cache"
	"hotel/shared/constant"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	otelHTTPScopeName = "http"
	headerAllow       = "Allow"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	SubmissionLimit() func(http.Handler) http.Handler
	CORS(methods ...string) func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		if reqID := chiMiddleware.GetReqID(ctx); reqID != "" {
			ww.Header().Set(constant.RequestHeaderRequestID, reqID)
		}

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
			"http.request_id": chiMiddleware.GetReqID(ctx),
		})

		next.ServeHTTP(ww, r.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": ww.Status(),
		}

		if rctx := chi.RouteContext(ctx); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if ww.Status() >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("request failed with status %d", ww.Status()))
		}
	})
}

// CORS answers preflight requests of a route group with 200, no body and the
// group's methods. Other requests get the cross-origin headers and continue.
func (a *appMiddleware) CORS(methods ...string) func(http.Handler) http.Handler {
	allowed := slices.Clone(methods)
	if !slices.Contains(allowed, http.MethodOptions) {
		allowed = append(allowed, http.MethodOptions)
	}

	corsConfig := a.config.App.CORS

	origins := corsConfig.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{constant.Asterix}
	}

	headers := corsConfig.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{constant.RequestHeaderContentType, constant.RequestHeaderAuthorization}
	}

	handler := cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   allowed,
		AllowedHeaders:   headers,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})

	return func(next http.Handler) http.Handler {
		return handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.Header().Set(headerAllow, strings.Join(allowed, ", "))
				w.WriteHeader(http.StatusOK)

				return
			}

			next.ServeHTTP(w, r)
		}))
	}
}
