package health

import (
	"context"
	"net/http"
	"slices"
	"time"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

type Status struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	checks map[string]Check
	otel   otel.Otel
}

func New(checks map[string]Check, otel otel.Otel) Handler {
	return Handler{
		checks: checks,
		otel:   otel,
	}
}

// Checks builds the dependency checks of the API process.
func Checks(db *postgres.Connection, redis *goRedis.Client) map[string]Check {
	return map[string]Check{
		"postgres": db.Read.PingContext,
		"redis": func(ctx context.Context) error {
			return redis.Ping(ctx).Err()
		},
	}
}

func (handler *Handler) Router(router chi.Router, app middleware.AppMiddleware, _ middleware.Auth) {
	router.Route("/health", func(routerGroup chi.Router) {
		routerGroup.Use(app.CORS(http.MethodGet))

		routerGroup.Get("/", handler.Health)
	})
}

// Health pings every dependency and answers 503 when one is down.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := Status{Status: "ok", Checks: make(map[string]string, len(handler.checks))}
	code := http.StatusOK

	names := make([]string, 0, len(handler.checks))
	for name := range handler.checks {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		if err := handler.checks[name](ctx); err != nil {
			log.Error().Err(err).Str("dependency", name).Msg("health check failed")

			status.Checks[name] = "down"
			status.Status = "degraded"
			code = http.StatusServiceUnavailable

			continue
		}

		status.Checks[name] = "up"
	}

	response.WithData(w, code, status)
}
