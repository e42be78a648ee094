package handler

import (
	"net/http"

	"github.com/vfg2006/shorten-rest-connector/internal/api/handler/router"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/authenticating"
	"github.com/vfg2006/shorten-rest-connector/internal/usecases/reporting"
	"github.com/vfg2006/shorten-rest-connector/pkg/metrics"
	"github.com/vfg2006/shorten-rest-connector/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// connectorRoute aplica escopo connector e instrumentação a uma rota do host
func connectorRoute(method, path string, handler http.Handler) router.Route {
	return router.Route{
		Path:    path,
		Method:  method,
		Handler: handler,
		Middlewares: []func(http.Handler) http.Handler{
			metrics.Middleware(path),
			middleware.ConnectorOnly(),
		},
	}
}

func Connector(authenticator authenticating.Authenticator, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		connectorRoute(http.MethodGet, "/v1/connector/auth-type", GetAuthType(authenticator)),
		connectorRoute(http.MethodPost, "/v1/connector/reset-auth", ResetAuth(authenticator)),
		connectorRoute(http.MethodGet, "/v1/connector/auth-valid", IsAuthValid(authenticator)),
		connectorRoute(http.MethodPost, "/v1/connector/credentials", SetCredentials(authenticator)),
		connectorRoute(http.MethodPost, "/v1/connector/config", GetConfig(reporter)),
		connectorRoute(http.MethodPost, "/v1/connector/schema", GetSchema(reporter)),
		connectorRoute(http.MethodPost, "/v1/connector/data", GetData(reporter)),
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
