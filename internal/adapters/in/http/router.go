// Package http exposes the dispatch use cases over a JSON REST API built on echo.
package http

import (
	"log/slog"
	"net/http"

	"dronefleet/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance serving the API, its documentation and
// the health check.
//
// Example:
//
//	e, err := http.NewRouter(server, logger)
//	if err != nil {
//	    return err
//	}
//	e.Logger.Fatal(e.Start(":8080"))
func NewRouter(server servers.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logger = logger.With("component", "http_server")
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "Request failed",
					"method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "Request served",
				"method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if err = RegisterSwagger(e, swagger); err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	api := e.Group("", validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}
