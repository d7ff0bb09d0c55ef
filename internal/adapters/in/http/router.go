package http

import (
	"log/slog"
	"net/http"

	"dronedelivery/api"
	"dronedelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type RouterConfig struct {
	Server    *Server
	JWTSecret string
	Logger    *slog.Logger
}

type openAPIDocument struct{}

func (openAPIDocument) ReadDoc() string {
	return string(api.OpenAPI)
}

func init() {
	swag.Register(swag.Name, openAPIDocument{})
}

// NewRouter assembles the echo instance: health and swagger at the root,
// the operations of the OpenAPI document behind validation and
// authentication. Paths outside the document skip the OpenAPI middleware.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	doc, err := LoadDocument()
	if err != nil {
		return nil, err
	}
	openapi, err := OpenAPIMiddleware(doc, NewTokenVerifier(cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(openapi)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, cfg.Server)

	return e, nil
}

// RequestLogger writes one slog record per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
