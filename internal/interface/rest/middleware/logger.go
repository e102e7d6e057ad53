package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

const loggerCtxKey = "rc-logger"

// RequestLogger logs one line per request and exposes a request scoped
// entry to handlers through Logger.
func RequestLogger(log *logrus.Entry) echo.MiddlewareFunc {
	inject := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			entry := log
			sc := trace.SpanContextFromContext(c.Request().Context())
			if sc.HasTraceID() {
				entry = entry.WithField("trace_id", sc.TraceID().String())
			}
			c.Set(loggerCtxKey, entry)
			return next(c)
		}
	}

	access := echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			entry := Logger(c).WithFields(logrus.Fields{
				"method":  v.Method,
				"path":    v.URIPath,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return inject(access(next))
	}
}

// Logger returns the request scoped entry, or the standard logger.
func Logger(c echo.Context) *logrus.Entry {
	if entry, ok := c.Get(loggerCtxKey).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
