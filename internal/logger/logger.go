package logger

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Log доступен всему приложению, до инициализации пишет в никуда
var Log = zap.NewNop()

func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl
	return nil
}

// RequestLogger logs every API round trip made through resty.
func RequestLogger() resty.ResponseMiddleware {
	return func(c *resty.Client, r *resty.Response) error {
		Log.Debug("api request",
			zap.String("method", r.Request.Method),
			zap.String("url", r.Request.URL),
			zap.Int("status", r.StatusCode()),
			zap.Duration("duration", r.Time()),
		)
		return nil
	}
}
