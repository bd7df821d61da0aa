package logger

import (
	"context"
	"errors"
	"syscall"

	"go.uber.org/fx"
)

// FXModule provides a *Logger built from the Config in the container and
// flushes it when the application stops.
//
// Packages in this module accept a small Logger interface instead of *Logger.
// Bind it with fx.Annotate where a package should log through it:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema_registry.FXModule,
//	    fx.Provide(
//	        func() logger.Config { return logger.Config{Level: logger.Info, ServiceName: "schema-sync"} },
//	        fx.Annotate(func(l *logger.Logger) *logger.Logger { return l }, fx.As(new(schema_registry.Logger))),
//	    ),
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle syncs the zap core on stop so buffered entries are
// written before the process exits.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			err := client.Zap.Sync()
			// stderr is not syncable when attached to a terminal.
			if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
				return nil
			}
			return err
		},
	})
}
