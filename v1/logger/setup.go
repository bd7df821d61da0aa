package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger with the Info/Debug/Warn/Error/Fatal(msg, err, fields)
// signature the client packages expect.
type Logger struct {
	// Zap is exposed for zap-specific needs such as Sync or With.
	Zap *zap.Logger

	// tracingEnabled adds trace_id and span_id in the *WithContext methods.
	tracingEnabled bool
}

// NewLoggerClient builds a Logger writing to stderr. Entries carry an ISO8601
// "timestamp", the caller, the process id and Config.ServiceName. JSON is the
// default encoding; EncodingConsole switches to colored, human-readable lines
// for the CLI.
//
// A zap build failure is fatal.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "schema-sync"})
//	log.Info("registry reachable", nil, map[string]interface{}{"urls": 2})
func NewLoggerClient(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	encoding := EncodingJSON
	if cfg.Encoding == EncodingConsole {
		encoding = EncodingConsole
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	// Skip one frame so the caller is the code calling Info, not utils.go.
	z, err := zapCfg.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}
	return NewFromZap(z, cfg.EnableTracing)
}

// NewNop returns a Logger that discards everything. Useful in tests and for
// callers that want the concrete type without output.
func NewNop() *Logger {
	return &Logger{Zap: zap.NewNop()}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case Debug:
		return zap.DebugLevel
	case Warning:
		return zap.WarnLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// NewFromZap wraps an existing zap logger, e.g. one built with zaptest.
func NewFromZap(z *zap.Logger, enableTracing bool) *Logger {
	return &Logger{Zap: z, tracingEnabled: enableTracing}
}
