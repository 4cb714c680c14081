package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It discards everything until InitLogger runs,
// so packages and tests can log without setup.
var Log = zap.NewNop()

// InitLogger picks a production JSON config when GIN_MODE=release and a
// development console config otherwise.
func InitLogger() {
	var config zap.Config
	if os.Getenv("GIN_MODE") == "release" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = built
}

func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

// Fatal logs and exits the process with status 1.
func Fatal(msg string, fields ...zapcore.Field) {
	Log.Fatal(msg, fields...)
}

// Sync flushes buffered entries.
func Sync() error {
	return Log.Sync()
}
