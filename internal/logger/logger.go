package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/salgadostudio/booking-site/internal/gelf"
)

var (
	Log   *zap.Logger
	Sugar *zap.SugaredLogger
)

// Init configures the global logger. When gelfAddr is non-empty, log lines
// are also shipped to a GELF UDP endpoint (e.g. Graylog).
func Init(gelfAddr string) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	writer := zapcore.AddSync(os.Stdout)

	core := zapcore.NewCore(encoder, writer, zapcore.InfoLevel)

	if gelfAddr != "" {
		if gw, err := gelf.New(gelfAddr); err == nil {
			gelfCore := zapcore.NewCore(encoder, zapcore.AddSync(gw), zapcore.InfoLevel)
			core = zapcore.NewTee(core, gelfCore)
		}
	}

	Log = zap.New(core, zap.AddCaller())
	Sugar = Log.Sugar()
}

func init() {
	// Packages may log before main calls Init (tests, early failures).
	Init("")
}
