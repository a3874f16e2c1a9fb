package logging

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var ErrInvalidLevel = errors.New("invalid log level")

func New(level string, file string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	sink := zapcore.Lock(os.Stderr)
	if file != "" {
		rotated := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
		sink = zapcore.NewMultiWriteSyncer(sink, rotated)
	}

	return zap.New(zapcore.NewCore(encoder, sink, parsed)), nil
}
