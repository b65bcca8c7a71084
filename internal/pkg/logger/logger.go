package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	global *zap.SugaredLogger
	once   sync.Once
)

// Init replaces the global logger. Safe to call once from main; packages
// that log before Init fall back to a production logger.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func log() *zap.SugaredLogger {
	once.Do(func() {
		if global == nil {
			l, err := zap.NewProduction()
			if err != nil {
				panic(err)
			}
			global = l.Sugar()
		}
	})
	return global
}

func Info(_ context.Context, args ...interface{}) {
	log().Info(args...)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	log().Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	log().Warnf(format, args...)
}

func Error(_ context.Context, args ...interface{}) {
	log().Error(args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	log().Errorf(format, args...)
}

func Fatal(_ context.Context, args ...interface{}) {
	log().Fatal(args...)
}

func Debugf(_ context.Context, format string, args ...interface{}) {
	log().Debugf(format, args...)
}
