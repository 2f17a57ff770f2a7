package config

import (
	"reflect"

	"github.com/rs/zerolog"

	"github.com/hemanthnaga96/firebase-tools/internal/x"
)

type LogFormat int

const (
	LogTextFormat LogFormat = iota
	LogGelfFormat
)

func (f LogFormat) String() string { return x.IfThenElse(f == LogTextFormat, "text", "gelf") }

type LoggingConfig struct {
	Format LogFormat     `koanf:"format,string"`
	Level  zerolog.Level `koanf:"level,string"`
}

// Decode zerolog levels from strings.
func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	var level zerolog.Level

	if from.Kind() != reflect.String {
		return val, nil
	}

	dect := reflect.ValueOf(&level).Elem().Type()
	if !dect.AssignableTo(to) {
		return val, nil
	}

	switch val {
	case "panic":
		level = zerolog.PanicLevel
	case "fatal":
		level = zerolog.FatalLevel
	case "error":
		level = zerolog.ErrorLevel
	case "warn":
		level = zerolog.WarnLevel
	case "debug":
		level = zerolog.DebugLevel
	case "trace":
		level = zerolog.TraceLevel
	default:
		level = zerolog.InfoLevel
	}

	return level, nil
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	var format LogFormat

	if from.Kind() != reflect.String {
		return val, nil
	}

	dect := reflect.ValueOf(&format).Elem().Type()
	if !dect.AssignableTo(to) {
		return val, nil
	}

	return x.IfThenElse(val == "gelf", LogGelfFormat, LogTextFormat), nil
}
