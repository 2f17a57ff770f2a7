package parser

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

var defaultOptions = opts{ // nolint: gochecknoglobals
	defaultConfigFileName: "config.yaml",
	configLookupDirs:      []string{".", "/etc/firebase-tools"},
	decodeHooks: []mapstructure.DecodeHookFunc{
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	},
}

type opts struct {
	configFile            string
	defaultConfigFileName string
	configLookupDirs      []string
	envPrefix             string
	decodeHooks           []mapstructure.DecodeHookFunc
}

type Option func(*opts)

func WithConfigFile(file string) Option {
	return func(o *opts) {
		configFile := strings.TrimSpace(file)
		if len(configFile) != 0 {
			o.configFile = configFile
		}
	}
}

func WithDefaultConfigFilename(name string) Option {
	return func(o *opts) {
		fileName := strings.TrimSpace(name)
		if len(fileName) != 0 {
			o.defaultConfigFileName = fileName
		}
	}
}

func WithConfigLookupDir(dir string) Option {
	return func(o *opts) {
		lookupDir := strings.TrimSpace(dir)
		if len(lookupDir) != 0 {
			o.configLookupDirs = append(o.configLookupDirs, lookupDir)
		}
	}
}

func WithEnvPrefix(prefix string) Option {
	return func(o *opts) {
		o.envPrefix = prefix
	}
}

func WithDecodeHookFunc(hook mapstructure.DecodeHookFunc) Option {
	return func(o *opts) {
		if hook != nil {
			o.decodeHooks = append(o.decodeHooks, hook)
		}
	}
}
