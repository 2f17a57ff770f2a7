package config

import (
	"github.com/hemanthnaga96/firebase-tools/internal/config/parser"
	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
	"github.com/hemanthnaga96/firebase-tools/internal/x/errorchain"
)

type Configuration struct {
	Project string         `koanf:"project"`
	API     map[string]any `koanf:"api"`
	Log     LoggingConfig  `koanf:"log"`
}

func NewConfiguration(opts ...Option) (*Configuration, error) {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	// copy defaults
	result := defaultConfig

	loader := parser.New(
		parser.WithConfigFile(o.configPath),
		parser.WithEnvPrefix(o.envPrefix),
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
	)

	if err := loader.Load(&result); err != nil {
		return nil, errorchain.
			NewWithMessage(firebase.ErrConfiguration, "failed to load configuration").
			CausedBy(err)
	}

	return &result, nil
}

type options struct {
	envPrefix  string
	configPath string
}

type Option func(*options)

func EnvVarPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = prefix }
}

func ConfigurationPath(path string) Option {
	return func(o *options) { o.configPath = path }
}
