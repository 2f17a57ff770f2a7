package parser

import (
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
	"github.com/hemanthnaga96/firebase-tools/internal/x/errorchain"
	"github.com/hemanthnaga96/firebase-tools/internal/x/stringx"
)

func toRealType(val string) any {
	var parsed map[string]any

	// here we're using the ability of the yaml parser to "guess" the type and
	// convert the given string to it. this is not the fastest way, but ok for now.
	yaml.Unmarshal(stringx.ToBytes("val: "+val), &parsed) // nolint: errcheck

	return parsed["val"]
}

func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			// a double underscore maps to a literal underscore in the config key,
			// a single one separates the hierarchy levels
			tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "__", `\:\`)
			tmp = strings.ReplaceAll(tmp, "_", ".")

			return strings.ReplaceAll(tmp, `\:\`, "_"), toRealType(val)
		},
	})

	if err := parser.Load(provider, nil); err != nil {
		return nil, errorchain.NewWithMessagef(firebase.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return parser, nil
}
