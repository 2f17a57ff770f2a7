// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
)

func TestNewConfiguration(t *testing.T) {
	t.Run("case=defaults only", func(t *testing.T) {
		conf, err := NewConfiguration()

		require.NoError(t, err)
		assert.Empty(t, conf.Project)
		assert.Equal(t, DefaultAPIURL, conf.API["url"])
		assert.Equal(t, LogTextFormat, conf.Log.Format)
		assert.Equal(t, zerolog.InfoLevel, conf.Log.Level)
	})

	t.Run("case=from config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`
project: my-project
api:
  url: https://rules.corp.local
  auth:
    type: api_key
    config:
      in: header
      name: X-Api-Key
      value: secret
log:
  level: debug
  format: gelf
`), 0o600))

		conf, err := NewConfiguration(ConfigurationPath(configFile))

		require.NoError(t, err)
		assert.Equal(t, "my-project", conf.Project)
		assert.Equal(t, "https://rules.corp.local", conf.API["url"])
		assert.Contains(t, conf.API, "auth")
		assert.Equal(t, zerolog.DebugLevel, conf.Log.Level)
		assert.Equal(t, LogGelfFormat, conf.Log.Format)
	})

	t.Run("case=environment overrides config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`
project: from-file
log:
  level: warn
`), 0o600))

		t.Setenv("CONFIGTEST_PROJECT", "from-env")
		t.Setenv("CONFIGTEST_LOG_LEVEL", "trace")

		conf, err := NewConfiguration(
			ConfigurationPath(configFile),
			EnvVarPrefix("CONFIGTEST_"))

		require.NoError(t, err)
		assert.Equal(t, "from-env", conf.Project)
		assert.Equal(t, zerolog.TraceLevel, conf.Log.Level)
	})

	t.Run("case=not existing config file", func(t *testing.T) {
		_, err := NewConfiguration(ConfigurationPath("/does/not/exist.yaml"))

		require.Error(t, err)
		require.ErrorIs(t, err, firebase.ErrConfiguration)
	})

	t.Run("case=malformed config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`project: [`), 0o600))

		_, err := NewConfiguration(ConfigurationPath(configFile))

		require.Error(t, err)
		require.ErrorIs(t, err, firebase.ErrConfiguration)
	})
}
