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

package rules

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/hemanthnaga96/firebase-tools/cmd/flags"
	"github.com/hemanthnaga96/firebase-tools/internal/cache"
	"github.com/hemanthnaga96/firebase-tools/internal/config"
	"github.com/hemanthnaga96/firebase-tools/internal/firebase"
	"github.com/hemanthnaga96/firebase-tools/internal/logging"
	"github.com/hemanthnaga96/firebase-tools/internal/rules/api"
	"github.com/hemanthnaga96/firebase-tools/internal/x/errorchain"
)

type appContext struct {
	ctx     context.Context
	project string
	client  *api.Client
	cache   cache.Cache
}

// newAppContext loads the configuration, sets up the logger and the cache and
// creates the api client all commands in this package work with.
func newAppContext(cmd *cobra.Command) (*appContext, error) {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
	)
	if err != nil {
		return nil, err
	}

	project, _ := cmd.Flags().GetString(flags.Project)
	if len(project) == 0 {
		project = conf.Project
	}

	if len(project) == 0 {
		return nil, errorchain.NewWithMessage(firebase.ErrConfiguration,
			"no project configured, use the --project flag or the config file")
	}

	client, err := api.NewClient(conf.API)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(conf.Log)

	cch := cache.NewInMemory()
	ctx := cache.WithContext(logger.WithContext(cmd.Context()), cch)

	if err = cch.Start(ctx); err != nil {
		return nil, err
	}

	return &appContext{ctx: ctx, project: project, client: client, cache: cch}, nil
}

func (a *appContext) close() { a.cache.Stop(a.ctx) } // nolint: errcheck

// exitOnError prints the error and terminates the process, honoring the exit
// code the service failure carries.
func exitOnError(cmd *cobra.Command, err error) {
	cmd.PrintErrf("%v\n", err)

	var apiErr *firebase.Error
	if errors.As(err, &apiErr) {
		os.Exit(apiErr.Exit)
	}

	os.Exit(1)
}

func readSourceFiles(paths []string) ([]api.File, error) {
	files := make([]api.File, 0, len(paths))

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errorchain.
				NewWithMessagef(firebase.ErrArgument, "failed to read %s", path).
				CausedBy(err)
		}

		files = append(files, api.File{Name: path, Content: string(content)})
	}

	return files, nil
}
