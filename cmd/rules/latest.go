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
	"github.com/spf13/cobra"
)

// NewLatestCommand represents the "rules latest" command.
func NewLatestCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "latest [service]",
		Short:   "Prints the name of the ruleset currently released for a service",
		Args:    cobra.ExactArgs(1),
		Example: "firebase-tools rules latest -p my-project cloud.firestore",
		Run: func(cmd *cobra.Command, args []string) {
			if err := latestRulesetName(cmd, args); err != nil {
				exitOnError(cmd, err)
			}
		},
	}
}

func latestRulesetName(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	defer app.close()

	name, err := app.client.LatestRulesetName(app.ctx, app.project, args[0])
	if err != nil {
		return err
	}

	if len(name) == 0 {
		cmd.Printf("no releases for %s yet\n", args[0])

		return nil
	}

	cmd.Println(name)

	return nil
}
