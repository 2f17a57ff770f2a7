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

// NewGetCommand represents the "rules get" command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get [ruleset name]",
		Short:   "Prints the files of a ruleset",
		Args:    cobra.ExactArgs(1),
		Example: "firebase-tools rules get projects/my-project/rulesets/04477438-e643",
		Run: func(cmd *cobra.Command, args []string) {
			if err := getRulesetContent(cmd, args); err != nil {
				exitOnError(cmd, err)
			}
		},
	}
}

func getRulesetContent(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	defer app.close()

	files, err := app.client.RulesetContent(app.ctx, args[0])
	if err != nil {
		return err
	}

	for _, file := range files {
		cmd.Printf("// %s\n%s\n", file.Name, file.Content)
	}

	return nil
}
