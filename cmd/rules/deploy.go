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

// NewDeployCommand represents the "rules deploy" command.
func NewDeployCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [path to rules file] ...",
		Short: "Creates a ruleset from the given files and releases it",
		Long: "Creates a ruleset from the given files and points the release named by the " +
			"--release flag to it. The release is created if it does not exist yet.",
		Args:    cobra.MinimumNArgs(1),
		Example: "firebase-tools rules deploy -p my-project --release cloud.firestore firestore.rules",
		Run: func(cmd *cobra.Command, args []string) {
			if err := deployRuleset(cmd, args); err != nil {
				exitOnError(cmd, err)
			}
		},
	}

	cmd.Flags().String("release", "", "Name of the release to point to the new ruleset")
	cmd.MarkFlagRequired("release") // nolint: errcheck

	return cmd
}

func deployRuleset(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	defer app.close()

	files, err := readSourceFiles(args)
	if err != nil {
		return err
	}

	rulesetName, err := app.client.CreateRuleset(app.ctx, app.project, files)
	if err != nil {
		return err
	}

	cmd.Println("created " + rulesetName)

	release, _ := cmd.Flags().GetString("release")

	releaseName, err := app.client.UpdateOrCreateRelease(app.ctx, app.project, rulesetName, release)
	if err != nil {
		return err
	}

	cmd.Println("released as " + releaseName)

	return nil
}
