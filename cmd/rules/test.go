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
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var errRulesetInvalid = errors.New("ruleset is invalid")

// NewTestCommand represents the "rules test" command.
func NewTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "test [path to rules file] ...",
		Short:   "Submits the given files for a dry-run validation",
		Args:    cobra.MinimumNArgs(1),
		Example: "firebase-tools rules test -p my-project firestore.rules",
		Run: func(cmd *cobra.Command, args []string) {
			if err := testRuleset(cmd, args); err != nil {
				if errors.Is(err, errRulesetInvalid) {
					os.Exit(1)
				}

				exitOnError(cmd, err)
			}

			cmd.Println("Ruleset is valid")
		},
	}
}

func testRuleset(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	defer app.close()

	files, err := readSourceFiles(args)
	if err != nil {
		return err
	}

	rawResult, err := app.client.TestRuleset(app.ctx, app.project, files)
	if err != nil {
		return err
	}

	// the test operation returns its result unparsed, so pick the issues
	// out of the raw body
	issues := gjson.GetBytes(rawResult, "issues").Array()
	if len(issues) == 0 {
		return nil
	}

	var invalid bool

	for _, issue := range issues {
		severity := issue.Get("severity").String()
		invalid = invalid || severity == "ERROR"

		cmd.PrintErrf("%s: %s [%s:%d:%d]\n",
			severity,
			issue.Get("description").String(),
			issue.Get("sourcePosition.fileName").String(),
			issue.Get("sourcePosition.line").Int(),
			issue.Get("sourcePosition.column").Int(),
		)
	}

	if invalid {
		return errRulesetInvalid
	}

	return nil
}
