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
	"github.com/tidwall/gjson"
)

// NewListCommand represents the "rules list" command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Lists the rulesets of a project",
		Example: "firebase-tools rules list -p my-project --all",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := listRulesets(cmd); err != nil {
				exitOnError(cmd, err)
			}
		},
	}

	cmd.Flags().Bool("all", false, "Follow the page tokens and fetch all pages")
	cmd.Flags().String("page-token", "", "Token of the page to fetch")

	return cmd
}

func listRulesets(cmd *cobra.Command) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	defer app.close()

	allPages, _ := cmd.Flags().GetBool("all")
	token, _ := cmd.Flags().GetString("page-token")

	for {
		page, err := app.client.ListRulesets(app.ctx, app.project, token)
		if err != nil {
			return err
		}

		// the page entries are opaque, so pick the interesting fields
		// without insisting on a particular shape
		for _, ruleset := range page.Rulesets {
			name := gjson.GetBytes(ruleset, "name").String()
			if createTime := gjson.GetBytes(ruleset, "createTime").String(); len(createTime) != 0 {
				cmd.Printf("%s (created %s)\n", name, createTime)
			} else {
				cmd.Println(name)
			}
		}

		if !allPages || len(page.NextPageToken) == 0 {
			if len(page.NextPageToken) != 0 {
				cmd.Println("next page token: " + page.NextPageToken)
			}

			return nil
		}

		token = page.NextPageToken
	}
}
