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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hemanthnaga96/firebase-tools/cmd/flags"
	"github.com/hemanthnaga96/firebase-tools/cmd/rules"
)

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newRulesCmd())
}

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manages rulesets and releases of a project",
	}

	flags.RegisterGlobalFlags(cmd)

	cmd.AddCommand(rules.NewListCommand())
	cmd.AddCommand(rules.NewGetCommand())
	cmd.AddCommand(rules.NewLatestCommand())
	cmd.AddCommand(rules.NewDeployCommand())
	cmd.AddCommand(rules.NewTestCommand())

	return cmd
}
