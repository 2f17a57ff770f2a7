package flags

import "github.com/spf13/cobra"

func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(Config, "c", "",
		"Path to the configuration file.\n"+
			"If not provided, the lookup sequence is:\n  1. $PWD\n  2. /etc/firebase-tools/")
	cmd.PersistentFlags().String(EnvironmentConfigPrefix, "FIREBASETOOLS_",
		"Prefix for the environment variables to consider for\nloading configuration from")
	cmd.PersistentFlags().StringP(Project, "p", "",
		"The project to operate on. Overrides the project set in\nthe configuration file.")
}
