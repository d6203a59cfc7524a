package cmd

import (
	"github.com/runvoy/ecs-find-tasks/internal/constants"
	"github.com/runvoy/ecs-find-tasks/internal/output"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the CLI",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(constants.ProjectName + " " + output.Bold(*constants.GetVersion()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
