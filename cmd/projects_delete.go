/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectDeleteForce bool

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete PROJECT_ID",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !projectDeleteForce {
			if !confirmOrAbort(fmt.Sprintf("Are you sure you want to delete project %q? [y/N] ", args[0])) {
				return nil
			}
		}

		if err := newAPIClient().DeleteProject(cmd.Context(), args[0]); err != nil {
			PrintError(fmt.Sprintf("Failed to delete project: %v", err), err)
			return err
		}
		fmt.Println("Project deleted.")
		return nil
	},
}

func init() {
	projectsDeleteCmd.Flags().BoolVarP(&projectDeleteForce, "force", "f", false, "skip confirmation")
	projectsCmd.AddCommand(projectsDeleteCmd)
}
