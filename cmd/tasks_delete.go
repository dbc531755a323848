/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteForce bool

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete TASK_ID",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteForce {
			if !confirmOrAbort(fmt.Sprintf("Are you sure you want to delete task %q? [y/N] ", args[0])) {
				return nil
			}
		}

		if err := newAPIClient().DeleteTask(cmd.Context(), args[0]); err != nil {
			PrintError(fmt.Sprintf("Failed to delete task: %v", err), err)
			return err
		}
		fmt.Println("Task deleted.")
		return nil
	},
}

func init() {
	tasksDeleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip confirmation")
	tasksCmd.AddCommand(tasksDeleteCmd)
}
