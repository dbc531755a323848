/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tasksCancelCmd = &cobra.Command{
	Use:   "cancel TASK_ID",
	Short: "Cancel a running task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := newAPIClient().CancelTask(cmd.Context(), args[0])
		if err != nil {
			PrintError(fmt.Sprintf("Failed to cancel task: %v", err), err)
			return err
		}
		fmt.Printf("Task %q cancelled. Status: %s\n", task.Name, task.Status)
		return nil
	},
}

func init() {
	tasksCmd.AddCommand(tasksCancelCmd)
}
