/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskqueue/taskqueue-go/internal/ui"
)

var tasksGetCmd = &cobra.Command{
	Use:   "get TASK_ID",
	Short: "Get task details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := newAPIClient().GetTask(cmd.Context(), args[0])
		if err != nil {
			PrintError(fmt.Sprintf("Failed to get task: %v", err), err)
			return err
		}

		if tasksGetJSON {
			return printJSON(task)
		}
		fmt.Println(ui.NewPanel("Task", ui.TaskDetails(task)).Render())
		return nil
	},
}

var tasksGetJSON bool

func init() {
	tasksGetCmd.Flags().BoolVar(&tasksGetJSON, "json", false, "output as JSON")
	tasksCmd.AddCommand(tasksGetCmd)
}
