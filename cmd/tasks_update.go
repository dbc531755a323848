/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskqueue/taskqueue-go/internal/ui"
	"github.com/taskqueue/taskqueue-go/models"
)

var (
	updateName        string
	updateCommand     string
	updateDescription string
	updatePriority    string
	updateStatus      string
	updateTimeout     int
)

// tasksUpdateCmd sends a partial update. Only flags that were actually set
// end up in the request; everything else stays untouched on the server.
var tasksUpdateCmd = &cobra.Command{
	Use:   "update TASK_ID",
	Short: "Update an existing task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksUpdate,
}

func init() {
	tasksUpdateCmd.Flags().StringVar(&updateName, "name", "", "new task name")
	tasksUpdateCmd.Flags().StringVar(&updateCommand, "command", "", "new command")
	tasksUpdateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	tasksUpdateCmd.Flags().StringVar(&updatePriority, "priority", "", "new priority (Low, Normal, High, Critical)")
	tasksUpdateCmd.Flags().StringVar(&updateStatus, "status", "", "new status")
	tasksUpdateCmd.Flags().IntVar(&updateTimeout, "timeout", 0, "new timeout in seconds")
	tasksCmd.AddCommand(tasksUpdateCmd)
}

func runTasksUpdate(cmd *cobra.Command, args []string) error {
	var req models.TaskUpdateRequest

	if cmd.Flags().Changed("name") {
		req.Name = &updateName
	}
	if cmd.Flags().Changed("command") {
		req.Command = &updateCommand
	}
	if cmd.Flags().Changed("description") {
		req.Description = &updateDescription
	}
	if cmd.Flags().Changed("priority") {
		priority, err := models.ParseTaskPriority(updatePriority)
		if err != nil {
			return err
		}
		req.Priority = &priority
	}
	if cmd.Flags().Changed("status") {
		status, err := models.ParseTaskStatus(updateStatus)
		if err != nil {
			return err
		}
		req.Status = &status
	}
	if cmd.Flags().Changed("timeout") {
		req.Timeout = &updateTimeout
	}

	if len(req.Payload()) == 0 {
		fmt.Println("No update parameters provided.")
		return nil
	}

	task, err := newAPIClient().UpdateTask(cmd.Context(), args[0], req)
	if err != nil {
		PrintError(fmt.Sprintf("Failed to update task: %v", err), err)
		return err
	}

	fmt.Printf("Task %q updated.\n", task.Name)
	if isVerbose() {
		fmt.Println(ui.NewPanel("Task", ui.TaskDetails(task)).Render())
	}
	return nil
}
