/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskqueue/taskqueue-go/internal/ui"
	"github.com/taskqueue/taskqueue-go/models"
)

var waitTimeout int

var tasksWaitCmd = &cobra.Command{
	Use:   "wait TASK_ID",
	Short: "Wait for task completion",
	Long: `Poll a task until it reaches a terminal status (Completed, Failed or
Cancelled) or the timeout elapses.`,
	Args: cobra.ExactArgs(1),
	RunE: runTasksWait,
}

func init() {
	tasksWaitCmd.Flags().IntVar(&waitTimeout, "timeout", 300, "timeout in seconds")
	tasksCmd.AddCommand(tasksWaitCmd)
}

func runTasksWait(cmd *cobra.Command, args []string) error {
	taskID := args[0]
	apiClient := newAPIClient()
	timeout := time.Duration(waitTimeout) * time.Second

	// Cancelling on return stops the poller when the user aborts the
	// spinner; the goroutine must not keep polling behind an exited command.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	results := make(chan ui.WaitResult, 1)
	go func() {
		task, err := apiClient.WaitForCompletion(ctx, taskID, timeout)
		results <- ui.WaitResult{Task: task, Err: err}
	}()

	var result ui.WaitResult
	if ui.IsInteractive() {
		model, err := tea.NewProgram(ui.NewWaitModel(taskID, results)).Run()
		if err != nil {
			return err
		}
		waitModel := model.(ui.WaitModel)
		if waitModel.Result == nil {
			return ui.ErrWaitInterrupted
		}
		result = *waitModel.Result
	} else {
		fmt.Printf("Waiting for task %s to complete...\n", taskID)
		result = <-results
	}

	if result.Err != nil {
		PrintError(fmt.Sprintf("Failed to wait for task: %v", result.Err), result.Err)
		return result.Err
	}

	task := result.Task
	switch task.Status {
	case models.StatusCompleted:
		fmt.Println(ui.StyleSuccess.Render("Task completed successfully."))
	case models.StatusFailed:
		fmt.Println(ui.StyleError.Render("Task failed."))
	case models.StatusCancelled:
		fmt.Println(ui.StyleWarning.Render("Task was cancelled."))
	}

	if isVerbose() && task.Result != nil {
		if msg, ok := task.Result["message"].(string); ok {
			fmt.Println(ui.NewPanel("Result", msg).Render())
		}
	}
	return nil
}
