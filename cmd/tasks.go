/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import "github.com/spf13/cobra"

// tasksCmd groups the task management subcommands.
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Task management commands",
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}
