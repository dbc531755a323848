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
	projectUpdateName        string
	projectUpdateDescription string
	projectUpdateStatus      string
)

var projectsUpdateCmd = &cobra.Command{
	Use:   "update PROJECT_ID",
	Short: "Update project fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsUpdate,
}

func init() {
	projectsUpdateCmd.Flags().StringVar(&projectUpdateName, "name", "", "new project name")
	projectsUpdateCmd.Flags().StringVar(&projectUpdateDescription, "description", "", "new description")
	projectsUpdateCmd.Flags().StringVar(&projectUpdateStatus, "status", "", "new status")
	projectsCmd.AddCommand(projectsUpdateCmd)
}

func runProjectsUpdate(cmd *cobra.Command, args []string) error {
	req := models.ProjectUpdateRequest{}
	if cmd.Flags().Changed("name") {
		req.Name = &projectUpdateName
	}
	if cmd.Flags().Changed("description") {
		req.Description = &projectUpdateDescription
	}
	if cmd.Flags().Changed("status") {
		status, err := models.ParseProjectStatus(projectUpdateStatus)
		if err != nil {
			return err
		}
		req.Status = &status
	}

	if len(req.Payload()) == 0 {
		fmt.Println("No update parameters provided.")
		return nil
	}

	project, err := newAPIClient().UpdateProject(cmd.Context(), args[0], req)
	if err != nil {
		PrintError(fmt.Sprintf("Failed to update project: %v", err), err)
		return err
	}

	fmt.Printf("Project %q updated.\n", project.Name)
	if isVerbose() {
		fmt.Println(ui.NewPanel("Project", ui.ProjectDetails(project)).Render())
	}
	return nil
}
