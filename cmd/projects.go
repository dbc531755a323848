/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskqueue/taskqueue-go/internal/ui"
	"github.com/taskqueue/taskqueue-go/models"
)

// projectsCmd groups the project management subcommands.
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Project management commands",
}

var (
	projectCreateName        string
	projectCreateDescription string
	projectCreateDueDate     string
	projectCreateTags        []string
	projectListFormat        string
)

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.NewProjectCreateRequest(projectCreateName)
		if projectCreateDescription != "" {
			req.Description = &projectCreateDescription
		}
		if projectCreateDueDate != "" {
			dueDate, err := time.Parse("2006-01-02", projectCreateDueDate)
			if err != nil {
				return fmt.Errorf("invalid due date %q (expected YYYY-MM-DD): %w", projectCreateDueDate, err)
			}
			req.DueDate = &dueDate
		}
		if len(projectCreateTags) > 0 {
			req.Tags = projectCreateTags
		}

		project, err := newAPIClient().CreateProject(cmd.Context(), req)
		if err != nil {
			PrintError(fmt.Sprintf("Failed to create project: %v", err), err)
			return err
		}

		fmt.Printf("Project %q created with ID: %s\n", project.Name, project.ID)
		if isVerbose() {
			fmt.Println(ui.NewPanel("Project", ui.ProjectDetails(project)).Render())
		}
		return nil
	},
}

var projectsGetCmd = &cobra.Command{
	Use:   "get PROJECT_ID",
	Short: "Get project details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := newAPIClient().GetProject(cmd.Context(), args[0])
		if err != nil {
			PrintError(fmt.Sprintf("Failed to get project: %v", err), err)
			return err
		}
		fmt.Println(ui.NewPanel("Project", ui.ProjectDetails(project)).Render())
		return nil
	},
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := newAPIClient().ListProjects(cmd.Context())
		if err != nil {
			PrintError(fmt.Sprintf("Failed to list projects: %v", err), err)
			return err
		}

		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}
		if projectListFormat == "json" {
			return printJSON(projects)
		}
		fmt.Print(ui.RenderProjectTable(projects))
		return nil
	},
}

func init() {
	projectsCreateCmd.Flags().StringVar(&projectCreateName, "name", "", "project name")
	projectsCreateCmd.Flags().StringVar(&projectCreateDescription, "description", "", "project description")
	projectsCreateCmd.Flags().StringVar(&projectCreateDueDate, "due-date", "", "due date (YYYY-MM-DD)")
	projectsCreateCmd.Flags().StringSliceVar(&projectCreateTags, "tag", nil, "project tag (repeatable)")
	projectsListCmd.Flags().StringVar(&projectListFormat, "format", "table", "output format (table or json)")

	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsGetCmd)
	projectsCmd.AddCommand(projectsListCmd)
	rootCmd.AddCommand(projectsCmd)
}
