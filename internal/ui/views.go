package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskqueue/taskqueue-go/models"
)

// RenderTaskTable renders a task listing as a table string.
func RenderTaskTable(tasks []models.Task) string {
	table := &Table{
		Title:      fmt.Sprintf("Tasks (%d found)", len(tasks)),
		Headers:    []string{"ID", "Name", "Status", "Priority", "Project", "Created"},
		MaxWidth:   30,
		CellStyles: map[int]map[int]lipgloss.Style{},
	}
	for i, task := range tasks {
		projectID := "-"
		if task.ProjectID != nil {
			projectID = TruncateID(task.ProjectID.String())
		}
		table.Rows = append(table.Rows, []string{
			TruncateID(task.ID.String()),
			task.Name,
			string(task.Status),
			string(task.Priority),
			projectID,
			task.CreatedAt.Format("2006-01-02 15:04"),
		})
		table.CellStyles[i] = map[int]lipgloss.Style{2: StatusStyle(task.Status)}
	}
	return table.Render()
}

// RenderProjectTable renders a project listing as a table string.
func RenderProjectTable(projects []models.Project) string {
	table := &Table{
		Title:    fmt.Sprintf("Projects (%d found)", len(projects)),
		Headers:  []string{"ID", "Name", "Status", "Tags", "Created"},
		MaxWidth: 30,
	}
	for _, project := range projects {
		tags := "-"
		if len(project.Tags) > 0 {
			tags = strings.Join(project.Tags, ", ")
		}
		table.Rows = append(table.Rows, []string{
			TruncateID(project.ID.String()),
			project.Name,
			string(project.Status),
			tags,
			project.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return table.Render()
}

// TaskDetails formats a task for the detail panel.
func TaskDetails(task *models.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:     %s\n", task.Name)
	fmt.Fprintf(&sb, "ID:       %s\n", task.ID)
	fmt.Fprintf(&sb, "Status:   %s\n", StatusStyle(task.Status).Render(string(task.Status)))
	fmt.Fprintf(&sb, "Priority: %s\n", task.Priority)
	if task.ProjectID != nil {
		fmt.Fprintf(&sb, "Project:  %s\n", task.ProjectID)
	}
	if task.TaskType != "" {
		fmt.Fprintf(&sb, "Type:     %s\n", task.TaskType)
	}
	fmt.Fprintf(&sb, "Created:  %s\n", task.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Updated:  %s\n", task.UpdatedAt.Format("2006-01-02 15:04:05"))

	if task.Description != nil && *task.Description != "" {
		fmt.Fprintf(&sb, "\nDescription:\n%s\n", *task.Description)
	}
	if task.TechnicalSpecs != nil && *task.TechnicalSpecs != "" {
		fmt.Fprintf(&sb, "\nTechnical Specs:\n%s\n", *task.TechnicalSpecs)
	}
	if len(task.AcceptanceCriteria) > 0 {
		sb.WriteString("\nAcceptance Criteria:\n")
		for i, criterion := range task.AcceptanceCriteria {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, criterion)
		}
	}
	if len(task.Phases) > 0 {
		sb.WriteString("\nPhases:\n")
		for _, phase := range task.Phases {
			line := string(phase.Phase)
			if phase.CompletedAt != nil {
				line += " (completed " + phase.CompletedAt.Format("2006-01-02 15:04") + ")"
			} else if phase.StartedAt != nil {
				line += " (started " + phase.StartedAt.Format("2006-01-02 15:04") + ")"
			}
			fmt.Fprintf(&sb, "  • %s\n", line)
		}
	}
	fmt.Fprintf(&sb, "\nCommand:\n%s", task.Command)
	return sb.String()
}

// ProjectDetails formats a project for the detail panel.
func ProjectDetails(project *models.Project) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:    %s\n", project.Name)
	fmt.Fprintf(&sb, "ID:      %s\n", project.ID)
	fmt.Fprintf(&sb, "Status:  %s\n", project.Status)
	fmt.Fprintf(&sb, "Created: %s\n", project.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Updated: %s", project.UpdatedAt.Format("2006-01-02 15:04:05"))

	if project.Description != nil && *project.Description != "" {
		fmt.Fprintf(&sb, "\n\nDescription:\n%s", *project.Description)
	}
	if project.DueDate != nil {
		fmt.Fprintf(&sb, "\n\nDue Date: %s", project.DueDate.Format("2006-01-02"))
	}
	if len(project.Tags) > 0 {
		fmt.Fprintf(&sb, "\n\nTags: %s", strings.Join(project.Tags, ", "))
	}
	return sb.String()
}
