package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskqueue/taskqueue-go/models"
)

// ErrWaitInterrupted is returned when the user aborts the wait spinner.
var ErrWaitInterrupted = errors.New("wait interrupted")

// WaitResult carries the outcome of a completion poll into the spinner
// model.
type WaitResult struct {
	Task *models.Task
	Err  error
}

// WaitModel is a bubbletea model showing a spinner while the completion
// poller runs in the background. It quits as soon as a WaitResult arrives
// on the channel.
type WaitModel struct {
	TaskID  string
	Spinner spinner.Model
	Result  *WaitResult

	results <-chan WaitResult
}

// NewWaitModel builds the spinner model for a poll on taskID.
func NewWaitModel(taskID string, results <-chan WaitResult) WaitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)
	return WaitModel{TaskID: taskID, Spinner: s, results: results}
}

func (m WaitModel) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, awaitResult(m.results))
}

func awaitResult(ch <-chan WaitResult) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m WaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WaitResult:
		m.Result = &msg
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.Result = &WaitResult{Err: ErrWaitInterrupted}
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m WaitModel) View() string {
	if m.Result != nil {
		return ""
	}
	return fmt.Sprintf("%s Waiting for task %s to complete...\n", m.Spinner.View(), TruncateID(m.TaskID))
}
