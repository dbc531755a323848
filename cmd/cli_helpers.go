/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/taskqueue/taskqueue-go/models"
)

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func confirmOrAbort(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Println("Cancelled.")
		return false
	}
	return true
}

// parseStatusFlag parses a --status flag value, or returns nil when unset.
func parseStatusFlag(value string) (*models.TaskStatus, error) {
	if value == "" {
		return nil, nil
	}
	status, err := models.ParseTaskStatus(value)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// parsePriorityFlag parses a --priority flag value, or returns nil when
// unset.
func parsePriorityFlag(value string) (*models.TaskPriority, error) {
	if value == "" {
		return nil, nil
	}
	priority, err := models.ParseTaskPriority(value)
	if err != nil {
		return nil, err
	}
	return &priority, nil
}
