/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskqueue/taskqueue-go/internal/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Manage telemetry settings",
	Long: `View and manage anonymous telemetry settings.

Only command names and success flags are collected; no task contents,
URLs or other user data ever leave the machine. Setting DO_NOT_TRACK or
TASKQUEUE_NO_TELEMETRY disables telemetry regardless of stored consent.`,
}

var telemetryStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current telemetry status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := telemetry.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to read telemetry status: %w", err)
		}

		if cfg.IsEnabled() {
			fmt.Println("Telemetry: enabled")
			fmt.Printf("Anonymous ID: %s\n", cfg.AnonymousID)
			fmt.Println("To disable: taskqueue telemetry disable")
		} else {
			fmt.Println("Telemetry: disabled")
			fmt.Println("To enable: taskqueue telemetry enable")
		}
		return nil
	},
}

var telemetryEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable anonymous telemetry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTelemetryConsent(true)
	},
}

var telemetryDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable anonymous telemetry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTelemetryConsent(false)
	},
}

func setTelemetryConsent(enabled bool) error {
	cfg, err := telemetry.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to read telemetry config: %w", err)
	}
	cfg.Enabled = enabled
	cfg.ConsentAsked = true
	if err := telemetry.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save telemetry config: %w", err)
	}
	if enabled {
		fmt.Println("Telemetry enabled.")
	} else {
		fmt.Println("Telemetry disabled.")
	}
	return nil
}

func init() {
	telemetryCmd.AddCommand(telemetryStatusCmd)
	telemetryCmd.AddCommand(telemetryEnableCmd)
	telemetryCmd.AddCommand(telemetryDisableCmd)
	rootCmd.AddCommand(telemetryCmd)
}
