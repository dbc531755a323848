/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taskqueue/taskqueue-go/client"
	"github.com/taskqueue/taskqueue-go/internal/telemetry"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// baseURL is the API endpoint flag value.
	baseURL string
	// version is the CLI version, kept in lockstep with the SDK.
	version = client.Version
	// invokedCommand is recorded for telemetry.
	invokedCommand string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskqueue",
	Short: "Command line interface for the TaskQueue API",
	Long: `taskqueue talks to a TaskQueue server over its REST API.
It manages tasks and projects: create, list, update, cancel, delete,
and wait for task completion.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		invokedCommand = cmd.CommandPath()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()

	tel := newTelemetryClient()
	tel.Track("command_run", map[string]any{
		"command": invokedCommand,
		"success": err == nil,
	})
	_ = tel.Close()

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.taskqueue.yaml or ./.taskqueue.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "TaskQueue API base URL (default is http://localhost:8080)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// newTelemetryClient builds the telemetry client from stored consent.
// Failures fall back to a no-op client; telemetry must never break the CLI.
func newTelemetryClient() telemetry.Client {
	cfg, err := telemetry.LoadConfig()
	if err != nil || !cfg.IsEnabled() {
		return telemetry.NoopClient{}
	}
	tel, err := telemetry.NewClient(viper.GetString("telemetry-api-key"), version, cfg)
	if err != nil {
		return telemetry.NoopClient{}
	}
	return tel
}
