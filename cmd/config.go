/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/taskqueue/taskqueue-go/client"
)

const (
	configName = ".taskqueue"
	envPrefix  = "TASKQUEUE"
)

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. Missing files are fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g. TASKQUEUE_BASE_URL
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	viper.SetDefault("base-url", "http://localhost:8080")
	viper.SetDefault("timeout", 30)
	viper.SetDefault("retry-attempts", 3)
	viper.SetDefault("retry-backoff", 1.0)

	if cfgFileFlag := viper.GetString("config"); cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		LogVerbose("Using config file: " + viper.ConfigFileUsed())
	}
}

// newAPIClient builds the SDK client from the resolved configuration.
func newAPIClient() *client.Client {
	cfg := client.Config{
		BaseURL:       viper.GetString("base-url"),
		Timeout:       time.Duration(viper.GetFloat64("timeout") * float64(time.Second)),
		RetryAttempts: viper.GetInt("retry-attempts"),
		RetryBackoff:  time.Duration(viper.GetFloat64("retry-backoff") * float64(time.Second)),
		Headers:       viper.GetStringMapString("headers"),
	}
	if viper.GetBool("verbose") {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
		cfg.Logger = log
	}
	return client.New(cfg)
}
