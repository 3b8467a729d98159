package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/alittlebrighter/thermobox"
)

var (
	configPath = defaultConfigPath()
	envFile    string

	// config is loaded before any command that drives a controller runs
	config *thermobox.Config
)

// rootCmd starts the terminal UI when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "thermobox",
	Short: "Simulated device temperature controller.",
	Long: `Simulated device temperature controller. A self-test runs first, then ` +
		`the temperature can be warmed up or cooled down between the configured ` +
		`bounds. Transport mode locks the controls.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", configPath, "Path to the configuration file to use.")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Optional dotenv file with THERMOBOX_* overrides.")

	rootCmd.AddCommand(uiCmd, headlessCmd, configCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if envFile != "" {
		if err := thermobox.LoadEnvFile(envFile); err != nil {
			return err
		}
	}

	var err error
	config, err = thermobox.ReadConfig(configPath)
	return err
}

// openLogFile sends the standard logger to the configured log file, if any.
func openLogFile() (bool, error) {
	if config.LogFile == "" {
		return false, nil
	}

	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0660)
	if err != nil {
		return false, err
	}
	log.SetOutput(f)
	atexit.Register(func() { f.Close() })

	return true, nil
}

func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "thermobox", "config.yaml")
}
