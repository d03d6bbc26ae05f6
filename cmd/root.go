package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hipchat/internal/api"
	"hipchat/internal/config"
	"hipchat/internal/logging"
)

// cfgFile holds the path to the configuration file specified via command-line flag.
// If empty, the application will look for config.yaml in the current directory.
var cfgFile string

// verbose forces debug level console logging.
var verbose bool

// timeout bounds each API request.
var timeout time.Duration

// appConfig stores the parsed configuration. Flags override environment
// variables, which override config file values.
var appConfig config.Config

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hipchat",
	Short: "Send HipChat room notifications and private messages",
	Long: `hipchat posts messages through the HipChat v2 API:
  - room notifications with color, label and format options
  - private messages to users
  - credentials come from HIPCHAT_API_TOKEN (comma separated tokens are
    rotated at random), HIPCHAT_API_SERVER or a config file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute is the main entry point for the CLI application.
// It initializes the Cobra command structure and handles any errors that occur during execution.
// This function is called by main() and should only be invoked once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// init registers the configuration hook and the persistent flags shared
// by all subcommands.
func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringP("server", "s", "", "API host (default "+api.DefaultServer+")")
	rootCmd.PersistentFlags().StringP("token", "t", "", "API token, comma separated for rotation")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")

	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
}

// initConfig reads the configuration file and unmarshals it into the appConfig struct.
// It supports both explicit config file paths (via --config flag) and automatic discovery.
// Environment variables and flags are bound on top and override config file values.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config.yaml in the current directory
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("label", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_room", "")

	// Read environment variables that match config keys
	viper.AutomaticEnv()
	_ = viper.BindEnv("token", api.DefaultTokenEnv)
	_ = viper.BindEnv("server", api.DefaultServerEnv)

	// A missing config file is only an error when one was asked for
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
	}

	// Unmarshal the config into our struct
	if err := viper.Unmarshal(&appConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to decode config: %v\n", err)
	}
}

// setupLogging configures console logging and, when log_room is set,
// mirrors warnings and errors to that room.
func setupLogging() {
	level := appConfig.LogLevel
	if verbose {
		level = "debug"
	}
	logging.Setup(level)

	if appConfig.LogRoom == "" {
		return
	}
	tokens := appConfig.Tokens()
	if len(tokens) == 0 {
		return
	}
	// The hook's client logs through the pre-hook logger, so a failing
	// mirror send cannot feed back into the hook.
	client := api.NewHipChatAPI(appConfig.Server, api.StaticTokens(tokens))
	minLevel := zerolog.WarnLevel
	hook := logging.NewHook(client, appConfig.LogRoom, &logging.HookOptions{
		Label:    appConfig.Label,
		MinLevel: &minLevel,
	})
	log.Logger = log.Logger.Hook(hook)
}

// newClient builds the API client from the resolved configuration.
func newClient() (*api.HipChatAPI, error) {
	tokens := appConfig.Tokens()
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no API token configured: set %s or the token config key", api.DefaultTokenEnv)
	}
	return api.NewHipChatAPI(appConfig.Server, api.StaticTokens(tokens)), nil
}

// messageFromArgs joins the message arguments with spaces; a single "-"
// reads the message from stdin instead.
func messageFromArgs(args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read message from stdin: %v", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return strings.Join(args, " "), nil
}

// resolveLabel picks the sender label for a notification: an explicit
// flag value wins over the configured default.
func resolveLabel(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}
