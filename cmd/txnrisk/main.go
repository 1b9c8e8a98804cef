package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/txnrisk/internal/cli"
	"github.com/Veraticus/txnrisk/internal/common"
	"github.com/Veraticus/txnrisk/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	envFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "txnrisk",
		Short: "Transaction category and risk classifier",
		Long: `txnrisk classifies a financial transaction by its title into a category
(travel, ecommerce, food, entertainment, utilities or other) and assigns a
risk level from category-specific amount thresholds.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/txnrisk/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default: .env in the working directory, if present)")
	rootCmd.PersistentFlags().String("rules", "", "YAML rule table to use instead of the built-in rules")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("rules.path", rootCmd.PersistentFlags().Lookup("rules"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(classifyAICmd())
	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(rulesCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Cancel in-flight requests on SIGINT/SIGTERM
	ctx, cancel := cli.NewInterruptHandler(os.Stderr).HandleInterrupts(context.Background())

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err for the user. Unexpected failures are also logged,
// and configuration problems get a hint on where settings come from.
func reportError(w io.Writer, err error) {
	var userErr *common.UserError
	if !errors.As(err, &userErr) {
		common.LogError(err, "Command failed", nil)
	}

	fmt.Fprintln(w, cli.FormatError(err.Error()))

	if common.IsConfigError(err) {
		fmt.Fprintln(w, cli.FormatWarning(
			"Check ANTHROPIC_API_KEY, your .env file, --rules and $HOME/.config/txnrisk/config.yaml"))
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// .env first so its values are visible to viper's env lookups
	if err := config.LoadDotenv(envFile); err != nil {
		return err
	}

	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/txnrisk", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. TXNRISK_LLM_MODEL for llm.model
	viper.SetEnvPrefix("TXNRISK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}

	logger, err := common.NewLogger(os.Stderr, level, viper.GetString("logging.format"))
	if err != nil {
		return err
	}

	slog.SetDefault(logger)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "txnrisk version %s\n", version)
		},
	}
}
