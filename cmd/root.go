// Package cmd implements the lenslink command-line client.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Adi-cmrec/lenslink/internal/api"
	"github.com/Adi-cmrec/lenslink/internal/logging"
	"github.com/Adi-cmrec/lenslink/internal/session"
)

// Config holds all configuration values.
type Config struct {
	Server   string `mapstructure:"server"`
	Timeout  int    `mapstructure:"timeout"`
	LogLevel string `mapstructure:"log_level"`
	JSON     bool   `mapstructure:"json"`
}

var (
	cfgFile string
	jsonOut bool
	appCfg  Config
)

var rootCmd = &cobra.Command{
	Use:   "lenslink",
	Short: "Client for the LensLink photographer directory",
	Long: `lenslink is a command-line client for the LensLink photographer
marketplace directory.

Browse and filter photographer listings, sign up and log in, and manage
your own profile including portfolio photo uploads.

Examples:
  lenslink browse
  lenslink photographers list --city paris
  lenslink login
  lenslink profile show`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.lenslink/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output machine-readable JSON")

	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// configDir returns the lenslink state directory (~/.lenslink).
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lenslink"
	}
	return filepath.Join(home, ".lenslink")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(configDir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LENSLINK")
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("server", api.DefaultBaseURL)
	viper.SetDefault("timeout", 30)
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("json", false)

	// Missing config file is fine; defaults and env cover everything.
	_ = viper.ReadInConfig()

	if err := viper.Unmarshal(&appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if viper.GetBool("json") {
		jsonOut = true
	}

	logging.Init(appCfg.LogLevel)
}

// getClient builds the API client from configuration.
func getClient() *api.Client {
	return api.NewClient(
		api.WithBaseURL(viper.GetString("server")),
		api.WithTimeout(time.Duration(viper.GetInt("timeout"))*time.Second),
	)
}

// getSession opens the durable session store and restores any persisted
// state without a validation round-trip.
func getSession() (*session.Store, error) {
	store, err := session.NewStore(filepath.Join(configDir(), "session.json"))
	if err != nil {
		return nil, err
	}
	if err := store.Restore(); err != nil {
		return nil, err
	}
	return store, nil
}

// requireSession fails fast for commands that only make sense logged in.
func requireSession() (*session.Store, error) {
	store, err := getSession()
	if err != nil {
		return nil, err
	}
	if !store.IsAuthenticated() {
		return nil, fmt.Errorf("not logged in; run 'lenslink login' first")
	}
	return store, nil
}
