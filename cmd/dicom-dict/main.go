// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dicom-dict CLI, which builds the
// DICOM data dictionary from the PS3.6 DocBook source and queries it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/dicom-dict/internal/logging"
	"github.com/pdiddy/dicom-dict/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "dicom-dict/0.1"
	defaultRetries   = 5
)

// rootCmd is the base command for the dicom-dict CLI.
var rootCmd = &cobra.Command{
	Use:   "dicom-dict",
	Short: "Build and query the DICOM data dictionary",
	Long: `dicom-dict reads the Registry of DICOM Data Elements from the DocBook
edition of PS3.6 and turns it into a dictionary artifact: a Go table compiled
into pkg/dictionary/std, a JSON or YAML data file, or an SQLite database.

The lookup subcommand resolves keywords and tags against the standard
dictionary, optionally behind a dictionary stored in SQLite.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		logger := logging.Setup(viper.GetString("log.level"), viper.GetString("log.format"), os.Stderr)
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "path", used)
		}
		cmd.SetContext(logging.NewContext(cmd.Context(), logger))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./dicom-dict.yaml or ~/.config/dicom-dict/dicom-dict.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Duration("timeout", 0, "HTTP request timeout (default 60s)")
	pf.String("user-agent", "", "User-Agent sent when fetching over HTTP")
	pf.Int("max-retries", 0, "retries on HTTP 429 and 503 (default 5)")

	bindFlags(pf, map[string]string{
		"log.level":        "log-level",
		"log.format":       "log-format",
		"http.timeout":     "timeout",
		"http.user_agent":  "user-agent",
		"http.max_retries": "max-retries",
	})
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dicom-dict")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dicom-dict"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix("DICOM_DICT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Reading config file:", err)
		}
	}
}

func setDefaults() {
	viper.SetDefault("build.source", types.DefaultSource)
	viper.SetDefault("build.format", string(types.FormatGo))
	viper.SetDefault("build.include_retired", true)
	viper.SetDefault("build.table_id", types.DefaultTableID)
	viper.SetDefault("build.cell_element", "td")
	viper.SetDefault("build.package", "std")
	viper.SetDefault("build.var_name", "entries")
	viper.SetDefault("fetch.output", "part06.xml")
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("http.max_retries", defaultRetries)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

// bindFlags binds each viper key to the named flag.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding %s to --%s: %v", key, name, err))
		}
	}
}

// httpConfig reads the http.* keys.
func httpConfig() types.HTTPConfig {
	cfg := types.HTTPConfig{
		Timeout:    viper.GetDuration("http.timeout"),
		UserAgent:  viper.GetString("http.user_agent"),
		MaxRetries: viper.GetInt("http.max_retries"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
