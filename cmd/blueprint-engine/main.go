// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the blueprint-engine CLI.
// Subcommands: project, creative, batch, form, history, serve, version.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/logging"
	"github.com/pdiddy/blueprint-engine/internal/secrets"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the merged configuration: defaults, config file, then env.
	cfg types.Config

	// logger writes structured logs to stderr.
	logger = zap.NewNop()

	// loadedSecrets holds credentials loaded from .secrets/ at startup.
	loadedSecrets secrets.Set
)

// rootCmd is the base command for the blueprint-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "blueprint-engine",
	Short: "Turn project and creative intake forms into structured blueprints",
	Long: `blueprint-engine expands a short intake form into a full blueprint.

The project engine turns a project brief into a program plan: summary,
architecture, phased execution path, governance documents, and
recommendations. The creative engine turns a brand brief into a creative
system: narrative, image prompts, interface system, copy deck, style guide,
and recommendations.

Generation is deterministic. The same form always yields the same blueprint.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c

		log, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		logger = log

		s, err := secrets.Load(secrets.DefaultDir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug("loaded secrets", zap.Strings("keys", s.Keys()))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./blueprint-engine.yaml or ~/.config/blueprint-engine/blueprint-engine.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blueprint-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "blueprint-engine"))
		}
	}

	setDefaults(types.DefaultConfig())

	viper.SetEnvPrefix("BLUEPRINT_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(d types.Config) {
	viper.SetDefault("generation.format", string(d.Generation.Format))
	viper.SetDefault("generation.output_dir", d.Generation.OutputDir)
	viper.SetDefault("generation.jobs", d.Generation.Jobs)

	viper.SetDefault("archive.enabled", d.Archive.Enabled)
	viper.SetDefault("archive.dir", d.Archive.Dir)
	viper.SetDefault("archive.max_results", d.Archive.MaxResults)

	viper.SetDefault("server.addr", d.Server.Addr)
	viper.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	viper.SetDefault("server.token", d.Server.Token)
	viper.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	viper.SetDefault("server.cache.addr", d.Server.Cache.Addr)
	viper.SetDefault("server.cache.password", d.Server.Cache.Password)
	viper.SetDefault("server.cache.db", d.Server.Cache.DB)
	viper.SetDefault("server.cache.ttl", d.Server.Cache.TTL)

	viper.SetDefault("logging.level", d.Logging.Level)
	viper.SetDefault("logging.development", d.Logging.Development)
}

// loadConfig decodes viper's merged settings over the defaults.
func loadConfig() (types.Config, error) {
	c := types.DefaultConfig()
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := types.ParseOutputFormat(string(c.Generation.Format)); err != nil {
		return c, fmt.Errorf("generation.format: %w", err)
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
