// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/blueprint-engine/internal/archive"
	"github.com/pdiddy/blueprint-engine/internal/blueprint"
	"github.com/pdiddy/blueprint-engine/internal/cache"
	"github.com/pdiddy/blueprint-engine/internal/monitoring"
	"github.com/pdiddy/blueprint-engine/internal/secrets"
	"github.com/pdiddy/blueprint-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the blueprint generators over HTTP",
	Long: `Serve starts the HTTP API. POST a form to /v1/blueprints/project or
/v1/blueprints/creative to generate a blueprint; GET /metrics exposes
Prometheus metrics.

When server.cache.addr is set, blueprints are cached in redis by input
digest. When the archive is enabled, /v1/runs lists archived runs and
?archive=true on a generate request records the run. A bearer token is
required on /v1 routes when server.token or .secrets/server-token is set.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvCfg := cfg.Server
	if cmd.Flags().Changed("addr") {
		srvCfg.Addr, _ = cmd.Flags().GetString("addr")
	}
	srvCfg.Token = loadedSecrets.Or(srvCfg.Token, secrets.ServerToken)
	srvCfg.Cache.Password = loadedSecrets.Or(srvCfg.Cache.Password, secrets.RedisPassword)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := monitoring.NewMetrics()
	svc := &blueprint.Service{Metrics: metrics, Logger: logger}
	deps := server.Deps{Service: svc, Metrics: metrics, Logger: logger}

	if archiveRequested(cmd) {
		store, err := archive.NewStore(cfg.Archive)
		if err != nil {
			return err
		}
		defer store.Close()
		svc.Archive = store
		deps.Runs = store
		logger.Info("archive enabled", zap.String("dir", cfg.Archive.Dir))
	}

	if srvCfg.Cache.Addr != "" {
		c, err := cache.New(ctx, srvCfg.Cache)
		if err != nil {
			return err
		}
		defer c.Close()
		svc.Cache = c
		logger.Info("cache enabled", zap.String("addr", srvCfg.Cache.Addr), zap.Duration("ttl", srvCfg.Cache.TTL))
	}

	return server.New(srvCfg, deps).Run(ctx)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().Bool("archive", false, "enable the archive (default from config)")

	rootCmd.AddCommand(serveCmd)
}
