package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/justestif/go-music-vibe-assistant/internal/analyzer"
	"github.com/justestif/go-music-vibe-assistant/internal/config"
	"github.com/justestif/go-music-vibe-assistant/internal/logging"
	"github.com/justestif/go-music-vibe-assistant/internal/web"
	webfs "github.com/justestif/go-music-vibe-assistant/web"
)

func newServeCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if addr != "" {
				cfg.Addr = addr
			}

			logger, err := logging.New(cfg.LogLevel, cfg.IsDevelopment())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			templates, err := webfs.Templates()
			if err != nil {
				return fmt.Errorf("creating templates filesystem: %w", err)
			}
			static, err := webfs.Static()
			if err != nil {
				return fmt.Errorf("creating static filesystem: %w", err)
			}

			server, err := web.NewServer(web.ServerConfig{
				Addr:        cfg.Addr,
				TemplatesFS: templates,
				StaticFS:    static,
				Analyzer: analyzer.New(
					analyzer.WithDelay(cfg.AnalysisDelay),
					analyzer.WithLogger(logger.Named("analyzer")),
				),
				Sessions: web.SessionConfig{
					HistoryLimit: cfg.HistoryLimit,
					ConnectDelay: cfg.ConnectDelay,
					TTL:          cfg.SessionTTL,
				},
				Logger: logger,
			})
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}

			logger.Info("configuration loaded",
				zap.String("env", cfg.Env),
				zap.Duration("analysis_delay", cfg.AnalysisDelay),
				zap.Int("history_limit", cfg.HistoryLimit),
			)

			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")

	return cmd
}
