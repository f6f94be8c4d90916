package main

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/prefeitura-rio/app-notion-site/internal/api/routes"
	"github.com/prefeitura-rio/app-notion-site/internal/config"
	"github.com/prefeitura-rio/app-notion-site/internal/logging"
	"github.com/prefeitura-rio/app-notion-site/internal/notion"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carrega as dependências compartilhadas pelos subcomandos
type app struct {
	services routes.Services
	logger   *zap.Logger
	client   *notion.Client
	verbose  bool
}

// newRootCmd monta a árvore de comandos. Com services nil, os serviços são
// criados a partir do ambiente no PersistentPreRunE.
func newRootCmd(services *routes.Services) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "notionctl",
		Short:         "Consulta o workspace do Notion usado pelo site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if services != nil {
				a.services = *services
				a.logger = zap.NewNop()
				return nil
			}
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.client != nil {
				a.client.CloseIdleConnections()
			}
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log em nível debug")

	root.AddCommand(
		newNavigationCmd(a),
		newGalleryCmd(a),
		newResolveCmd(a),
		newPageCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg := config.LoadConfig()
	cfg.LogFormat = "console"
	if !a.verbose {
		cfg.LogLevel = zapcore.WarnLevel.String()
	} else {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}

	a.logger = logger
	a.client = notion.NewClient(cfg, logger)
	a.services = routes.NewServices(cfg, a.client, logger)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
