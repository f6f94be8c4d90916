package logging

import (
	"fmt"
	"strings"

	"github.com/prefeitura-rio/app-notion-site/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New cria o logger da aplicação a partir de LOG_LEVEL e LOG_FORMAT.
// LOG_FORMAT=console usa a configuração de desenvolvimento (colorida, legível);
// qualquer outro valor gera JSON.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL inválido %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if strings.EqualFold(cfg.LogFormat, "console") {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("falha ao inicializar logger: %w", err)
	}

	return logger.With(zap.String("service", cfg.SiteName)), nil
}
