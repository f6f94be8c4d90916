package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-notion-site/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	ServiceName    = "app-notion-site"
	ServiceVersion = "v1.0.0"
)

// Tracer encapsula o provider OTLP; o valor zero (tracing desligado) é válido
type Tracer struct {
	provider *sdktrace.TracerProvider
	logger   *zap.Logger
}

// InitTracer configura o exporter OTLP gRPC e registra o provider global.
// Com TRACING_ENABLED=false retorna um Tracer inerte.
func InitTracer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Tracer, error) {
	logger = logger.Named("tracing")
	if !cfg.TracingEnabled {
		logger.Info("Tracing desabilitado")
		return &Tracer{logger: logger}, nil
	}

	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar exporter OTLP: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(512),
			sdktrace.WithBatchTimeout(10*time.Second),
			sdktrace.WithMaxQueueSize(2048),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("Tracer inicializado", zap.String("endpoint", cfg.TracingEndpoint))
	return &Tracer{provider: provider, logger: logger}, nil
}

// Shutdown descarrega os spans pendentes
func (t *Tracer) Shutdown(ctx context.Context) {
	if t == nil || t.provider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := t.provider.Shutdown(ctx); err != nil {
		t.logger.Warn("Falha ao finalizar tracer provider", zap.Error(err))
	}
}
