package otel

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	defaultServiceName = "startconnect-api"
	defaultProtocol    = "grpc"
	defaultSampler     = "parentbased_traceidratio"
)

var propagator = propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})

var exporters = map[string]func(context.Context) (*otlptrace.Exporter, error){
	"grpc": func(ctx context.Context) (*otlptrace.Exporter, error) { return otlptracegrpc.New(ctx) },
	"http/protobuf": func(ctx context.Context) (*otlptrace.Exporter, error) {
		return otlptracehttp.New(ctx)
	},
}

func noopShutdown(context.Context) error { return nil }

// Init installs the global tracer provider and propagator. Exporters are
// configured through the standard OTEL_* environment variables. A broken
// exporter configuration degrades to no tracing instead of failing startup.
func Init(ctx context.Context, log logrus.FieldLogger) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagator)
	if off, _ := strconv.ParseBool(os.Getenv("OTEL_SDK_DISABLED")); off {
		log.WithField("tracing_enabled", false).Info("tracing_configured")
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(envOr("OTEL_SERVICE_NAME", defaultServiceName))),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("tracing resource: %w", err)
	}

	protocol := envOr("OTEL_EXPORTER_OTLP_PROTOCOL", defaultProtocol)
	newExporter, ok := exporters[protocol]
	if !ok {
		log.WithField("otlp_protocol", protocol).Error("tracing_init_failed")
		return noopShutdown, nil
	}
	exp, err := newExporter(ctx)
	if err != nil {
		log.WithError(err).Error("tracing_init_failed")
		return noopShutdown, nil
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
		trace.WithSampler(getSampler()),
	)
	otel.SetTracerProvider(tp)

	log.WithFields(logrus.Fields{
		"tracing_enabled": true,
		"otlp_protocol":   protocol,
		"otlp_endpoint":   envOr("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		"sampler":         envOr("OTEL_TRACES_SAMPLER", defaultSampler),
		"sampler_arg":     envOr("OTEL_TRACES_SAMPLER_ARG", "1.0"),
	}).Info("tracing_configured")

	return tp.Shutdown, nil
}

// envOr returns the variable's value, or fallback when it is unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getSampler() trace.Sampler {
	ratio := parseRatio(os.Getenv("OTEL_TRACES_SAMPLER_ARG"))
	switch envOr("OTEL_TRACES_SAMPLER", defaultSampler) {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(ratio)
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(ratio))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}

// parseRatio reads a sampling ratio, defaulting to 1 on empty or bad input.
func parseRatio(arg string) float64 {
	r, err := strconv.ParseFloat(arg, 64)
	if err != nil || r < 0 || r > 1 {
		return 1.0
	}
	return r
}
