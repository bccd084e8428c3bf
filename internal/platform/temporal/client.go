// Package temporal dials the Temporal frontend with the process tracing and logging attached.
package temporal

import (
	"errors"
	"log/slog"
	"os"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	"github.com/Apurer/go-persistence-examples/internal/platform/config"
	platformobservability "github.com/Apurer/go-persistence-examples/internal/platform/observability"
)

// ErrDisabled is returned by Dial when Temporal has been switched off in configuration.
var ErrDisabled = errors.New("temporal disabled by configuration")

// Options builds client options carrying the OTel tracing interceptor and a structured logger.
func Options(cfg config.TemporalConfig, instruments *platformobservability.Instruments, tracerName string) (client.Options, error) {
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer(tracerName),
	})
	if err != nil {
		return client.Options{}, err
	}
	options := client.Options{
		HostPort:  cfg.Address,
		Namespace: cfg.Namespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return options, nil
}

// Dial connects to Temporal unless cfg.Disabled is set.
func Dial(cfg config.TemporalConfig, instruments *platformobservability.Instruments, tracerName string) (client.Client, error) {
	if cfg.Disabled {
		return nil, ErrDisabled
	}
	options, err := Options(cfg, instruments, tracerName)
	if err != nil {
		return nil, err
	}
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
