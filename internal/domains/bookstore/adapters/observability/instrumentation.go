package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/Apurer/go-persistence-examples/internal/domains/bookstore/adapters/observability"

// instrumentation is shared by the DAO decorators of the bookstore context.
type instrumentation struct {
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics daoMetrics
}

type Option func(*instrumentation)

func WithLogger(logger *slog.Logger) Option {
	return func(i *instrumentation) {
		i.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(i *instrumentation) {
		i.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(i *instrumentation) {
		i.metrics = newDAOMetrics(m)
	}
}

func newInstrumentation(opts []Option) instrumentation {
	i := instrumentation{
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&i)
		}
	}
	if i.tracer == nil {
		i.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return i
}

func (i instrumentation) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if i.logger == nil {
		return
	}
	i.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (i instrumentation) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if i.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	i.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (i instrumentation) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	i.logError(ctx, msg, err, attrs...)
	return err
}

type daoMetrics struct {
	saved   metric.Int64Counter
	deleted metric.Int64Counter
}

func newDAOMetrics(m metric.Meter) daoMetrics {
	if m == nil {
		return daoMetrics{}
	}
	saved, _ := m.Int64Counter("bookstore.dao.entities_saved", metric.WithDescription("Number of bookstore entities saved"))
	deleted, _ := m.Int64Counter("bookstore.dao.entities_deleted", metric.WithDescription("Number of bookstore entities deleted"))
	return daoMetrics{saved: saved, deleted: deleted}
}

func (m daoMetrics) recordSaved(ctx context.Context, entity string) {
	if m.saved != nil {
		m.saved.Add(ctx, 1, metric.WithAttributes(attribute.String("entity", entity)))
	}
}

func (m daoMetrics) recordDeleted(ctx context.Context, entity string) {
	if m.deleted != nil {
		m.deleted.Add(ctx, 1, metric.WithAttributes(attribute.String("entity", entity)))
	}
}
