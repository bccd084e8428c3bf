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

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

const tracerName = "github.com/Apurer/go-persistence-examples/internal/domains/inheritance/adapters/observability"

// ElectricGuitars decorates the electric guitar service with tracing, logging, and metrics.
type ElectricGuitars struct {
	inner   ports.ElectricGuitarRepository
	tracer  trace.Tracer
	logger  *slog.Logger
	written metric.Int64Counter
}

type Option func(*ElectricGuitars)

func WithLogger(logger *slog.Logger) Option {
	return func(g *ElectricGuitars) {
		g.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(g *ElectricGuitars) {
		g.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(g *ElectricGuitars) {
		if m == nil {
			return
		}
		g.written, _ = m.Int64Counter("inheritance.electric_guitars.written",
			metric.WithDescription("Number of electric guitars saved or deleted"))
	}
}

func NewElectricGuitars(inner ports.ElectricGuitarRepository, opts ...Option) ports.ElectricGuitarRepository {
	g := &ElectricGuitars{inner: inner}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.tracer == nil {
		g.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g
}

func (g *ElectricGuitars) Save(ctx context.Context, guitar *domain.ElectricGuitar) (*domain.ElectricGuitar, error) {
	ctx, span := g.tracer.Start(ctx, "ElectricGuitars.Save")
	defer span.End()

	result, err := g.inner.Save(ctx, guitar)
	if err != nil {
		return nil, g.fail(ctx, span, err, "failed to save electric guitar")
	}
	g.record(ctx, "save")
	g.logger.InfoContext(ctx, "electric guitar saved", slog.Int64("instrument.id", result.ID))
	return result, nil
}

func (g *ElectricGuitars) FindByID(ctx context.Context, id int64) (*domain.ElectricGuitar, error) {
	ctx, span := g.tracer.Start(ctx, "ElectricGuitars.FindByID", trace.WithAttributes(attribute.Int64("instrument.id", id)))
	defer span.End()

	result, err := g.inner.FindByID(ctx, id)
	if err != nil {
		return nil, g.fail(ctx, span, err, "failed to load electric guitar", slog.Int64("instrument.id", id))
	}
	return result, nil
}

func (g *ElectricGuitars) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.ElectricGuitar], error) {
	ctx, span := g.tracer.Start(ctx, "ElectricGuitars.FindAll", trace.WithAttributes(
		attribute.Int("page.number", pageable.PageNumber),
		attribute.Int("page.size", pageable.PageSize),
	))
	defer span.End()

	page, err := g.inner.FindAll(ctx, pageable)
	if err != nil {
		return paging.Page[*domain.ElectricGuitar]{}, g.fail(ctx, span, err, "failed to list electric guitars")
	}
	return page, nil
}

func (g *ElectricGuitars) Count(ctx context.Context) (int64, error) {
	ctx, span := g.tracer.Start(ctx, "ElectricGuitars.Count")
	defer span.End()

	n, err := g.inner.Count(ctx)
	if err != nil {
		return 0, g.fail(ctx, span, err, "failed to count electric guitars")
	}
	span.SetAttributes(attribute.Int64("instrument.count", n))
	return n, nil
}

func (g *ElectricGuitars) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := g.tracer.Start(ctx, "ElectricGuitars.DeleteByID", trace.WithAttributes(attribute.Int64("instrument.id", id)))
	defer span.End()

	if err := g.inner.DeleteByID(ctx, id); err != nil {
		return g.fail(ctx, span, err, "failed to delete electric guitar", slog.Int64("instrument.id", id))
	}
	g.record(ctx, "delete")
	g.logger.InfoContext(ctx, "electric guitar deleted", slog.Int64("instrument.id", id))
	return nil
}

func (g *ElectricGuitars) fail(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	g.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

func (g *ElectricGuitars) record(ctx context.Context, op string) {
	if g.written != nil {
		g.written.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
	}
}

var _ ports.ElectricGuitarRepository = (*ElectricGuitars)(nil)
