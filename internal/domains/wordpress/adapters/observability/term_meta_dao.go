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

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/ports"
)

const tracerName = "github.com/Apurer/go-persistence-examples/internal/domains/wordpress/adapters/observability"

// TermMetaDAO decorates a term meta DAO with tracing, logging, and metrics.
type TermMetaDAO struct {
	inner   ports.TermMetaDAO
	tracer  trace.Tracer
	logger  *slog.Logger
	written metric.Int64Counter
}

type Option func(*TermMetaDAO)

func WithLogger(logger *slog.Logger) Option {
	return func(d *TermMetaDAO) {
		d.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(d *TermMetaDAO) {
		d.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(d *TermMetaDAO) {
		if m == nil {
			return
		}
		d.written, _ = m.Int64Counter("wordpress.dao.rows_written",
			metric.WithDescription("Number of wp_terms and wp_termmeta rows saved or deleted"))
	}
}

func NewTermMetaDAO(inner ports.TermMetaDAO, opts ...Option) ports.TermMetaDAO {
	d := &TermMetaDAO{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	if d.tracer == nil {
		d.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d
}

func (d *TermMetaDAO) Save(ctx context.Context, meta *domain.TermMeta) (*domain.TermMeta, error) {
	ctx, span := d.tracer.Start(ctx, "TermMetaDAO.Save")
	defer span.End()

	result, err := d.inner.Save(ctx, meta)
	if err != nil {
		return nil, d.fail(ctx, span, err, "failed to save term meta")
	}
	d.record(ctx, "wp_termmeta", "save")
	d.logger.InfoContext(ctx, "term meta saved", slog.Int64("meta.id", result.ID), slog.Int64("term.id", result.TermID()))
	return result, nil
}

func (d *TermMetaDAO) GetByID(ctx context.Context, id int64) (*domain.TermMeta, error) {
	ctx, span := d.tracer.Start(ctx, "TermMetaDAO.GetByID", trace.WithAttributes(attribute.Int64("meta.id", id)))
	defer span.End()

	result, err := d.inner.GetByID(ctx, id)
	if err != nil {
		return nil, d.fail(ctx, span, err, "failed to load term meta", slog.Int64("meta.id", id))
	}
	return result, nil
}

func (d *TermMetaDAO) FindByTerm(ctx context.Context, termID int64) ([]*domain.TermMeta, error) {
	ctx, span := d.tracer.Start(ctx, "TermMetaDAO.FindByTerm", trace.WithAttributes(attribute.Int64("term.id", termID)))
	defer span.End()

	result, err := d.inner.FindByTerm(ctx, termID)
	if err != nil {
		return nil, d.fail(ctx, span, err, "failed to list term meta", slog.Int64("term.id", termID))
	}
	span.SetAttributes(attribute.Int("meta.count", len(result)))
	return result, nil
}

func (d *TermMetaDAO) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := d.tracer.Start(ctx, "TermMetaDAO.DeleteByID", trace.WithAttributes(attribute.Int64("meta.id", id)))
	defer span.End()

	if err := d.inner.DeleteByID(ctx, id); err != nil {
		return d.fail(ctx, span, err, "failed to delete term meta", slog.Int64("meta.id", id))
	}
	d.record(ctx, "wp_termmeta", "delete")
	d.logger.InfoContext(ctx, "term meta deleted", slog.Int64("meta.id", id))
	return nil
}

func (d *TermMetaDAO) SaveTerm(ctx context.Context, term *domain.Term) (*domain.Term, error) {
	ctx, span := d.tracer.Start(ctx, "TermMetaDAO.SaveTerm")
	defer span.End()

	result, err := d.inner.SaveTerm(ctx, term)
	if err != nil {
		return nil, d.fail(ctx, span, err, "failed to save term")
	}
	d.record(ctx, "wp_terms", "save")
	d.logger.InfoContext(ctx, "term saved", slog.Int64("term.id", result.ID), slog.String("term.slug", result.Slug))
	return result, nil
}

func (d *TermMetaDAO) GetTerm(ctx context.Context, id int64) (*domain.Term, error) {
	ctx, span := d.tracer.Start(ctx, "TermMetaDAO.GetTerm", trace.WithAttributes(attribute.Int64("term.id", id)))
	defer span.End()

	result, err := d.inner.GetTerm(ctx, id)
	if err != nil {
		return nil, d.fail(ctx, span, err, "failed to load term", slog.Int64("term.id", id))
	}
	return result, nil
}

func (d *TermMetaDAO) fail(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	d.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

func (d *TermMetaDAO) record(ctx context.Context, table, op string) {
	if d.written == nil {
		return
	}
	d.written.Add(ctx, 1, metric.WithAttributes(attribute.String("table", table), attribute.String("op", op)))
}

var _ ports.TermMetaDAO = (*TermMetaDAO)(nil)
