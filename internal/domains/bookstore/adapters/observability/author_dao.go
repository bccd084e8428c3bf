package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/bookstore/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// AuthorDAO decorates an author DAO with tracing, logging, and metrics.
type AuthorDAO struct {
	inner ports.AuthorDAO
	instrumentation
}

func NewAuthorDAO(inner ports.AuthorDAO, opts ...Option) ports.AuthorDAO {
	return &AuthorDAO{inner: inner, instrumentation: newInstrumentation(opts)}
}

func (d *AuthorDAO) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	ctx, span := d.tracer.Start(ctx, "AuthorDAO.GetByID", trace.WithAttributes(attribute.Int64("author.id", id)))
	defer span.End()

	result, err := d.inner.GetByID(ctx, id)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to load author", slog.Int64("author.id", id))
	}
	return result, nil
}

func (d *AuthorDAO) FindAuthorByName(ctx context.Context, firstName, lastName string) (*domain.Author, error) {
	ctx, span := d.tracer.Start(ctx, "AuthorDAO.FindAuthorByName",
		trace.WithAttributes(attribute.String("author.first_name", firstName), attribute.String("author.last_name", lastName)))
	defer span.End()

	result, err := d.inner.FindAuthorByName(ctx, firstName, lastName)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to find author by name", slog.String("author.last_name", lastName))
	}
	span.SetAttributes(attribute.Int64("author.id", result.ID))
	return result, nil
}

func (d *AuthorDAO) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	ctx, span := d.startPage(ctx, "AuthorDAO.FindAll", pageable)
	defer span.End()

	result, err := d.inner.FindAll(ctx, pageable)
	return d.endPage(ctx, span, result, err, "failed to list authors")
}

func (d *AuthorDAO) FindAllByLastNameSortByFirstName(ctx context.Context, lastName string, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	ctx, span := d.startPage(ctx, "AuthorDAO.FindAllByLastNameSortByFirstName", pageable, attribute.String("author.last_name", lastName))
	defer span.End()

	result, err := d.inner.FindAllByLastNameSortByFirstName(ctx, lastName, pageable)
	return d.endPage(ctx, span, result, err, "failed to list authors by last name")
}

func (d *AuthorDAO) FindAllByLastNameLike(ctx context.Context, lastName string, pageable paging.Pageable) (paging.Page[*domain.Author], error) {
	ctx, span := d.startPage(ctx, "AuthorDAO.FindAllByLastNameLike", pageable, attribute.String("author.last_name", lastName))
	defer span.End()

	result, err := d.inner.FindAllByLastNameLike(ctx, lastName, pageable)
	return d.endPage(ctx, span, result, err, "failed to search authors by last name")
}

func (d *AuthorDAO) SaveNewAuthor(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	ctx, span := d.tracer.Start(ctx, "AuthorDAO.SaveNewAuthor")
	defer span.End()

	result, err := d.inner.SaveNewAuthor(ctx, author)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to save author")
	}
	span.SetAttributes(attribute.Int64("author.id", result.ID))
	d.metrics.recordSaved(ctx, "author")
	d.logInfo(ctx, "author saved", slog.Int64("author.id", result.ID))
	return result, nil
}

func (d *AuthorDAO) UpdateAuthor(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	ctx, span := d.tracer.Start(ctx, "AuthorDAO.UpdateAuthor")
	defer span.End()

	result, err := d.inner.UpdateAuthor(ctx, author)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to update author")
	}
	span.SetAttributes(attribute.Int64("author.id", result.ID))
	d.metrics.recordSaved(ctx, "author")
	d.logInfo(ctx, "author updated", slog.Int64("author.id", result.ID))
	return result, nil
}

func (d *AuthorDAO) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := d.tracer.Start(ctx, "AuthorDAO.DeleteByID", trace.WithAttributes(attribute.Int64("author.id", id)))
	defer span.End()

	if err := d.inner.DeleteByID(ctx, id); err != nil {
		return d.handleError(ctx, span, err, "failed to delete author", slog.Int64("author.id", id))
	}
	d.metrics.recordDeleted(ctx, "author")
	d.logInfo(ctx, "author deleted", slog.Int64("author.id", id))
	return nil
}

func (d *AuthorDAO) startPage(ctx context.Context, name string, pageable paging.Pageable, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.Int("page.number", pageable.PageNumber), attribute.Int("page.size", pageable.PageSize))
	return d.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (d *AuthorDAO) endPage(ctx context.Context, span trace.Span, result paging.Page[*domain.Author], err error, msg string) (paging.Page[*domain.Author], error) {
	if err != nil {
		return result, d.handleError(ctx, span, err, msg)
	}
	span.SetAttributes(attribute.Int64("page.total_elements", result.TotalElements))
	return result, nil
}

var _ ports.AuthorDAO = (*AuthorDAO)(nil)
