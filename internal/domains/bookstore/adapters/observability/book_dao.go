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

// BookDAO decorates a book DAO with tracing, logging, and metrics.
type BookDAO struct {
	inner ports.BookDAO
	instrumentation
}

func NewBookDAO(inner ports.BookDAO, opts ...Option) ports.BookDAO {
	return &BookDAO{inner: inner, instrumentation: newInstrumentation(opts)}
}

func (d *BookDAO) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	ctx, span := d.tracer.Start(ctx, "BookDAO.GetByID", trace.WithAttributes(attribute.Int64("book.id", id)))
	defer span.End()

	result, err := d.inner.GetByID(ctx, id)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to load book", slog.Int64("book.id", id))
	}
	return result, nil
}

func (d *BookDAO) FindBookByTitle(ctx context.Context, title string) (*domain.Book, error) {
	ctx, span := d.tracer.Start(ctx, "BookDAO.FindBookByTitle", trace.WithAttributes(attribute.String("book.title", title)))
	defer span.End()

	result, err := d.inner.FindBookByTitle(ctx, title)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to find book by title", slog.String("book.title", title))
	}
	return result, nil
}

func (d *BookDAO) FindByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	ctx, span := d.tracer.Start(ctx, "BookDAO.FindByISBN", trace.WithAttributes(attribute.String("book.isbn", isbn)))
	defer span.End()

	result, err := d.inner.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to find book by isbn", slog.String("book.isbn", isbn))
	}
	return result, nil
}

func (d *BookDAO) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Book], error) {
	ctx, span := d.tracer.Start(ctx, "BookDAO.FindAll",
		trace.WithAttributes(attribute.Int("page.number", pageable.PageNumber), attribute.Int("page.size", pageable.PageSize)))
	defer span.End()

	result, err := d.inner.FindAll(ctx, pageable)
	if err != nil {
		return result, d.handleError(ctx, span, err, "failed to list books")
	}
	span.SetAttributes(attribute.Int64("page.total_elements", result.TotalElements))
	return result, nil
}

func (d *BookDAO) FindAllSortByTitle(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Book], error) {
	ctx, span := d.tracer.Start(ctx, "BookDAO.FindAllSortByTitle",
		trace.WithAttributes(attribute.Int("page.number", pageable.PageNumber), attribute.Int("page.size", pageable.PageSize)))
	defer span.End()

	result, err := d.inner.FindAllSortByTitle(ctx, pageable)
	if err != nil {
		return result, d.handleError(ctx, span, err, "failed to list books by title")
	}
	span.SetAttributes(attribute.Int64("page.total_elements", result.TotalElements))
	return result, nil
}

func (d *BookDAO) SaveNewBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	ctx, span := d.tracer.Start(ctx, "BookDAO.SaveNewBook")
	defer span.End()

	result, err := d.inner.SaveNewBook(ctx, book)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to save book")
	}
	span.SetAttributes(attribute.Int64("book.id", result.ID))
	d.metrics.recordSaved(ctx, "book")
	d.logInfo(ctx, "book saved", slog.Int64("book.id", result.ID), slog.String("book.isbn", result.ISBN))
	return result, nil
}

func (d *BookDAO) UpdateBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	ctx, span := d.tracer.Start(ctx, "BookDAO.UpdateBook")
	defer span.End()

	result, err := d.inner.UpdateBook(ctx, book)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to update book")
	}
	span.SetAttributes(attribute.Int64("book.id", result.ID))
	d.metrics.recordSaved(ctx, "book")
	d.logInfo(ctx, "book updated", slog.Int64("book.id", result.ID))
	return result, nil
}

func (d *BookDAO) DeleteBookByID(ctx context.Context, id int64) error {
	ctx, span := d.tracer.Start(ctx, "BookDAO.DeleteBookByID", trace.WithAttributes(attribute.Int64("book.id", id)))
	defer span.End()

	if err := d.inner.DeleteBookByID(ctx, id); err != nil {
		return d.handleError(ctx, span, err, "failed to delete book", slog.Int64("book.id", id))
	}
	d.metrics.recordDeleted(ctx, "book")
	d.logInfo(ctx, "book deleted", slog.Int64("book.id", id))
	return nil
}

var _ ports.BookDAO = (*BookDAO)(nil)
