package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

// ProductDAO decorates a product DAO with tracing, logging, and metrics.
type ProductDAO struct {
	inner ports.ProductDAO
	instrumentation
}

// NewProductDAO wraps the core product DAO.
func NewProductDAO(inner ports.ProductDAO, opts ...Option) ports.ProductDAO {
	return &ProductDAO{inner: inner, instrumentation: newInstrumentation(opts)}
}

func (d *ProductDAO) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, span := d.tracer.Start(ctx, "ProductDAO.Save")
	defer span.End()

	result, err := d.inner.Save(ctx, product)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to save product")
	}
	span.SetAttributes(attribute.Int64("product.id", result.ID))
	d.metrics.recordSaved(ctx, "product")
	d.logInfo(ctx, "product saved", slog.Int64("product.id", result.ID), slog.String("status", string(result.ProductStatus)))
	return result, nil
}

func (d *ProductDAO) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := d.tracer.Start(ctx, "ProductDAO.GetByID", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	result, err := d.inner.GetByID(ctx, id)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to load product", slog.Int64("product.id", id))
	}
	return result, nil
}

func (d *ProductDAO) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.Product], error) {
	ctx, span := d.tracer.Start(ctx, "ProductDAO.FindAll",
		trace.WithAttributes(attribute.Int("page.number", pageable.PageNumber), attribute.Int("page.size", pageable.PageSize)))
	defer span.End()

	result, err := d.inner.FindAll(ctx, pageable)
	if err != nil {
		return result, d.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int64("page.total_elements", result.TotalElements))
	return result, nil
}

func (d *ProductDAO) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, span := d.tracer.Start(ctx, "ProductDAO.Update")
	defer span.End()

	result, err := d.inner.Update(ctx, product)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to update product")
	}
	span.SetAttributes(attribute.Int64("product.id", result.ID))
	d.metrics.recordSaved(ctx, "product")
	d.logInfo(ctx, "product updated", slog.Int64("product.id", result.ID))
	return result, nil
}

func (d *ProductDAO) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := d.tracer.Start(ctx, "ProductDAO.DeleteByID", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	if err := d.inner.DeleteByID(ctx, id); err != nil {
		return d.handleError(ctx, span, err, "failed to delete product", slog.Int64("product.id", id))
	}
	d.metrics.recordDeleted(ctx, "product")
	d.logInfo(ctx, "product deleted", slog.Int64("product.id", id))
	return nil
}

func (d *ProductDAO) FindProductByDescription(ctx context.Context, description string) (*domain.Product, error) {
	ctx, span := d.tracer.Start(ctx, "ProductDAO.FindProductByDescription")
	defer span.End()

	result, err := d.inner.FindProductByDescription(ctx, description)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to find product by description", slog.String("product.description", description))
	}
	return result, nil
}

var _ ports.ProductDAO = (*ProductDAO)(nil)
