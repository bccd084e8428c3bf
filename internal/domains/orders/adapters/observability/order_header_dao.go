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

// OrderHeaderDAO decorates an order header DAO with tracing, logging, and metrics.
type OrderHeaderDAO struct {
	inner ports.OrderHeaderDAO
	instrumentation
}

func NewOrderHeaderDAO(inner ports.OrderHeaderDAO, opts ...Option) ports.OrderHeaderDAO {
	return &OrderHeaderDAO{inner: inner, instrumentation: newInstrumentation(opts)}
}

func (d *OrderHeaderDAO) Save(ctx context.Context, header *domain.OrderHeader) (*domain.OrderHeader, error) {
	ctx, span := d.tracer.Start(ctx, "OrderHeaderDAO.Save")
	defer span.End()

	result, err := d.inner.Save(ctx, header)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to save order header")
	}
	span.SetAttributes(attribute.Int64("order.id", result.ID), attribute.Int("order.version", result.Version))
	d.metrics.recordSaved(ctx, "order_header")
	d.logInfo(ctx, "order header saved",
		slog.Int64("order.id", result.ID),
		slog.Int("order.lines", len(result.OrderLines)),
		slog.String("status", string(result.OrderStatus)))
	return result, nil
}

func (d *OrderHeaderDAO) GetByID(ctx context.Context, id int64) (*domain.OrderHeader, error) {
	ctx, span := d.tracer.Start(ctx, "OrderHeaderDAO.GetByID", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := d.inner.GetByID(ctx, id)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to load order header", slog.Int64("order.id", id))
	}
	return result, nil
}

func (d *OrderHeaderDAO) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.OrderHeader], error) {
	ctx, span := d.tracer.Start(ctx, "OrderHeaderDAO.FindAll",
		trace.WithAttributes(attribute.Int("page.number", pageable.PageNumber), attribute.Int("page.size", pageable.PageSize)))
	defer span.End()

	result, err := d.inner.FindAll(ctx, pageable)
	if err != nil {
		return result, d.handleError(ctx, span, err, "failed to list order headers")
	}
	span.SetAttributes(attribute.Int64("page.total_elements", result.TotalElements))
	return result, nil
}

func (d *OrderHeaderDAO) Update(ctx context.Context, header *domain.OrderHeader) (*domain.OrderHeader, error) {
	ctx, span := d.tracer.Start(ctx, "OrderHeaderDAO.Update")
	defer span.End()

	result, err := d.inner.Update(ctx, header)
	if err != nil {
		var id int64
		if header != nil {
			id = header.ID
		}
		return nil, d.handleError(ctx, span, err, "failed to update order header", slog.Int64("order.id", id))
	}
	d.metrics.recordSaved(ctx, "order_header")
	d.logInfo(ctx, "order header updated", slog.Int64("order.id", result.ID), slog.Int("order.version", result.Version))
	return result, nil
}

func (d *OrderHeaderDAO) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := d.tracer.Start(ctx, "OrderHeaderDAO.DeleteByID", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if err := d.inner.DeleteByID(ctx, id); err != nil {
		return d.handleError(ctx, span, err, "failed to delete order header", slog.Int64("order.id", id))
	}
	d.metrics.recordDeleted(ctx, "order_header")
	d.logInfo(ctx, "order header deleted", slog.Int64("order.id", id))
	return nil
}

func (d *OrderHeaderDAO) FindOrderHeaderByCustomer(ctx context.Context, customer *domain.Customer) (*domain.OrderHeader, error) {
	var customerID int64
	if customer != nil {
		customerID = customer.ID
	}
	ctx, span := d.tracer.Start(ctx, "OrderHeaderDAO.FindOrderHeaderByCustomer",
		trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	result, err := d.inner.FindOrderHeaderByCustomer(ctx, customer)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to find order header by customer", slog.Int64("customer.id", customerID))
	}
	return result, nil
}

func (d *OrderHeaderDAO) Approve(ctx context.Context, orderID int64, approvedBy string) (*domain.OrderHeader, error) {
	ctx, span := d.tracer.Start(ctx, "OrderHeaderDAO.Approve", trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	d.logInfo(ctx, "approving order", slog.Int64("order.id", orderID), slog.String("approved_by", approvedBy))
	result, err := d.inner.Approve(ctx, orderID, approvedBy)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to approve order", slog.Int64("order.id", orderID))
	}
	d.metrics.recordSaved(ctx, "order_approval")
	d.logInfo(ctx, "order approved", slog.Int64("order.id", result.ID), slog.String("status", string(result.OrderStatus)))
	return result, nil
}

var _ ports.OrderHeaderDAO = (*OrderHeaderDAO)(nil)
