package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
)

// CustomerDAO decorates a customer DAO with tracing, logging, and metrics.
type CustomerDAO struct {
	inner ports.CustomerDAO
	instrumentation
}

func NewCustomerDAO(inner ports.CustomerDAO, opts ...Option) ports.CustomerDAO {
	return &CustomerDAO{inner: inner, instrumentation: newInstrumentation(opts)}
}

func (d *CustomerDAO) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	ctx, span := d.tracer.Start(ctx, "CustomerDAO.Save")
	defer span.End()

	result, err := d.inner.Save(ctx, customer)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to save customer")
	}
	d.metrics.recordSaved(ctx, "customer")
	d.logInfo(ctx, "customer saved", slog.Int64("customer.id", result.ID))
	return result, nil
}

func (d *CustomerDAO) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	ctx, span := d.tracer.Start(ctx, "CustomerDAO.GetByID", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	result, err := d.inner.GetByID(ctx, id)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to load customer", slog.Int64("customer.id", id))
	}
	return result, nil
}

func (d *CustomerDAO) FindByName(ctx context.Context, name string) (*domain.Customer, error) {
	ctx, span := d.tracer.Start(ctx, "CustomerDAO.FindByName")
	defer span.End()

	result, err := d.inner.FindByName(ctx, name)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to find customer by name")
	}
	return result, nil
}

func (d *CustomerDAO) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	ctx, span := d.tracer.Start(ctx, "CustomerDAO.Update")
	defer span.End()

	result, err := d.inner.Update(ctx, customer)
	if err != nil {
		return nil, d.handleError(ctx, span, err, "failed to update customer")
	}
	d.metrics.recordSaved(ctx, "customer")
	d.logInfo(ctx, "customer updated", slog.Int64("customer.id", result.ID))
	return result, nil
}

func (d *CustomerDAO) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := d.tracer.Start(ctx, "CustomerDAO.DeleteByID", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	if err := d.inner.DeleteByID(ctx, id); err != nil {
		return d.handleError(ctx, span, err, "failed to delete customer", slog.Int64("customer.id", id))
	}
	d.metrics.recordDeleted(ctx, "customer")
	d.logInfo(ctx, "customer deleted", slog.Int64("customer.id", id))
	return nil
}

var _ ports.CustomerDAO = (*CustomerDAO)(nil)
