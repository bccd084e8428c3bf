package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Apurer/go-persistence-examples/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/application"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/orders/ports"
)

func TestOrderHeaderDAO_RecordsSpansAndMetrics(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	dao := NewOrderHeaderDAO(
		application.NewOrderHeaderDAO(memory.NewStore().OrderHeaders()),
		WithTracer(tp.Tracer(tracerName)),
		WithMeter(mp.Meter(tracerName)),
	)
	ctx := context.Background()

	saved, err := dao.Save(ctx, &domain.OrderHeader{})
	require.NoError(t, err)
	_, err = dao.Approve(ctx, saved.ID, "Joe")
	require.NoError(t, err)
	_, err = dao.GetByID(ctx, 999)
	require.ErrorIs(t, err, ports.ErrNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	require.Equal(t, "OrderHeaderDAO.Save", spans[0].Name())
	require.Equal(t, "OrderHeaderDAO.Approve", spans[1].Name())
	require.Equal(t, "OrderHeaderDAO.GetByID", spans[2].Name())
	require.Equal(t, codes.Error, spans[2].Status().Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.NotEmpty(t, rm.ScopeMetrics)
	var savedTotal int64
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "orders.dao.entities_saved" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		for _, dp := range sum.DataPoints {
			savedTotal += dp.Value
		}
	}
	require.Equal(t, int64(2), savedTotal)
}

func TestNewProductDAO_DefaultsToNoop(t *testing.T) {
	dao := NewProductDAO(application.NewProductDAO(memory.NewStore().Products()))

	saved, err := dao.Save(context.Background(), &domain.Product{Description: "widget"})
	require.NoError(t, err)
	require.Equal(t, domain.ProductStatusNew, saved.ProductStatus)
}
