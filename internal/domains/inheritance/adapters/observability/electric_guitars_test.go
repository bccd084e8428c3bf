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

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/adapters/memory"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/application"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

func TestElectricGuitars_RecordsSpansAndMetrics(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	guitars := NewElectricGuitars(
		application.NewElectricGuitars(memory.NewRepository()),
		WithTracer(tp.Tracer(tracerName)),
		WithMeter(mp.Meter(tracerName)),
	)
	ctx := context.Background()

	saved, err := guitars.Save(ctx, &domain.ElectricGuitar{
		Guitar:          domain.Guitar{NumberOfStrings: 6},
		NumberOfPickups: 3,
	})
	require.NoError(t, err)
	page, err := guitars.FindAll(ctx, paging.Of(0, 10))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	n, err := guitars.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.NoError(t, guitars.DeleteByID(ctx, saved.ID))
	_, err = guitars.FindByID(ctx, saved.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 5)
	require.Equal(t, "ElectricGuitars.Save", spans[0].Name())
	require.Equal(t, "ElectricGuitars.FindAll", spans[1].Name())
	require.Equal(t, "ElectricGuitars.Count", spans[2].Name())
	require.Equal(t, "ElectricGuitars.DeleteByID", spans[3].Name())
	require.Equal(t, "ElectricGuitars.FindByID", spans[4].Name())
	require.Equal(t, codes.Error, spans[4].Status().Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.NotEmpty(t, rm.ScopeMetrics)
	var written int64
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "inheritance.electric_guitars.written" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		for _, dp := range sum.DataPoints {
			written += dp.Value
		}
	}
	require.Equal(t, int64(2), written)
}
