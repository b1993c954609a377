package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumWhere(t *testing.T, met *metricdata.Metrics, key attribute.Key, value attribute.Value) int64 {
	t.Helper()
	sum, ok := met.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %q is not an int64 sum", met.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(key); ok && v == value {
			total += dp.Value
		}
	}
	return total
}

func TestMetrics_RecordAttacks(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordHit(ctx, 12, false)
	m.RecordHit(ctx, 40, true)
	m.RecordMiss(ctx)

	rm := collect(t, reader)
	attacks := findMetric(rm, "laststand.attacks")
	require.NotNil(t, attacks)
	assert.Equal(t, int64(2), sumWhere(t, attacks, "outcome", attribute.StringValue("hit")))
	assert.Equal(t, int64(1), sumWhere(t, attacks, "outcome", attribute.StringValue("miss")))
	assert.Equal(t, int64(1), sumWhere(t, attacks, "critical", attribute.BoolValue(true)))

	damage := findMetric(rm, "laststand.damage")
	require.NotNil(t, damage)
	hist, ok := damage.Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
	assert.Equal(t, int64(52), hist.DataPoints[0].Sum)
}

func TestMetrics_RecordStumblesAndFights(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordStumble(ctx)
	m.RecordStumble(ctx)
	m.RecordFight(ctx, "Boromir")

	rm := collect(t, reader)
	stumbles := findMetric(rm, "laststand.stumbles")
	require.NotNil(t, stumbles)
	sum := stumbles.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)

	fights := findMetric(rm, "laststand.fights")
	require.NotNil(t, fights)
	assert.Equal(t, int64(1), sumWhere(t, fights, "winner", attribute.StringValue("Boromir")))
}

func TestMetrics_NilAndNopAreSafe(t *testing.T) {
	ctx := context.Background()
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordHit(ctx, 3, true)
		m.RecordMiss(ctx)
		m.RecordStumble(ctx)
		m.RecordFight(ctx, "orc")
	})

	nop := NewNopMetrics()
	require.NotNil(t, nop)
	assert.NotPanics(t, func() { nop.RecordHit(ctx, 3, false) })
}

func TestTotals(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordHit(ctx, 12, true)
	m.RecordHit(ctx, 3, false)
	m.RecordMiss(ctx)
	m.RecordStumble(ctx)
	m.RecordFight(ctx, "Boromir")
	m.RecordFight(ctx, "orc")

	totals := Totals(collect(t, reader))
	assert.Equal(t, int64(3), totals["laststand.attacks"])
	assert.Equal(t, int64(2), totals["laststand.damage"])
	assert.Equal(t, int64(1), totals["laststand.stumbles"])
	assert.Equal(t, int64(2), totals["laststand.fights"])
}

func TestTotals_Empty(t *testing.T) {
	assert.Empty(t, Totals(metricdata.ResourceMetrics{}))
}
