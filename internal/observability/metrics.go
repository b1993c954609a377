package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// meterName is the instrumentation scope name used for all simulator metrics.
const meterName = "github.com/cory-johannsen/laststand"

// Metrics holds the OpenTelemetry instruments recorded by the combat engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Attacks counts resolved attacks. Attributes:
	//   attribute.String("outcome", "hit"|"miss"), attribute.Bool("critical", ...)
	Attacks metric.Int64Counter

	// Damage tracks damage per landed hit.
	Damage metric.Int64Histogram

	// Stumbles counts stumble flourishes narrated before a devastating blow.
	Stumbles metric.Int64Counter

	// Fights counts finished fights. Attribute:
	//   attribute.String("winner", <creature name>)
	Fights metric.Int64Counter
}

var damageBuckets = []float64{5, 10, 20, 30, 50, 75, 100, 150}

// NewMetrics creates all instruments from mp.
//
// Postcondition: Returns a fully initialised Metrics or the first instrument error.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Attacks, err = m.Int64Counter("laststand.attacks",
		metric.WithDescription("Resolved attacks by outcome and criticality."),
	); err != nil {
		return nil, err
	}
	if met.Damage, err = m.Int64Histogram("laststand.damage",
		metric.WithDescription("Damage dealt per landed hit."),
		metric.WithUnit("{hp}"),
		metric.WithExplicitBucketBoundaries(damageBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Stumbles, err = m.Int64Counter("laststand.stumbles",
		metric.WithDescription("Stumble flourishes narrated."),
	); err != nil {
		return nil, err
	}
	if met.Fights, err = m.Int64Counter("laststand.fights",
		metric.WithDescription("Finished fights by winner."),
	); err != nil {
		return nil, err
	}
	return met, nil
}

// NewNopMetrics returns Metrics backed by the no-op provider.
func NewNopMetrics() *Metrics {
	m, err := NewMetrics(noop.NewMeterProvider())
	if err != nil {
		// The no-op provider never fails.
		panic(err)
	}
	return m
}

// RecordHit counts a landed attack and its damage.
func (m *Metrics) RecordHit(ctx context.Context, damage int, critical bool) {
	if m == nil {
		return
	}
	m.Attacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", "hit"),
		attribute.Bool("critical", critical),
	))
	m.Damage.Record(ctx, int64(damage))
}

// RecordMiss counts a missed attack.
func (m *Metrics) RecordMiss(ctx context.Context) {
	if m == nil {
		return
	}
	m.Attacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", "miss"),
		attribute.Bool("critical", false),
	))
}

// RecordStumble counts a stumble flourish.
func (m *Metrics) RecordStumble(ctx context.Context) {
	if m == nil {
		return
	}
	m.Stumbles.Add(ctx, 1)
}

// RecordFight counts a finished fight won by winner.
func (m *Metrics) RecordFight(ctx context.Context, winner string) {
	if m == nil {
		return
	}
	m.Fights.Add(ctx, 1, metric.WithAttributes(attribute.String("winner", winner)))
}

// Totals flattens collected metrics to one number per instrument: the sum of
// every data point for counters and the observation count for histograms.
func Totals(rm metricdata.ResourceMetrics) map[string]int64 {
	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, met := range sm.Metrics {
			switch data := met.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					out[met.Name] += dp.Value
				}
			case metricdata.Histogram[int64]:
				for _, dp := range data.DataPoints {
					out[met.Name] += int64(dp.Count)
				}
			}
		}
	}
	return out
}
