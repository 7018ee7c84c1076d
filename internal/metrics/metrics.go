// internal/metrics/metrics.go
package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"motifhunt/internal/engine"
)

const meterName = "motifhunt"

// SourceCLI tags measurements made by the hunt command. Sources are a small
// fixed set; input paths never go into attributes.
const SourceCLI = "cli"

// Scan holds the scan instruments. It implements engine.Observer and is safe
// for concurrent use by pipeline workers.
type Scan struct {
	Sequences metric.Int64Counter
	Bases     metric.Int64Counter
	Attempts  metric.Int64Counter
	Hits      metric.Int64Counter
	Gated     metric.Int64Counter
	Matched   metric.Int64Counter
	attrs     metric.MeasurementOption
}

// New creates the instruments on the global meter provider, which is a no-op
// unless the host process installs one. Instrument errors leave a no-op
// counter in place, as otel does.
func New(source string) *Scan {
	return NewWithMeter(otel.Meter(meterName), source)
}

// NewWithMeter is New on an explicit meter.
func NewWithMeter(meter metric.Meter, source string) *Scan {
	seqs, _ := meter.Int64Counter("motifhunt_sequences_scanned_total",
		metric.WithDescription("sequence records scanned"))
	bases, _ := meter.Int64Counter("motifhunt_bases_scanned_total",
		metric.WithDescription("sequence symbols scanned"), metric.WithUnit("{base}"))
	attempts, _ := meter.Int64Counter("motifhunt_attempts_total",
		metric.WithDescription("automaton start offsets tried"))
	hits, _ := meter.Int64Counter("motifhunt_hits_total",
		metric.WithDescription("hits kept after the minimum-occurrence gate"))
	gated, _ := meter.Int64Counter("motifhunt_hits_gated_total",
		metric.WithDescription("hits dropped by the minimum-occurrence gate"))
	matched, _ := meter.Int64Counter("motifhunt_sequences_matched_total",
		metric.WithDescription("records with at least one surviving hit"))
	return &Scan{
		Sequences: seqs,
		Bases:     bases,
		Attempts:  attempts,
		Hits:      hits,
		Gated:     gated,
		Matched:   matched,
		attrs:     metric.WithAttributes(attribute.String("source", source)),
	}
}

// ObserveScan records one record's stats.
func (s *Scan) ObserveScan(st engine.Stats) {
	ctx := context.Background()
	s.Sequences.Add(ctx, 1, s.attrs)
	s.Bases.Add(ctx, int64(st.Length), s.attrs)
	s.Attempts.Add(ctx, int64(st.Attempts), s.attrs)
	s.Hits.Add(ctx, int64(st.Hits), s.attrs)
	s.Gated.Add(ctx, int64(st.Gated), s.attrs)
	if st.Hits > 0 {
		s.Matched.Add(ctx, 1, s.attrs)
	}
}

var _ engine.Observer = (*Scan)(nil)
