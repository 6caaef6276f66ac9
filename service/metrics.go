package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"lfss/domain/sortedseq"
)

// Metrics holds the service-level Prometheus collectors.
type Metrics struct {
	Inserts       prometheus.Counter
	Reads         prometheus.Counter
	EventsDropped prometheus.Counter
}

// NewMetrics registers the service collectors plus gauges over the
// core counters on reg.
func NewMetrics(reg prometheus.Registerer, seq *sortedseq.Seq) *Metrics {
	m := &Metrics{
		Inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lfss_inserts_total",
			Help: "Successful publications.",
		}),
		Reads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lfss_reads_total",
			Help: "Positional reads served.",
		}),
		EventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lfss_events_dropped_total",
			Help: "Outbox events dropped because the outbox was full.",
		}),
	}
	reg.MustRegister(m.Inserts, m.Reads, m.EventsDropped)

	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "lfss_reclaim_pending",
		Help: "Buffers retired but not yet destroyed.",
	}, func() float64 {
		return float64(seq.Stats().Reclaim.Pending)
	}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "lfss_bank_size",
		Help: "Buffers currently parked in the bank.",
	}, func() float64 {
		return float64(seq.Stats().Bank.Size)
	}))
	reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "lfss_bank_allocs_total",
		Help: "Empty-bank fallback allocations.",
	}, func() float64 {
		return float64(seq.Stats().Bank.Allocs)
	}))
	return m
}
