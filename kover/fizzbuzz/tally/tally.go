package tally

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tipsbook/go-tips/kover/fizzbuzz"
)

// Tally keeps track of the number of values that were classified under each
// fizzbuzz.Kind. It is safe for concurrent use.
type Tally struct {
	registry *prometheus.Registry
	labels   *prometheus.CounterVec
}

// New returns a Tally whose counters are registered on a private registry.
func New() *Tally {
	labels := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fizzbuzz",
		Name:      "labels_total",
		Help:      "The total number of classified values per label kind",
	}, []string{"kind"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(labels)

	// Initialize every series so that zero counts show up in snapshots.
	for _, k := range fizzbuzz.Kinds {
		labels.WithLabelValues(k.String())
	}

	return &Tally{registry: reg, labels: labels}
}

// Observe increments the counter for kind.
func (t *Tally) Observe(kind fizzbuzz.Kind) {
	t.labels.WithLabelValues(kind.String()).Inc()
}

// Count returns the number of observations recorded for kind.
func (t *Tally) Count(kind fizzbuzz.Kind) int {
	return t.Snapshot()[kind]
}

// Snapshot returns the current count for every known kind.
func (t *Tally) Snapshot() map[fizzbuzz.Kind]int {
	byName := make(map[string]fizzbuzz.Kind, len(fizzbuzz.Kinds))
	out := make(map[fizzbuzz.Kind]int, len(fizzbuzz.Kinds))
	for _, k := range fizzbuzz.Kinds {
		byName[k.String()] = k
		out[k] = 0
	}

	families, err := t.registry.Gather()
	if err != nil {
		return out
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() != "kind" {
					continue
				}
				if k, known := byName[lp.GetValue()]; known {
					out[k] = int(m.GetCounter().GetValue())
				}
			}
		}
	}
	return out
}

// Registry returns the registry that hosts the tally counters.
func (t *Tally) Registry() *prometheus.Registry {
	return t.registry
}
