package focus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSignals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tabstop",
		Name:      "signals_total",
		Help:      "Navigation signals emitted by observers, by kind and modality.",
	}, []string{"kind", "modality"})
	metricPortalTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tabstop",
		Name:      "portal_transitions_total",
		Help:      "Tab-stop portal rules fired, by rule.",
	}, []string{"rule"})
	metricSubscriberPanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tabstop",
		Name:      "subscriber_panics_total",
		Help:      "Navigation subscribers that panicked and were recovered.",
	})
)

func recordSignal(sig Signal) {
	metricSignals.WithLabelValues(sig.Kind.String(), sig.Modality.String()).Inc()
}

func recordPortalTransition(r rule) {
	metricPortalTransitions.WithLabelValues(r.String()).Inc()
}

func recordSubscriberPanic() {
	metricSubscriberPanics.Inc()
}
