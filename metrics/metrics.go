// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package metrics collects the transaction pool's operational counters and
// exposes them to Prometheus. Unlike the upstream expvar bridge this
// replaces, metrics are registered directly against the client library
// rather than mirrored through a second bookkeeping layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry groups every counter and gauge the pool reports, all registered
// against a private prometheus.Registerer so a process can run more than one
// pool instance without metric-name collisions.
type Registry struct {
	reg *prometheus.Registry

	Submitted    *prometheus.CounterVec // labeled by source (client, p2p) and outcome (accepted, duplicate, pool_full, rejected)
	Evicted      *prometheus.CounterVec // labeled by reason (committed, expired)
	Unsealed     prometheus.Gauge       // current count of resident, unsealed transactions
	Resident     prometheus.Gauge       // current count of all resident transactions
	FetchLatency prometheus.Histogram   // wall-clock time spent in BatchFetchTxs
	ReaperSweeps prometheus.Counter     // number of reaper ticks that evicted at least one transaction
}

// New builds a Registry with every collector registered and ready to
// observe. namespace prefixes every metric name, so a node embedding more
// than one pool can tell them apart (e.g. "txpool", "txpool_shadow").
func New(namespace string) *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		Submitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submitted_total",
			Help:      "Transactions submitted to the pool, by source and outcome.",
		}, []string{"source", "outcome"}),
		Evicted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evicted_total",
			Help:      "Transactions removed from the pool after admission, by reason.",
		}, []string{"reason"}),
		Unsealed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unsealed_transactions",
			Help:      "Resident transactions not currently held by a sealer.",
		}),
		Resident: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "resident_transactions",
			Help:      "Total resident transactions, sealed or not.",
		}),
		FetchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent assembling a batch in BatchFetchTxs.",
			Buckets:   prometheus.DefBuckets,
		}),
		ReaperSweeps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reaper_sweeps_total",
			Help:      "Reaper ticks that evicted at least one expired transaction.",
		}),
	}
}

// Gatherer exposes the underlying registry for wiring into an HTTP handler.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
