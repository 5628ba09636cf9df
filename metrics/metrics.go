// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics exposes host-internal Prometheus instrumentation: cache
// hit/miss counts, binary load/unload rate, per-action dispatch latency,
// and foreign-exception recoveries. None of it is plug-in-facing; it
// exists purely so an embedder can wire /metrics if it wants to.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a self-contained set of collectors registered against one
// prometheus.Registry. The caller passes the registry to New rather than
// this package reaching for prometheus.DefaultRegisterer, so an embedder
// hosting more than one cache in a process doesn't collide on metric names.
type Metrics struct {
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	binaryLoads   prometheus.Counter
	binaryUnloads prometheus.Counter

	actionDuration *prometheus.HistogramVec
	actionErrors   *prometheus.CounterVec

	foreignExceptions prometheus.Counter
}

// New registers a fresh Metrics against reg and returns it. Passing
// prometheus.NewRegistry() gives a namespace isolated from any other
// registry in the process; passing prometheus.DefaultRegisterer matches
// the common single-process-single-host case.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ofxhost",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Plug-ins confirmed from the on-disk cache without a dlopen.",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ofxhost",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Binaries whose signature changed or were never cached, requiring discovery.",
		}),
		binaryLoads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ofxhost",
			Subsystem: "binary",
			Name:      "loads_total",
			Help:      "dlopen calls made across every tracked binary.",
		}),
		binaryUnloads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ofxhost",
			Subsystem: "binary",
			Name:      "unloads_total",
			Help:      "dlclose calls made across every tracked binary.",
		}),
		actionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ofxhost",
			Subsystem: "action",
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent inside a single action dispatch, by action name.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
		actionErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ofxhost",
			Subsystem: "action",
			Name:      "dispatch_errors_total",
			Help:      "Non-OK statuses returned from an action dispatch, by action name and status.",
		}, []string{"action", "status"}),
		foreignExceptions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ofxhost",
			Subsystem: "action",
			Name:      "foreign_exceptions_total",
			Help:      "Panics recovered at the plug-in call boundary.",
		}),
	}
}

// CacheHit records a binary accepted from cache without a dlopen.
func (m *Metrics) CacheHit() { m.cacheHits.Inc() }

// CacheMiss records a binary that required (re)discovery.
func (m *Metrics) CacheMiss() { m.cacheMisses.Inc() }

// BinaryLoaded records a 0->1 reference transition.
func (m *Metrics) BinaryLoaded() { m.binaryLoads.Inc() }

// BinaryUnloaded records a 1->0 reference transition.
func (m *Metrics) BinaryUnloaded() { m.binaryUnloads.Inc() }

// ForeignException records a panic recovered at a plug-in call boundary.
func (m *Metrics) ForeignException() { m.foreignExceptions.Inc() }

// ObserveAction records one action dispatch's duration and, if status
// wasn't OK, counts it as an error.
func (m *Metrics) ObserveAction(action string, status string, d time.Duration) {
	m.actionDuration.WithLabelValues(action).Observe(d.Seconds())
	if status != "kOfxStatOK" {
		m.actionErrors.WithLabelValues(action, status).Inc()
	}
}

// Timer starts timing an action dispatch; call the returned func with the
// action's resulting status string once it completes.
func (m *Metrics) Timer(action string) func(status string) {
	start := time.Now()
	return func(status string) {
		m.ObserveAction(action, status, time.Since(start))
	}
}
