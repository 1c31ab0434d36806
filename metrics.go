// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package fjson

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects counts, sizes, and latencies across repeated Encode/
// Decode calls sharing one Metrics value (see WithMetrics). All fields are
// safe for concurrent use, since the underlying prometheus collectors are.
type Metrics struct {
	encodeTotal    prometheus.Counter
	encodeFailures prometheus.Counter
	encodeBytes    prometheus.Histogram
	encodeDuration prometheus.Histogram

	decodeTotal    prometheus.Counter
	decodeFailures prometheus.Counter
	decodeBytes    prometheus.Histogram
	decodeDuration prometheus.Histogram
}

// NewMetrics returns a Metrics value with its own unregistered collectors.
// Callers that want the counters exposed on a /metrics endpoint should
// register the returned value's Collectors() with a prometheus.Registerer.
func NewMetrics() *Metrics {
	return &Metrics{
		encodeTotal:    prometheus.NewCounter(prometheus.CounterOpts{Name: "fjson_encode_total"}),
		encodeFailures: prometheus.NewCounter(prometheus.CounterOpts{Name: "fjson_encode_failures_total"}),
		encodeBytes:    prometheus.NewHistogram(prometheus.HistogramOpts{Name: "fjson_encode_bytes", Buckets: prometheus.ExponentialBuckets(32, 2, 16)}),
		encodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Name: "fjson_encode_duration_seconds", Buckets: prometheus.DefBuckets}),

		decodeTotal:    prometheus.NewCounter(prometheus.CounterOpts{Name: "fjson_decode_total"}),
		decodeFailures: prometheus.NewCounter(prometheus.CounterOpts{Name: "fjson_decode_failures_total"}),
		decodeBytes:    prometheus.NewHistogram(prometheus.HistogramOpts{Name: "fjson_decode_bytes", Buckets: prometheus.ExponentialBuckets(32, 2, 16)}),
		decodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Name: "fjson_decode_duration_seconds", Buckets: prometheus.DefBuckets}),
	}
}

// Collectors returns every prometheus.Collector backing m, for callers that
// want to register them with their own registry.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.encodeTotal, m.encodeFailures, m.encodeBytes, m.encodeDuration,
		m.decodeTotal, m.decodeFailures, m.decodeBytes, m.decodeDuration,
	}
}

func (m *Metrics) observeEncode(outBytes int, d time.Duration, err error) {
	m.encodeTotal.Inc()
	if err != nil {
		m.encodeFailures.Inc()
		return
	}
	m.encodeBytes.Observe(float64(outBytes))
	m.encodeDuration.Observe(d.Seconds())
}

func (m *Metrics) observeDecode(inBytes int, d time.Duration, err error) {
	m.decodeTotal.Inc()
	if err != nil {
		m.decodeFailures.Inc()
		return
	}
	m.decodeBytes.Observe(float64(inBytes))
	m.decodeDuration.Observe(d.Seconds())
}
