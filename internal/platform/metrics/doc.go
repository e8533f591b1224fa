// Package metrics exposes Prometheus instrumentation for the server: HTTP
// request counters and latencies, task store operation outcomes, and task
// lifecycle event counts.
//
// All collectors hang off a Metrics value registered on a caller-supplied
// prometheus.Registerer, so tests can use a private registry.
package metrics
