// Package observability exposes calculator activity as Prometheus metrics
// and serves them over HTTP.
//
// Metrics are registered on a caller-supplied registry so tests and
// embedders can keep them isolated from the global default registry.
package observability
