// Package observability provides OpenTelemetry tracing and Prometheus
// metrics for render, hydrate, and query operations.
//
// This package includes:
//   - Span helpers for tracing render/hydrate/query operations
//   - Prometheus counters and histograms for the same operations
//
// # Tracing
//
// Wrap an operation with TraceRender, TraceHydrate, or TraceQuery to emit
// a span carrying its outcome:
//
//	err := observability.TraceRender(ctx, "/dashboard", func(ctx context.Context) error {
//	    _, err := renderer.RenderToString(node)
//	    return err
//	})
//
// # Prometheus Metrics
//
// Call InitPrometheus once at startup, then wrap operations with
// RecordOperation:
//
//	observability.InitPrometheus(observability.WithNamespace("myapp"))
//
//	err := observability.RecordOperation("render", func() error {
//	    _, err := renderer.RenderToString(node)
//	    return err
//	})
//
// Then expose metrics on a separate port:
//
//	http.Handle("/metrics", promhttp.Handler())
//	go http.ListenAndServe(":9090", nil)
package observability
