package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for PhilJS applications.
const defaultTracerName = "philjs"

// OTelConfig configures span creation for a traced operation.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "philjs").
	TracerName string

	// Attributes are extra attributes attached to every span.
	Attributes []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures an OTelConfig.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithAttributes attaches extra attributes to every traced span.
func WithAttributes(attrs ...attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// Operation names traced by TraceRender/TraceHydrate/TraceQuery.
const (
	OpRender  = "render"
	OpHydrate = "hydrate"
	OpQuery   = "query"
)

// TraceOperation wraps fn in a span named "philjs.<op>" and records the
// outcome. kind distinguishes render/hydrate/query operations in traces.
//
// Example:
//
//	err := observability.TraceOperation(ctx, observability.OpRender, "/dashboard", func(ctx context.Context) error {
//	    _, err := r.RenderToString(node)
//	    return err
//	}, observability.WithTracerName("my-app"))
func TraceOperation(ctx context.Context, kind, target string, fn func(context.Context) error, opts ...OTelOption) error {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	attrs := append([]attribute.KeyValue{
		attribute.String("philjs.operation", kind),
		attribute.String("philjs.target", target),
	}, config.Attributes...)

	spanCtx, span := config.tracer.Start(
		ctx,
		fmt.Sprintf("philjs.%s", kind),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
		trace.WithTimestamp(time.Now()),
	)
	defer span.End()

	err := fn(spanCtx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return err
}

// TraceRender traces a single server render of a page or component tree.
func TraceRender(ctx context.Context, target string, fn func(context.Context) error, opts ...OTelOption) error {
	return TraceOperation(ctx, OpRender, target, fn, opts...)
}

// TraceHydrate traces client-side hydration of a server-rendered tree.
func TraceHydrate(ctx context.Context, target string, fn func(context.Context) error, opts ...OTelOption) error {
	return TraceOperation(ctx, OpHydrate, target, fn, opts...)
}

// TraceQuery traces a query/mutation fetch against a cache key.
func TraceQuery(ctx context.Context, key string, fn func(context.Context) error, opts ...OTelOption) error {
	return TraceOperation(ctx, OpQuery, key, fn, opts...)
}
