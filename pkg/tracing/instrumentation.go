package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HTTP client span attributes
const (
	HTTPMethodKey    = attribute.Key("http.method")
	HTTPURLKey       = attribute.Key("http.url")
	HTTPStatusKey    = attribute.Key("http.status_code")
	HTTPRequestIDKey = attribute.Key("http.request_id")
)

// Review client span attributes
const (
	RouteIDKey  = attribute.Key("route.id")
	ReviewIDKey = attribute.Key("review.id")
)

// TraceRequest wraps an outbound HTTP call with a client span. The fn
// result is the response status code; pass 0 when the request never
// reached the server.
func TraceRequest(ctx context.Context, tracerName, method, url string, fn func(ctx context.Context) (int, error)) error {
	ctx, span := StartSpan(ctx, tracerName, fmt.Sprintf("http.%s", method),
		trace.WithSpanKind(trace.SpanKindClient),
	)
	defer span.End()

	span.SetAttributes(
		HTTPMethodKey.String(method),
		HTTPURLKey.String(url),
	)

	status, err := fn(ctx)
	if status > 0 {
		span.SetAttributes(HTTPStatusKey.Int(status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	return err
}
