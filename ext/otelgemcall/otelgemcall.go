// Package otelgemcall decorates a gemcall.Generator with OpenTelemetry
// tracing: one client span per generation call, with request metadata as
// attributes and errors recorded on the span.
package otelgemcall

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/skosovsky/gemcall"
)

const tracerName = "github.com/skosovsky/gemcall/ext/otelgemcall"

type generator struct {
	inner  gemcall.Generator
	tracer trace.Tracer
}

// Wrap returns a Generator that records one span per generation call before
// delegating to g. Pass the result to gemcall.WithGenerator.
func Wrap(g gemcall.Generator, tp trace.TracerProvider) gemcall.Generator {
	return &generator{inner: g, tracer: tp.Tracer(tracerName)}
}

func (g *generator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	ctx, span := g.tracer.Start(ctx, "gemcall.generate",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gen_ai.request.model", model),
			attribute.Int("gemcall.contents", len(contents)),
		),
	)
	defer span.End()
	if config != nil && config.ResponseMIMEType != "" {
		span.SetAttributes(attribute.String("gemcall.response_mime_type", config.ResponseMIMEType))
	}

	resp, err := g.inner.GenerateContent(ctx, model, contents, config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return resp, nil
}

// Compile-time check that the decorator satisfies gemcall.Generator.
var _ gemcall.Generator = (*generator)(nil)
