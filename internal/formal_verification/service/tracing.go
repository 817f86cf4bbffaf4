package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
)

var tracer = otel.Tracer("archverify.service")

func startPassSpan(ctx context.Context, pass string, arch *domain.Architecture) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String("verification.pass", pass)}
	if arch != nil {
		attrs = append(attrs,
			attribute.String("architecture.name", arch.Name),
			attribute.Int("architecture.components", len(arch.Components)),
			attribute.Int("architecture.connections", len(arch.Connections)),
		)
	}
	return tracer.Start(ctx, "Pipeline."+pass, trace.WithAttributes(attrs...))
}

func endPassSpan(span trace.Span, success bool, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Bool("verification.success", success))
	span.End()
}
