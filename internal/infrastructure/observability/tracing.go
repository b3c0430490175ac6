package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "propdesk/inbox-api"
)

// GetTracer returns the tracer for the inbox-api service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// ConversationAttributes returns common attributes for conversation spans.
func ConversationAttributes(channel string, limit int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("conversation.channel", channel),
		attribute.Int("conversation.window_limit", limit),
	}
}

// TicketAttributes returns common attributes for ticket spans.
func TicketAttributes(ticketID, status string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("ticket.id", ticketID),
		attribute.String("ticket.status", status),
	}
}

// StartAggregationSpan starts a new span for conversation aggregation.
func StartAggregationSpan(ctx context.Context, channel string, limit int) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "conversation.aggregate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(ConversationAttributes(channel, limit)...),
	)
	return ctx, span
}

// StartTicketSpan starts a new span for a ticket operation.
func StartTicketSpan(ctx context.Context, operation, ticketID, status string) (context.Context, trace.Span) {
	ctx, span := GetTracer().Start(ctx, "ticket."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(TicketAttributes(ticketID, status)...),
	)
	return ctx, span
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error, severity string) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String("error.severity", severity))
}

// AddStatusTransition adds a status transition event to a span.
func AddStatusTransition(span trace.Span, fromStatus, toStatus string) {
	span.AddEvent("status.transition",
		trace.WithAttributes(
			attribute.String("status.from", fromStatus),
			attribute.String("status.to", toStatus),
		),
	)
}
