/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics provides OpenTelemetry counters for the LLM calls made
// during a refactoring run.
package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// GenAI records token usage and completion counts, with the model name as a
// dimension. Uses graceful degradation: if a counter fails to initialize, a
// no-op counter stands in instead of failing the run.
type GenAI struct {
	meter            metric.Meter
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	completions      metric.Int64Counter
}

// NewGenAI creates a GenAI metrics instance with the specified meter name.
// The meter name should be shared across backends (e.g. "refactoraf.llm"),
// with the model name differentiating the recorded series.
func NewGenAI(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("genai.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("genai.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	completions, err := meter.Int64Counter("genai.completions",
		metric.WithDescription("The number of chat completions requested"),
		metric.WithUnit("{requests}"))
	if err != nil {
		slog.Warn("Failed to create completions counter, metrics will be disabled", "error", err, "meter", meterName)
		completions = noop.Int64Counter{}
	}

	return &GenAI{
		meter:            meter,
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
		completions:      completions,
	}
}

// RecordCompletion records one chat completion and its token usage.
// The purpose attribute distinguishes the smell-analysis call from the
// rewrite call.
func (m *GenAI) RecordCompletion(ctx context.Context, model, purpose string, promptTokens, completionTokens int64) {
	attrs := metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("purpose", purpose),
	)

	m.completions.Add(ctx, 1, attrs)
	m.promptTokens.Add(ctx, promptTokens, attrs)
	m.completionTokens.Add(ctx, completionTokens, attrs)
}
