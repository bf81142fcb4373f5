// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observe handles logging and tracing for the hopfield command.
package observe

import (
	"context"
	"io"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hopfield")

// Observer handles logging and tracing for one command run
type Observer struct {
	log   *bolt.Logger
	runID string
}

// New creates a new Observer with console output.
// If verbose is false, only warnings and errors are shown.
func New(out io.Writer, verbose bool) *Observer {
	handler := bolt.NewConsoleHandler(out)
	l := bolt.New(handler)

	if !verbose {
		l.SetLevel(bolt.WARN)
	}

	return &Observer{
		log:   l,
		runID: uuid.New().String(),
	}
}

// NewJSON creates a new Observer with JSON output.
// If verbose is false, only warnings and errors are shown.
func NewJSON(out io.Writer, verbose bool) *Observer {
	handler := bolt.NewJSONHandler(out)
	l := bolt.New(handler)

	if !verbose {
		l.SetLevel(bolt.WARN)
	}

	return &Observer{
		log:   l,
		runID: uuid.New().String(),
	}
}

// Log returns the underlying logger
func (o *Observer) Log() *bolt.Logger {
	return o.log
}

// RunID returns the id that identifies this run in logs and spans
func (o *Observer) RunID() string {
	return o.runID
}

// StartSpan starts a new OTel span
func (o *Observer) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.String("run", o.runID)))
}

// flusher is implemented by tracer providers that buffer spans,
// such as the otel sdk provider.
type flusher interface {
	ForceFlush(ctx context.Context) error
}

// Close flushes spans buffered by the global tracer provider, if it buffers.
// The logger writes through and has nothing to flush.
func (o *Observer) Close() error {
	if fl, ok := otel.GetTracerProvider().(flusher); ok {
		return fl.ForceFlush(context.Background())
	}
	return nil
}
