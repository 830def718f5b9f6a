package sql

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
)

// Context of the query execution. It carries a standard context, a query id
// for log correlation, and the tracer queries report their spans to.
type Context struct {
	context.Context
	id     uuid.UUID
	tracer opentracing.Tracer
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithTracer sets the tracer spans are reported to.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// NewContext builds a query Context from a parent context.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context: ctx,
		id:      uuid.NewV4(),
		tracer:  opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewEmptyContext returns a Context with no parent and a noop tracer.
func NewEmptyContext() *Context {
	return NewContext(context.TODO())
}

// ID returns the query id.
func (ctx *Context) ID() string {
	return ctx.id.String()
}

// Span starts a new span with the given operation name. If the context
// already carries a span, the new one is a child of it. The returned
// Context has the new span attached.
func (ctx *Context) Span(
	opName string,
	opts ...opentracing.StartSpanOption,
) (opentracing.Span, *Context) {
	if parent := opentracing.SpanFromContext(ctx.Context); parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}
	span := ctx.tracer.StartSpan(opName, opts...)

	return span, &Context{
		Context: opentracing.ContextWithSpan(ctx.Context, span),
		id:      ctx.id,
		tracer:  ctx.tracer,
	}
}
