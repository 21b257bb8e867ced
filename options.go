package vector

import (
	"sync/atomic"

	"github.com/npillmayer/schuko/tracing"
)

// traceKey is the tracing key selected by tracer(); it starts as
// "pvector" until Configure(WithTraceKey(...)) changes it. Stored behind an
// atomic.Value so Configure may be called concurrently with readers
// of the package (spec §5: reads never coordinate).
var traceKey atomic.Value // holds string

func init() {
	traceKey.Store("pvector")
}

func currentTraceKey() string {
	return traceKey.Load().(string)
}

// Option configures package-wide behavior via Configure. This mirrors
// the functional-options idiom the teacher corpus uses to configure
// per-value construction (persistent/vector's DegreeExponent,
// persistent/btree's Degree); here it is applied package-wide rather
// than per-value, because the Vector value itself must stay exactly
// the four fields spec §3 names — see DESIGN.md.
type Option struct {
	apply func()
}

// Configure applies opts, adjusting package-wide tracing behavior. It
// is intended to be called once, e.g. from an importer's init or
// early in main; it never affects the representation or semantics of
// any Vector value.
func Configure(opts ...Option) {
	for _, opt := range opts {
		opt.apply()
	}
}

// WithTraceKey sets the key tracer() selects.
func WithTraceKey(key string) Option {
	return Option{apply: func() { traceKey.Store(key) }}
}

// WithTraceLevel sets the verbosity of the package's tracer.
func WithTraceLevel(level tracing.TraceLevel) Option {
	return Option{apply: func() { tracer().SetTraceLevel(level) }}
}
