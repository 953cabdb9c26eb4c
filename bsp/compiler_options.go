package bsp

import (
	"github.com/oxybsp/oxybsp/common"
	"github.com/oxybsp/oxybsp/vertextable"
)

// compileConfig holds the options a CompileOption can adjust; it is never
// exported directly, following the teacher's builder-option convention
// (engine/model/model_builder.go) of mutating an unexported struct through
// functional options.
type compileConfig struct {
	context           *vertextable.Context
	parallelThreshold int
}

// CompileOption configures a Compile call.
type CompileOption func(*compileConfig)

// WithContext supplies an explicit vertextable.Context instead of letting
// Compile allocate a fresh one. Spec §5 requires the shared vertex table to
// be scoped to one compilation; reuse a Context across calls only when you
// specifically want two compiles to fold vertices against each other (e.g.
// compiling several chunks of one larger model into index-compatible
// tables), never across concurrent calls.
//
// Parameters:
//   - ctx: the vertex table Compile should fold into instead of a fresh one
//
// Returns:
//   - CompileOption: a function that applies the context option to a compile
func WithContext(ctx *vertextable.Context) CompileOption {
	return func(c *compileConfig) {
		c.context = ctx
	}
}

// WithParallelThreshold overrides ParallelScoreThreshold, the candidate-list
// size above which root selection scores candidates on a worker pool.
//
// Parameters:
//   - n: the candidate-list size threshold above which scoring goes parallel
//
// Returns:
//   - CompileOption: a function that applies the threshold option to a compile
func WithParallelThreshold(n int) CompileOption {
	return func(c *compileConfig) {
		c.parallelThreshold = n
	}
}

func resolveConfig(opts []CompileOption) compileConfig {
	var cfg compileConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.context == nil {
		cfg.context = vertextable.NewContext()
	}
	cfg.parallelThreshold = common.Coalesce(cfg.parallelThreshold, ParallelScoreThreshold)
	return cfg
}
