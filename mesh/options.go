package mesh

import "github.com/oxybsp/oxybsp/vertextable"

// buildConfig holds the options a BuildOption can adjust, mirroring the
// bsp package's functional-options convention (bsp.CompileOption).
type buildConfig struct {
	context *vertextable.Context
}

// BuildOption configures a Build call.
type BuildOption func(*buildConfig)

// WithContext supplies an explicit vertextable.Context instead of letting
// Build allocate a fresh one — useful when folding a mesh's vertices
// against a table shared with another compile (spec §5 scopes a Context to
// one compilation by default; opt in explicitly to share one).
//
// Parameters:
//   - ctx: the vertex table Build should fold into instead of a fresh one
//
// Returns:
//   - BuildOption: a function that applies the context option to a build
func WithContext(ctx *vertextable.Context) BuildOption {
	return func(c *buildConfig) {
		c.context = ctx
	}
}

func resolveConfig(opts []BuildOption) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.context == nil {
		cfg.context = vertextable.NewContext()
	}
	return cfg
}
