package validate

import (
	"context"

	"github.com/amp-labs/amp-paramcheck/config"
)

// Option configures a decorated function.
type Option func(*options)

type options struct {
	name string
	cfg  config.Config
	ctx  context.Context //nolint:containedctx
}

func newOptions(opts []Option) options {
	o := options{
		cfg: config.Default(),
		ctx: context.Background(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithName labels the function in errors, logs, metrics and spans. Decorate and
// the typed wrappers default to the Go function name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithConfig replaces config.Default().
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithContext sets the context the typed wrappers log and trace with, since
// their call signature has no room for one. It is also used for decoration
// time logging.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
