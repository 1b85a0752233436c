package dedupe

import "github.com/okian/shaftdb/internal/domain/model"

type config struct {
	capacity int
	key      func(model.ShaftSpec) string
}

func newConfig(opts []Option) config {
	c := config{key: model.ShaftSpec.DisplayName}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option applies a configuration option to a deduper.
type Option func(*config)

// WithCapacity pre-sizes the seen set.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithKey overrides the identity used by Unique.
func WithKey(key func(model.ShaftSpec) string) Option {
	return func(c *config) {
		if key != nil {
			c.key = key
		}
	}
}
