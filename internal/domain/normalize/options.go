package normalize

import "github.com/okian/shaftdb/pkg/logger"

const defaultFailureSampleSize = 5

type batchConfig struct {
	logger     logger.Logger
	sampleSize int
}

// Option applies a configuration option to Batch.
type Option func(*batchConfig)

// WithLogger sets the logger used for the batch summary.
func WithLogger(l logger.Logger) Option {
	return func(c *batchConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFailureSampleSize sets how many failure reasons the batch summary lists.
func WithFailureSampleSize(n int) Option {
	return func(c *batchConfig) {
		if n >= 0 {
			c.sampleSize = n
		}
	}
}
