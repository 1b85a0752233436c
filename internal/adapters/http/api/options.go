package api

import (
	"time"

	"github.com/okian/shaftdb/pkg/logger"
)

// Defaults applied by NewServer.
const (
	DefaultPageLimit      = 50
	DefaultMaxPageLimit   = 500
	DefaultMaxCompare     = 10
	DefaultRequestTimeout = 30 * time.Second
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPageLimits sets the default and maximum page size of GET /shafts.
func WithPageLimits(def, maxLimit int) Option {
	return func(s *Server) {
		if def > 0 && maxLimit >= def {
			s.defaultLimit = def
			s.maxLimit = maxLimit
		}
	}
}

// WithMaxCompare caps how many shafts one comparison may name.
func WithMaxCompare(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxCompare = n
		}
	}
}

// WithRequestTimeout bounds the time spent on one request.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithVersion sets the version reported by GET /.
func WithVersion(v string) Option {
	return func(s *Server) {
		if v != "" {
			s.version = v
		}
	}
}
