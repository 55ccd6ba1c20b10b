// Package engine orchestrates one conversion run: loading a WSDL and its
// schema dependencies, building the registry, walking every operation,
// and emitting a single CommonAPISpec.
//
// Its Config/Option pair follows the functional-options pattern: an
// Option mutates a Config and returns another Option that undoes the
// change, so callers can compose defaults and overrides without a
// builder type.
package engine

import (
	"github.com/CognitoIQ/soapspec/enginelog"
	"github.com/CognitoIQ/soapspec/schema"
	"github.com/CognitoIQ/soapspec/typeexpand"
)

// A Config holds every tunable of a conversion run. The zero Config is
// not ready to use; call NewConfig to get one with the specification's
// defaults applied.
type Config struct {
	MaxDepth      int
	MaxCycles     int
	CacheCapacity int
	Logger        enginelog.Logger
	StrictImports bool
}

// An Option configures a Config. Applying an Option returns another
// Option that restores the previous value, so options compose and undo
// cleanly in tests.
type Option func(*Config) Option

// NewConfig returns a Config with every default from §3.1/§4.4 applied,
// then overridden by opts in order.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		MaxDepth:      typeexpand.DefaultMaxDepth,
		MaxCycles:     typeexpand.DefaultMaxCycles,
		CacheCapacity: schema.DefaultCacheCapacity,
		Logger:        enginelog.New(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// MaxDepth overrides the cycle detector's maximum recursion depth.
func MaxDepth(n int) Option {
	return func(c *Config) Option {
		prev := c.MaxDepth
		c.MaxDepth = n
		return MaxDepth(prev)
	}
}

// MaxCycles overrides the cycle detector's cumulative cycle-count limit.
func MaxCycles(n int) Option {
	return func(c *Config) Option {
		prev := c.MaxCycles
		c.MaxCycles = n
		return MaxCycles(prev)
	}
}

// CacheCapacity overrides the resolution cache's LRU capacity.
func CacheCapacity(n int) Option {
	return func(c *Config) Option {
		prev := c.CacheCapacity
		c.CacheCapacity = n
		return CacheCapacity(prev)
	}
}

// WithLogger overrides the engine's Logger.
func WithLogger(l enginelog.Logger) Option {
	return func(c *Config) Option {
		prev := c.Logger
		c.Logger = l
		return WithLogger(prev)
	}
}

// StrictImports makes a missing xsd:import/schemaLocation fatal for the
// run instead of merely logged and skipped.
func StrictImports(strict bool) Option {
	return func(c *Config) Option {
		prev := c.StrictImports
		c.StrictImports = strict
		return StrictImports(prev)
	}
}
