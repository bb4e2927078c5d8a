package btree

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config sizes the tree.
type Config struct {
	// MaxKeys is the key capacity of every node. Must be at least 2.
	MaxKeys int
	// RecordsPerBlock only affects BlocksCount. Must be at least 1.
	RecordsPerBlock int
}

// DefaultConfig returns the default node sizing.
func DefaultConfig() Config {
	return Config{
		MaxKeys:         DefaultMaxKeys,
		RecordsPerBlock: DefaultRecordsPerBlock,
	}
}

// Validate checks the config bounds.
func (c Config) Validate() error {
	if c.MaxKeys < minMaxKeys {
		return errors.Errorf("max keys must be at least %d, got %d", minMaxKeys, c.MaxKeys)
	}
	if c.RecordsPerBlock < 1 {
		return errors.Errorf("records per block must be at least 1, got %d", c.RecordsPerBlock)
	}
	return nil
}

type options struct {
	logger *zap.Logger
}

// Option customizes a Tree.
type Option func(*options)

// WithLogger sets the logger used for soft-failure diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func zapKey[K any](key K) zap.Field {
	return zap.Any("key", key)
}
