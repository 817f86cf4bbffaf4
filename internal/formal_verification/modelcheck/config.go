package modelcheck

import (
	"errors"
	"fmt"
	"time"
)

// StateIdentity selects how successor states are keyed.
type StateIdentity string

const (
	// PathIdentity appends the triggering event to the parent ID, so every
	// event order yields its own state.
	PathIdentity StateIdentity = "path"
	// StructuralIdentity keys a state by its status vector, merging states
	// reached through different event orders.
	StructuralIdentity StateIdentity = "structural"
)

const (
	DefaultMaxStates = 10000
	DefaultMaxDepth  = 1000
	DefaultTimeout   = 300 * time.Second
)

var ErrInvalidConfig = errors.New("invalid model checker config")

type Config struct {
	MaxStates int           `json:"max_states" yaml:"max_states"`
	MaxDepth  int           `json:"max_depth" yaml:"max_depth"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	Parallel  bool          `json:"parallel" yaml:"parallel"`
	// Workers caps parallel successor generation; 0 means GOMAXPROCS.
	Workers  int           `json:"workers,omitempty" yaml:"workers,omitempty"`
	Identity StateIdentity `json:"identity" yaml:"identity"`
}

func DefaultConfig() Config {
	return Config{
		MaxStates: DefaultMaxStates,
		MaxDepth:  DefaultMaxDepth,
		Timeout:   DefaultTimeout,
		Parallel:  false,
		Identity:  PathIdentity,
	}
}

func (c Config) Validate() error {
	if c.MaxStates < 1 {
		return fmt.Errorf("%w: max_states must be at least 1, got %d", ErrInvalidConfig, c.MaxStates)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	switch c.Identity {
	case PathIdentity, StructuralIdentity, "":
	default:
		return fmt.Errorf("%w: unknown state identity %q", ErrInvalidConfig, c.Identity)
	}
	return nil
}
