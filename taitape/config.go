package taitape

import "fmt"

const (
	DefaultInitialCells = 1024
	DefaultMaxCells     = 30000
	DefaultGrowCells    = 1024
)

type Config struct {
	InitialCells int
	MaxCells     int
	GrowCells    int
}

func (c Config) withDefaults() Config {
	if c.InitialCells == 0 {
		c.InitialCells = DefaultInitialCells
	}
	if c.MaxCells == 0 {
		c.MaxCells = DefaultMaxCells
	}
	if c.GrowCells == 0 {
		c.GrowCells = DefaultGrowCells
	}
	return c
}

func (c Config) Validate() error {
	if c.InitialCells <= 0 {
		return fmt.Errorf("initial cells must be positive, got %d", c.InitialCells)
	}
	if c.GrowCells <= 0 {
		return fmt.Errorf("grow cells must be positive, got %d", c.GrowCells)
	}
	if c.InitialCells > c.MaxCells {
		return fmt.Errorf("initial cells %d exceeds max cells %d", c.InitialCells, c.MaxCells)
	}
	return nil
}
