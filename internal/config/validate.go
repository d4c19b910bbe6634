package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate rejects physically impossible configurations.
// A margin that does not fit the screen is not an error: spawning clamps it.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: screen must be positive, got %dx%d",
			ErrInvalid, c.Screen.Width, c.Screen.Height))
	}
	if c.Pipes.Width <= 0 {
		errs = append(errs, fmt.Errorf("%w: pipe width must be positive, got %d", ErrInvalid, c.Pipes.Width))
	}
	if c.Pipes.Gap <= 0 || c.Pipes.Gap > c.Screen.Height {
		errs = append(errs, fmt.Errorf("%w: pipe gap %d does not fit screen height %d",
			ErrInvalid, c.Pipes.Gap, c.Screen.Height))
	}
	if c.Pipes.Margin < 0 {
		errs = append(errs, fmt.Errorf("%w: pipe margin must not be negative, got %d", ErrInvalid, c.Pipes.Margin))
	}
	if c.Pipes.SpawnIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("%w: spawn interval must be positive, got %dms",
			ErrInvalid, c.Pipes.SpawnIntervalMS))
	}
	if c.Physics.PipeSpeed <= 0 {
		errs = append(errs, fmt.Errorf("%w: pipe speed must be positive, got %v", ErrInvalid, c.Physics.PipeSpeed))
	}
	if c.Bird.Size <= 0 {
		errs = append(errs, fmt.Errorf("%w: bird size must be positive, got %v", ErrInvalid, c.Bird.Size))
	}
	if c.Bird.CollisionMargin <= 0 || c.Bird.CollisionMargin > 1 {
		errs = append(errs, fmt.Errorf("%w: collision margin must be in (0, 1], got %v",
			ErrInvalid, c.Bird.CollisionMargin))
	}
	if c.Clouds.Count < 0 {
		errs = append(errs, fmt.Errorf("%w: cloud count must not be negative, got %d", ErrInvalid, c.Clouds.Count))
	}
	if c.Clouds.MinFactor > c.Clouds.MaxFactor {
		errs = append(errs, fmt.Errorf("%w: cloud speed factor range [%v, %v] is empty",
			ErrInvalid, c.Clouds.MinFactor, c.Clouds.MaxFactor))
	}

	return errors.Join(errs...)
}
