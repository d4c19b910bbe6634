// Package config provides YAML-based configuration loading for the flappy game.
package config

import "time"

// FlappyConfig contains all tunables of the game. World units are pixels of a
// 400x600 playfield; the terminal renderer scales them to cells.
type FlappyConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Physics PhysicsConfig `yaml:"physics"`
	Pipes   PipeConfig    `yaml:"pipes"`
	Bird    BirdConfig    `yaml:"bird"`
	Clouds  CloudConfig   `yaml:"clouds"`
	Storage StorageConfig `yaml:"storage"`
	Debug   bool          `yaml:"debug"` // Start with the collision overlay on
}

// ScreenConfig defines the playfield size in world units.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines per-tick motion constants. They are not time-scaled.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set by a flap (negative = up)
	PipeSpeed   float64 `yaml:"pipe_speed"`   // Pipe displacement per tick
}

// PipeConfig defines obstacle geometry and spawn cadence.
type PipeConfig struct {
	Width           int `yaml:"width"`
	Gap             int `yaml:"gap"`
	Margin          int `yaml:"margin"` // Minimum distance of the gap center from either edge
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
}

// SpawnInterval returns the wall-clock time between pipe spawns.
func (p PipeConfig) SpawnInterval() time.Duration {
	return time.Duration(p.SpawnIntervalMS) * time.Millisecond
}

// BirdConfig defines the avatar sprite and hitbox.
type BirdConfig struct {
	X               float64 `yaml:"x"`                // Horizontal center; 0 means one third of the width
	Size            float64 `yaml:"size"`             // Sprite width and height
	CollisionMargin float64 `yaml:"collision_margin"` // Hitbox diameter as a fraction of the sprite
	TiltFactor      float64 `yaml:"tilt_factor"`      // Degrees of tilt per unit of velocity
}

// CloudConfig defines the decorative background layer.
type CloudConfig struct {
	Count             int     `yaml:"count"`
	BaseSpeed         float64 `yaml:"base_speed"`
	MinFactor         float64 `yaml:"min_factor"`
	MaxFactor         float64 `yaml:"max_factor"`
	VelocityFactor    float64 `yaml:"velocity_factor"`
	PlayingMultiplier float64 `yaml:"playing_multiplier"`
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
}

// StorageConfig names the persisted high-score location.
type StorageConfig struct {
	HighScoreFile string `yaml:"highscore_file"`
}

// BirdX returns the avatar's fixed horizontal center.
func (c FlappyConfig) BirdX() float64 {
	if c.Bird.X > 0 {
		return c.Bird.X
	}
	return float64(c.Screen.Width / 3)
}
