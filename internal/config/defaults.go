package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default game configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:     0.25,
			FlapImpulse: -7,
			PipeSpeed:   3,
		},
		Pipes: PipeConfig{
			Width:           80,
			Gap:             150,
			Margin:          100,
			SpawnIntervalMS: 1500,
		},
		Bird: BirdConfig{
			X:               0,
			Size:            40,
			CollisionMargin: 0.42,
			TiltFactor:      2,
		},
		Clouds: CloudConfig{
			Count:             3,
			BaseSpeed:         1,
			MinFactor:         0.5,
			MaxFactor:         1.5,
			VelocityFactor:    0.3,
			PlayingMultiplier: 3,
			Width:             153,
			Height:            77,
		},
		Storage: StorageConfig{
			HighScoreFile: "highscore.json",
		},
		Debug: false,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
