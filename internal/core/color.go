package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Palette used by the flappy renderer.
const (
	ColorDefault Color = iota
	ColorSky           // Background tint, used for the ground line
	ColorPipe          // Pipe body
	ColorPipeCap       // Pipe tip facing the gap
	ColorBird          // Avatar
	ColorCloud         // Decorative clouds
	ColorDebug         // Collision overlay
	ColorText          // HUD and overlay text
	ColorMuted         // Secondary HUD text
)
