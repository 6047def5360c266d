package domain

import "time"

// ==== WebSocket Constants ====

// MaxMessageSize is the maximum allowed WebSocket message size in bytes.
// Decoration payloads with per-bulb colors are the largest frames a client sends.
const MaxMessageSize = 16384

// HeartbeatInterval is the period of the liveness sweep. A socket that misses
// the pong for a whole interval is terminated on the following sweep.
const HeartbeatInterval = 30 * time.Second

// ==== Session Code Constants ====

const (
	// SessionCodeLength is the number of characters in a join code
	SessionCodeLength = 6

	// SessionCodeAlphabet excludes glyphs that read alike (0/O, 1/I)
	SessionCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// MaxCodeAttempts bounds regeneration on code collision
	MaxCodeAttempts = 100
)

// ==== Player Defaults ====

const (
	DefaultCreatorName = "Snowfall"
	DefaultJoinerName  = "Starlit"

	DefaultOutfitColor = "#86cdf9"
	DefaultAccentColor = "#fff6b7"
	DefaultOutfit      = "parka"
	DefaultHair        = "soft-wave"
)

// ==== Decoration Defaults ====

const (
	DefaultDecorationType  = "ornament"
	DefaultDecorationColor = "#fff8e7"
	DefaultDecorationGlow  = 0.5
	DefaultCabinID         = "cabin-a"
	DefaultDecorationScale = 1.0
)
