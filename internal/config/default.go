package config

import "time"

const (
	DefaultPage      = 1
	DefaultSize      = 40
	DefaultCacheTime = time.Hour
)

const (
	// TokenBytes is the entropy of a generated token value; rendered as hex.
	TokenBytes = 32

	// TokenGenAttempts bounds retries on token value collision before
	// issuance gives up. Collisions are statistically negligible, the
	// bound exists so a broken RNG cannot spin forever.
	TokenGenAttempts = 5
)
