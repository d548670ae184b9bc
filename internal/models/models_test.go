package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToken_IsValid(t *testing.T) {
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	expiry := issued.Add(10 * time.Minute)

	tests := []struct {
		name     string
		token    Token
		now      time.Time
		expected bool
	}{
		{
			name:     "NoExpiryAlwaysValid",
			token:    Token{Value: "tok", InitDate: issued},
			now:      issued.Add(100 * 365 * 24 * time.Hour),
			expected: true,
		},
		{
			name:     "BeforeExpiry",
			token:    Token{Value: "tok", InitDate: issued, Expiry: &expiry},
			now:      issued.Add(9 * time.Minute),
			expected: true,
		},
		{
			name:     "ExactlyAtExpiry",
			token:    Token{Value: "tok", InitDate: issued, Expiry: &expiry},
			now:      expiry,
			expected: true,
		},
		{
			name:     "AfterExpiry",
			token:    Token{Value: "tok", InitDate: issued, Expiry: &expiry},
			now:      issued.Add(11 * time.Minute),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.IsValid(tt.now))
		})
	}
}
