package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BK[A-Z0-9]{8}$`)
	for i := 0; i < 100; i++ {
		ref, err := GenerateBookingID()
		require.NoError(t, err)
		assert.Regexp(t, pattern, ref)
	}
}

func TestGenerateBookingIDSpread(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		ref, err := GenerateBookingID()
		require.NoError(t, err)
		seen[ref] = struct{}{}
	}
	// 36^8 combinations; 1000 draws colliding would point at a broken generator.
	assert.Len(t, seen, 1000)
}
