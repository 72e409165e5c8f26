package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	t.Run("ZeroForSamePoint", func(t *testing.T) {
		require.Equal(t, 0.0, DistanceKm(13.0827, 80.2707, 13.0827, 80.2707))
	})

	t.Run("ChennaiShortHop", func(t *testing.T) {
		// Chennai central to a point ~3km southwest.
		d := DistanceKm(13.0827, 80.2707, 13.0600, 80.2500)
		require.InDelta(t, 3.4, d, 0.4)
	})

	t.Run("RoundedToTwoDecimals", func(t *testing.T) {
		d := DistanceKm(13.0827, 80.2707, 13.0600, 80.2500)
		require.Equal(t, d, round2(d))
	})

	t.Run("Symmetric", func(t *testing.T) {
		a := DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
		b := DistanceKm(13.0827, 80.2707, 12.9716, 77.5946)
		require.Equal(t, a, b)
	})

	t.Run("BangaloreToChennai", func(t *testing.T) {
		// Known great-circle distance is roughly 290km.
		d := DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
		require.InDelta(t, 290, d, 10)
	})
}

func TestValidPincode(t *testing.T) {
	valid := []string{"600001", "110001", "000000"}
	for _, s := range valid {
		require.True(t, ValidPincode(s), s)
	}

	invalid := []string{"", "60001", "6000011", "60000a", "6000 1", "-60001", "6OOOO1"}
	for _, s := range invalid {
		require.False(t, ValidPincode(s), s)
	}
}

func TestValidCoordinates(t *testing.T) {
	require.True(t, ValidCoordinates(0, 0))
	require.True(t, ValidCoordinates(-90, 180))
	require.False(t, ValidCoordinates(90.1, 0))
	require.False(t, ValidCoordinates(0, -180.5))
}
