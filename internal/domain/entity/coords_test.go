package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_Center(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 2}, {200, 100}, {1920, 1080}, {333, 777}}
	for _, s := range sizes {
		w, h := s[0], s[1]
		x, y := Normalize(float64(w)/2, float64(h)/2, w, h)
		require.Equal(t, 50.0, x)
		require.Equal(t, 50.0, y)
	}
}

func TestNormalize_OutOfRangeIsNotClamped(t *testing.T) {
	x, y := Normalize(-20, 300, 200, 100)
	require.Equal(t, -10.0, x)
	require.Equal(t, 300.0, y)
}

func TestNormalize_ZeroDimension(t *testing.T) {
	x, _ := Normalize(10, 10, 0, 100)
	require.True(t, math.IsInf(x, 1))

	x, _ = Normalize(0, 10, 0, 100)
	require.True(t, math.IsNaN(x))
}

func TestDenormalize_RoundTrip(t *testing.T) {
	xNorm, yNorm := Normalize(150, 40, 200, 100)
	x, y := Denormalize(xNorm, yNorm, 200, 100)
	require.Equal(t, 150, x)
	require.Equal(t, 40, y)
}

func TestDenormalize_RoundTripEveryPixel(t *testing.T) {
	sizes := [][2]int{{100, 100}, {200, 100}, {1920, 1080}, {333, 777}}
	for _, s := range sizes {
		w, h := s[0], s[1]
		for x := 0; x <= w; x++ {
			y := x % (h + 1)
			xNorm, yNorm := Normalize(float64(x), float64(y), w, h)
			gotX, gotY := Denormalize(xNorm, yNorm, w, h)
			require.Equal(t, x, gotX, "x=%d w=%d", x, w)
			require.Equal(t, y, gotY, "y=%d h=%d", y, h)
		}
	}

	// 29/100*100 даёт 28.999999999999996, усечение потеряло бы пиксель
	x, _ := Denormalize(29, 0, 100, 100)
	require.Equal(t, 29, x)
}

func TestToPixel_Truncates(t *testing.T) {
	require.Equal(t, 30, ToPixel(0.3, 100))
	require.Equal(t, 2, ToPixel(0.5, 5))
	require.Equal(t, 0, ToPixel(0.7, 0))
}
