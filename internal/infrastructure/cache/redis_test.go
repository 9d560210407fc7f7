package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"ui-locator/internal/domain/entity"
)

func TestAnnotationCodec_RoundTrip(t *testing.T) {
	want := &entity.Annotation{
		Result: &entity.DetectionResult{
			Points: []entity.Point{{
				X: 100, Y: 30, Confidence: 0.95, ElementType: entity.ElementButton,
				NormalizedX: 50, NormalizedY: 30,
			}},
			Boxes: []entity.Box{{
				Coords: [4]int{90, 25, 110, 35}, Confidence: 0.95, ElementType: entity.ElementButton,
				NormalizedCoords: [4]float64{45, 25, 55, 35}, CenterPoint: [2]int{100, 30},
			}},
		},
		OverlayPNG: []byte{0x89, 'P', 'N', 'G', 0, 0xff},
	}

	raw, err := encodeAnnotation(want)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"overlay_png":"iVBORwD/"`)
	require.Contains(t, string(raw), `"center_point":[100,30]`)

	got, err := decodeAnnotation(raw)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestAnnotationCodec_CoordinatesOnly(t *testing.T) {
	raw, err := encodeAnnotation(&entity.Annotation{Result: &entity.DetectionResult{}})
	require.NoError(t, err)
	require.NotContains(t, string(raw), "overlay_png")

	got, err := decodeAnnotation(raw)
	require.NoError(t, err)
	require.Empty(t, got.OverlayPNG)
}

func TestAnnotationCodec_Garbage(t *testing.T) {
	_, err := decodeAnnotation([]byte("{not json"))
	require.Error(t, err)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, RedisOptions{Address: "127.0.0.1:1"}, logger)
	require.Error(t, err)
	require.Nil(t, c)
}
