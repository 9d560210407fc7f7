package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"ui-locator/internal/domain/entity"
	"ui-locator/internal/infrastructure/cache"
	"ui-locator/internal/infrastructure/vision"
	"ui-locator/pkg/log"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func screenshotPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type countingDetector struct {
	calls atomic.Int32
	inner *vision.StubDetector
}

func (d *countingDetector) Detect(ctx context.Context, frame *entity.Frame) (*entity.DetectionResult, error) {
	d.calls.Add(1)
	return d.inner.Detect(ctx, frame)
}

type emptyFrameAnnotator struct {
	*vision.Annotator
}

func (a emptyFrameAnnotator) Decode([]byte) (*entity.Frame, error) {
	return entity.NewFrame(0, 0), nil
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (*entity.Annotation, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenCache) Set(context.Context, string, *entity.Annotation, time.Duration) error {
	return errors.New("connection refused")
}

func TestDetectionService_Detect(t *testing.T) {
	svc := NewDetectionService(quietLogger(), vision.NewStubDetector(""), vision.NewAnnotator(), nil, 0)

	out, err := svc.Detect(context.Background(), screenshotPNG(t, 200, 100))
	require.NoError(t, err)
	require.Len(t, out.Result.Points, 3)
	require.Equal(t, 100, out.Result.Points[0].X)
	require.Equal(t, 30, out.Result.Points[0].Y)
	require.Empty(t, out.OverlayPNG)
	require.Empty(t, out.ImageURI())
}

func TestDetectionService_DetectWithOverlay(t *testing.T) {
	svc := NewDetectionService(quietLogger(), vision.NewStubDetector(""), vision.NewAnnotator(), nil, 0)

	out, err := svc.DetectWithOverlay(context.Background(), screenshotPNG(t, 200, 100), entity.DefaultOverlayOptions())
	require.NoError(t, err)
	require.NotEmpty(t, out.OverlayPNG)

	res := out.OverlayResult()
	require.Equal(t, out.Result, res.Coordinates)
	require.True(t, strings.HasPrefix(res.Image, "data:image/png;base64,"))

	frame, err := vision.Decode(out.OverlayPNG)
	require.NoError(t, err)
	require.Equal(t, vision.Accent, frame.At(100, 50))
}

func TestDetectionService_InvalidImage(t *testing.T) {
	svc := NewDetectionService(quietLogger(), vision.NewStubDetector(""), vision.NewAnnotator(), nil, 0)

	_, err := svc.Detect(context.Background(), []byte("plain text"))
	require.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.Detect(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidImage)
}

func TestDetectionService_ZeroSizedFrameRejected(t *testing.T) {
	svc := NewDetectionService(quietLogger(), vision.NewStubDetector(""), emptyFrameAnnotator{vision.NewAnnotator()}, nil, 0)

	_, err := svc.Detect(context.Background(), []byte("anything"))
	require.ErrorIs(t, err, ErrInvalidImage)
}

func TestDetectionService_NotConfigured(t *testing.T) {
	svc := NewDetectionService(quietLogger(), nil, nil, nil, 0)
	_, err := svc.Detect(context.Background(), []byte("x"))
	require.ErrorIs(t, err, ErrDetectorNotConfigured)
}

func TestDetectionService_CachesByContentAndOptions(t *testing.T) {
	det := &countingDetector{inner: vision.NewStubDetector("")}
	svc := NewDetectionService(quietLogger(), det, vision.NewAnnotator(), cache.NewMemoryCache(), time.Minute)
	ctx := context.Background()
	img := screenshotPNG(t, 64, 64)

	first, err := svc.Detect(ctx, img)
	require.NoError(t, err)
	require.False(t, first.Cached)

	second, err := svc.Detect(ctx, img)
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, first.Result, second.Result)
	require.Equal(t, int32(1), det.calls.Load())

	_, err = svc.DetectWithOverlay(ctx, img, entity.OverlayOptions{Radius: 3, Thickness: 1})
	require.NoError(t, err)
	overlay, err := svc.DetectWithOverlay(ctx, img, entity.OverlayOptions{Radius: 3, Thickness: 1})
	require.NoError(t, err)
	require.True(t, overlay.Cached)
	require.NotEmpty(t, overlay.OverlayPNG)
	require.Equal(t, int32(2), det.calls.Load())
}

func TestDetectionService_BrokenCacheIsNotFatal(t *testing.T) {
	svc := NewDetectionService(quietLogger(), vision.NewStubDetector(""), vision.NewAnnotator(), brokenCache{}, time.Minute)

	out, err := svc.Detect(context.Background(), screenshotPNG(t, 10, 10))
	require.NoError(t, err)
	require.Len(t, out.Result.Boxes, 3)
}

func TestDetectionService_CacheWarningsCarryRequestID(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	svc := NewDetectionService(logger, vision.NewStubDetector(""), vision.NewAnnotator(), brokenCache{}, time.Minute)

	ctx := log.ContextWithRequestID(context.Background(), "01HZX3J6Q2V7R8S9T0ABCDEF12")
	_, err := svc.Detect(ctx, screenshotPNG(t, 10, 10))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.Equal(t, logrus.WarnLevel, e.Level)
		require.Equal(t, "01HZX3J6Q2V7R8S9T0ABCDEF12", e.Data[log.RequestIDKey])
		require.Contains(t, e.Data, logrus.ErrorKey)
	}
}
