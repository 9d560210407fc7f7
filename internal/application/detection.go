package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"ui-locator/internal/domain/entity"
	"ui-locator/internal/domain/port"
	"ui-locator/internal/infrastructure/vision"
	"ui-locator/pkg/log"
)

var (
	// ErrInvalidImage загруженный файл не декодируется или пустой
	ErrInvalidImage = errors.New("invalid image file")
	// ErrDetectorNotConfigured сервис собран без детектора
	ErrDetectorNotConfigured = errors.New("detector is not configured")
)

type DetectionService struct {
	detector  port.UIDetector
	annotator port.Annotator
	cache     port.ResultCache
	cacheTTL  time.Duration
	log       *logrus.Logger
}

// DetectionOutput результат детекции и, для оверлея, картинка с разметкой.
type DetectionOutput struct {
	Result     *entity.DetectionResult
	OverlayPNG []byte
	Cached     bool
}

// ImageURI оверлей в виде data URI; пустая строка, если оверлей не рисовался
func (o *DetectionOutput) ImageURI() string {
	if len(o.OverlayPNG) == 0 {
		return ""
	}
	return vision.DataURI(o.OverlayPNG)
}

// OverlayResult ответ эндпоинта с оверлеем
func (o *DetectionOutput) OverlayResult() *entity.OverlayResult {
	return &entity.OverlayResult{Coordinates: o.Result, Image: o.ImageURI()}
}

// NewDetectionService собирает сервис. cache может быть nil, тогда кэш не используется.
// Ошибки кэша не роняют запрос, а только пишутся в лог.
func NewDetectionService(logger *logrus.Logger, detector port.UIDetector, annotator port.Annotator, cache port.ResultCache, cacheTTL time.Duration) *DetectionService {
	return &DetectionService{
		detector:  detector,
		annotator: annotator,
		cache:     cache,
		cacheTTL:  cacheTTL,
		log:       logger,
	}
}

// Detect декодирует скриншот и возвращает координаты элементов.
func (s *DetectionService) Detect(ctx context.Context, imageData []byte) (*DetectionOutput, error) {
	return s.run(ctx, imageData, nil)
}

// DetectWithOverlay дополнительно рисует точки и рамки поверх копии скриншота.
func (s *DetectionService) DetectWithOverlay(ctx context.Context, imageData []byte, opts entity.OverlayOptions) (*DetectionOutput, error) {
	return s.run(ctx, imageData, &opts)
}

func (s *DetectionService) run(ctx context.Context, imageData []byte, overlay *entity.OverlayOptions) (*DetectionOutput, error) {
	if s.detector == nil || s.annotator == nil {
		return nil, ErrDetectorNotConfigured
	}
	if len(imageData) == 0 {
		return nil, ErrInvalidImage
	}

	key := cacheKey(imageData, overlay)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.entry(ctx).WithError(err).Warn("Annotation cache read failed")
		}
		if ok && cached != nil && cached.Result != nil {
			return &DetectionOutput{Result: cached.Result, OverlayPNG: cached.OverlayPNG, Cached: true}, nil
		}
	}

	frame, err := s.annotator.Decode(imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	// Кадр без пикселей отсекаем здесь: детектор на нём молча вернёт нули.
	if frame.Empty() {
		return nil, fmt.Errorf("%w: zero-sized image", ErrInvalidImage)
	}

	result, err := s.detector.Detect(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("detect ui elements: %w", err)
	}

	out := &DetectionOutput{Result: result}
	if overlay != nil {
		out.OverlayPNG, err = s.annotator.Overlay(frame, result, *overlay)
		if err != nil {
			return nil, fmt.Errorf("draw overlay: %w", err)
		}
	}

	if s.cache != nil {
		annotation := &entity.Annotation{Result: out.Result, OverlayPNG: out.OverlayPNG}
		if err := s.cache.Set(ctx, key, annotation, s.cacheTTL); err != nil {
			s.entry(ctx).WithError(err).Warn("Annotation cache write failed")
		}
	}

	return out, nil
}

// entry запись лога с request_id, если он пришёл с запросом
func (s *DetectionService) entry(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(s.log)
	if id := log.RequestIDFromContext(ctx); id != "" {
		entry = entry.WithField(log.RequestIDKey, id)
	}
	return entry
}

// cacheKey хэш содержимого файла плюс параметры отрисовки
func cacheKey(imageData []byte, overlay *entity.OverlayOptions) string {
	sum := sha256.Sum256(imageData)
	key := hex.EncodeToString(sum[:])
	if overlay == nil {
		return key + ":coords"
	}
	return fmt.Sprintf("%s:overlay:r%d:t%d", key, overlay.Radius, overlay.Thickness)
}
