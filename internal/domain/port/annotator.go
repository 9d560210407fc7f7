package port

import "ui-locator/internal/domain/entity"

// Annotator декодирует скриншоты и рисует на них результаты детекции
type Annotator interface {
	// Decode превращает байты изображения в кадр
	Decode(imageData []byte) (*entity.Frame, error)

	// Overlay рисует точки и рамки на копии кадра и возвращает PNG
	Overlay(frame *entity.Frame, result *entity.DetectionResult, opts entity.OverlayOptions) ([]byte, error)
}
