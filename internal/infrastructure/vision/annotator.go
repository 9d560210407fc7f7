package vision

import (
	"encoding/base64"
	"errors"
	"fmt"

	"ui-locator/internal/domain/entity"
	"ui-locator/internal/domain/port"
)

// Accent розовый цвет разметки, (147, 20, 255) в порядке BGR
var Accent = entity.BGR{B: 147, G: 20, R: 255}

// ErrDecode изображение не удалось декодировать
var ErrDecode = errors.New("failed to decode image")

const dataURIPrefix = "data:image/png;base64,"

// DataURI упаковывает PNG в data URI для встраивания в JSON
func DataURI(png []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png)
}

// Annotator декодирует скриншоты и рисует на них точки и рамки.
type Annotator struct{}

// NewAnnotator создаёт аннотатор
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Decode превращает байты изображения в BGR-кадр
func (a *Annotator) Decode(imageData []byte) (*entity.Frame, error) {
	return Decode(imageData)
}

// Overlay рисует сначала точки, затем рамки и кодирует результат в PNG.
// Исходный кадр не меняется.
func (a *Annotator) Overlay(frame *entity.Frame, result *entity.DetectionResult, opts entity.OverlayOptions) ([]byte, error) {
	if frame == nil || result == nil {
		return nil, errors.New("nothing to annotate")
	}
	if !frame.Valid() {
		return nil, fmt.Errorf("malformed frame %dx%d with %d bytes", frame.Width, frame.Height, len(frame.Pix))
	}
	withPoints := DrawPoints(frame, result.Points, opts.Radius)
	withBoxes := DrawBoxes(withPoints, result.Boxes, opts.Thickness)
	return EncodePNG(withBoxes)
}

// Проверка реализации интерфейса
var _ port.Annotator = (*Annotator)(nil)
