package vision

import (
	"context"
	"errors"

	"ui-locator/internal/domain/entity"
	"ui-locator/internal/domain/port"
)

// StubConfidence уверенность, которую заглушка ставит каждой находке
const StubConfidence = 0.95

// stubElement фиксированная позиция элемента в долях кадра
type stubElement struct {
	elementType entity.ElementType
	center      [2]float64 // x, y
	box         [4]float64 // x1, y1, x2, y2
}

var stubLayout = []stubElement{
	{elementType: entity.ElementButton, center: [2]float64{0.5, 0.3}, box: [4]float64{0.45, 0.25, 0.55, 0.35}},
	{elementType: entity.ElementTextField, center: [2]float64{0.5, 0.5}, box: [4]float64{0.3, 0.45, 0.7, 0.55}},
	{elementType: entity.ElementSubmitButton, center: [2]float64{0.5, 0.7}, box: [4]float64{0.45, 0.65, 0.55, 0.75}},
}

// StubDetector детектор-заглушка: содержимое кадра не анализируется,
// возвращаются три элемента в фиксированных позициях, пересчитанные в пиксели.
// Состояния нет, поэтому один экземпляр безопасно делить между обработчиками.
type StubDetector struct {
	ModelPath string
}

// NewStubDetector создаёт заглушку. Путь к модели только запоминается.
func NewStubDetector(modelPath string) *StubDetector {
	return &StubDetector{ModelPath: modelPath}
}

// Detect возвращает синтетическую разметку для кадра.
// Нулевые размеры дают нулевые пиксельные координаты без ошибки.
func (d *StubDetector) Detect(ctx context.Context, frame *entity.Frame) (*entity.DetectionResult, error) {
	_ = ctx
	if frame == nil {
		return nil, errors.New("nil frame")
	}
	width, height := frame.Width, frame.Height

	result := &entity.DetectionResult{
		Points: make([]entity.Point, 0, len(stubLayout)),
		Boxes:  make([]entity.Box, 0, len(stubLayout)),
	}
	for _, el := range stubLayout {
		cx := entity.ToPixel(el.center[0], width)
		cy := entity.ToPixel(el.center[1], height)

		result.Points = append(result.Points, entity.Point{
			X:           cx,
			Y:           cy,
			Confidence:  StubConfidence,
			ElementType: el.elementType,
			NormalizedX: el.center[0] * entity.NormalizedScale,
			NormalizedY: el.center[1] * entity.NormalizedScale,
		})

		result.Boxes = append(result.Boxes, entity.Box{
			Coords: [4]int{
				entity.ToPixel(el.box[0], width),
				entity.ToPixel(el.box[1], height),
				entity.ToPixel(el.box[2], width),
				entity.ToPixel(el.box[3], height),
			},
			Confidence:  StubConfidence,
			ElementType: el.elementType,
			NormalizedCoords: [4]float64{
				el.box[0] * entity.NormalizedScale,
				el.box[1] * entity.NormalizedScale,
				el.box[2] * entity.NormalizedScale,
				el.box[3] * entity.NormalizedScale,
			},
			CenterPoint: [2]int{cx, cy},
		})
	}

	return result, nil
}

// Проверка реализации интерфейса
var _ port.UIDetector = (*StubDetector)(nil)
