package entity

// ElementType тип найденного элемента интерфейса
type ElementType string

const (
	ElementButton       ElementType = "button"
	ElementTextField    ElementType = "text_field"
	ElementSubmitButton ElementType = "submit_button"
)

// Point точка клика по элементу интерфейса
type Point struct {
	X           int         `json:"x"`            // пиксели
	Y           int         `json:"y"`            // пиксели
	Confidence  float64     `json:"confidence"`   // [0,1]
	ElementType ElementType `json:"element_type"` // тип элемента
	NormalizedX float64     `json:"normalized_x"` // [0,100]
	NormalizedY float64     `json:"normalized_y"` // [0,100]
}

// Box рамка вокруг элемента интерфейса
type Box struct {
	Coords           [4]int      `json:"coords"` // x1, y1, x2, y2
	Confidence       float64     `json:"confidence"`
	ElementType      ElementType `json:"element_type"`
	NormalizedCoords [4]float64  `json:"normalized_coords"`
	CenterPoint      [2]int      `json:"center_point"` // точка клика, совпадает с Point
}

// DetectionResult точки и рамки в порядке обнаружения.
type DetectionResult struct {
	Points []Point `json:"points"`
	Boxes  []Box   `json:"boxes"`
}

// OverlayResult ответ с координатами и картинкой-оверлеем в виде data URI
type OverlayResult struct {
	Coordinates *DetectionResult `json:"coordinates"`
	Image       string           `json:"image,omitempty"`
}

// Annotation результат детекции и, если просили, PNG с оверлеем
type Annotation struct {
	Result     *DetectionResult `json:"result"`
	OverlayPNG []byte           `json:"overlay_png,omitempty"`
}

// OverlayOptions параметры отрисовки оверлея
type OverlayOptions struct {
	Radius    int // радиус точек
	Thickness int // толщина рамок
}

const (
	DefaultRadius    = 5
	DefaultThickness = 2
)

// DefaultOverlayOptions возвращает параметры отрисовки по умолчанию
func DefaultOverlayOptions() OverlayOptions {
	return OverlayOptions{Radius: DefaultRadius, Thickness: DefaultThickness}
}
