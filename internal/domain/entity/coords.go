package entity

import "math"

// NormalizedScale верхняя граница нормализованных координат
const NormalizedScale = 100.0

// Normalize переводит пиксели в диапазон [0,100] относительно размеров кадра.
// Границы не проверяются: точки вне кадра дают значения вне диапазона.
// Нулевые width или height считаются нарушением контракта вызывающей стороны.
func Normalize(xPx, yPx float64, width, height int) (xNorm, yNorm float64) {
	xNorm = (xPx / float64(width)) * NormalizedScale
	yNorm = (yPx / float64(height)) * NormalizedScale
	return xNorm, yNorm
}

// Denormalize обратное преобразование: [0,100] в пиксели с округлением до ближайшего,
// поэтому целые пиксели после Normalize возвращаются без сдвига.
func Denormalize(xNorm, yNorm float64, width, height int) (xPx, yPx int) {
	xPx = int(math.Round(xNorm / NormalizedScale * float64(width)))
	yPx = int(math.Round(yNorm / NormalizedScale * float64(height)))
	return xPx, yPx
}

// ToPixel переводит долю [0,1] в пиксельную координату
func ToPixel(fraction float64, dimension int) int {
	return int(fraction * float64(dimension))
}
