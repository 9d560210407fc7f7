//go:build !gocv
// +build !gocv

package vision

import "ui-locator/internal/domain/entity"

// DrawPoints рисует закрашенный круг радиуса radius на месте каждой точки.
// Рисует на копии кадра по порядку: поздние точки перекрывают ранние.
func DrawPoints(frame *entity.Frame, points []entity.Point, radius int) *entity.Frame {
	result := frame.Clone()
	for _, p := range points {
		fillCircle(result, p.X, p.Y, radius, Accent)
	}
	return result
}

// DrawBoxes рисует незакрашенную рамку толщиной thickness вокруг каждого элемента.
// Отрицательная толщина закрашивает рамку целиком.
func DrawBoxes(frame *entity.Frame, boxes []entity.Box, thickness int) *entity.Frame {
	result := frame.Clone()
	for _, b := range boxes {
		strokeRect(result, b.Coords[0], b.Coords[1], b.Coords[2], b.Coords[3], thickness, Accent)
	}
	return result
}

func fillCircle(f *entity.Frame, cx, cy, radius int, c entity.BGR) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				f.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// strokeRect закрашивает полосу ровно в thickness пикселей по контуру (x1,y1)-(x2,y2).
// Контур лежит внутри полосы; при чётной толщине наружу уходит на пиксель больше.
func strokeRect(f *entity.Frame, x1, y1, x2, y2, thickness int, c entity.BGR) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if thickness < 0 {
		fillRect(f, x1, y1, x2, y2, c)
		return
	}
	if thickness == 0 {
		thickness = 1
	}

	outer := thickness / 2
	inner := thickness - 1 - outer
	outerX1, outerY1 := x1-outer, y1-outer
	outerX2, outerY2 := x2+outer, y2+outer
	innerX1, innerY1 := x1+inner, y1+inner
	innerX2, innerY2 := x2-inner, y2-inner

	for y := maxInt(outerY1, 0); y <= minInt(outerY2, f.Height-1); y++ {
		for x := maxInt(outerX1, 0); x <= minInt(outerX2, f.Width-1); x++ {
			inside := x > innerX1 && x < innerX2 && y > innerY1 && y < innerY2
			if !inside {
				f.Set(x, y, c)
			}
		}
	}
}

func fillRect(f *entity.Frame, x1, y1, x2, y2 int, c entity.BGR) {
	for y := maxInt(y1, 0); y <= minInt(y2, f.Height-1); y++ {
		for x := maxInt(x1, 0); x <= minInt(x2, f.Width-1); x++ {
			f.Set(x, y, c)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
