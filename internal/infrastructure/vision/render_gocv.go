//go:build gocv
// +build gocv

package vision

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"ui-locator/internal/domain/entity"
)

var accentRGBA = color.RGBA{R: Accent.R, G: Accent.G, B: Accent.B, A: 255}

// DrawPoints рисует закрашенный круг радиуса radius на месте каждой точки.
// Рисует на копии кадра по порядку: поздние точки перекрывают ранние.
func DrawPoints(frame *entity.Frame, points []entity.Point, radius int) *entity.Frame {
	return withMat(frame, func(mat *gocv.Mat) {
		for _, p := range points {
			gocv.Circle(mat, image.Pt(p.X, p.Y), radius, accentRGBA, -1)
		}
	})
}

// DrawBoxes рисует незакрашенную рамку толщиной thickness вокруг каждого элемента.
// Отрицательная толщина закрашивает рамку целиком.
func DrawBoxes(frame *entity.Frame, boxes []entity.Box, thickness int) *entity.Frame {
	return withMat(frame, func(mat *gocv.Mat) {
		for _, b := range boxes {
			rect := image.Rect(b.Coords[0], b.Coords[1], b.Coords[2], b.Coords[3])
			gocv.Rectangle(mat, rect, accentRGBA, thickness)
		}
	})
}

// withMat оборачивает копию кадра в gocv.Mat, рисует и забирает пиксели обратно.
// Кадр с неверным размером буфера возвращается без разметки, Annotator.Overlay отсекает такие заранее.
func withMat(frame *entity.Frame, draw func(mat *gocv.Mat)) *entity.Frame {
	result := frame.Clone()
	if result.Empty() || !result.Valid() {
		return result
	}

	mat, err := gocv.NewMatFromBytes(result.Height, result.Width, gocv.MatTypeCV8UC3, result.Pix)
	if err != nil {
		return result
	}
	defer mat.Close()

	draw(&mat)
	result.Pix = mat.ToBytes()
	return result
}
