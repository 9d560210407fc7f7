package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ui-locator/internal/domain/entity"
)

var background = entity.BGR{B: 10, G: 200, R: 30}

func newCanvas(w, h int) *entity.Frame {
	f := entity.NewFrame(w, h)
	f.Fill(background)
	return f
}

func TestDrawPoints_DoesNotMutateInput(t *testing.T) {
	src := newCanvas(40, 30)
	before := src.Clone()

	out := DrawPoints(src, []entity.Point{{X: 20, Y: 15}}, entity.DefaultRadius)

	require.True(t, src.Equal(before))
	require.False(t, out.Equal(before))
}

func TestDrawPoints_FilledMarker(t *testing.T) {
	out := DrawPoints(newCanvas(40, 30), []entity.Point{{X: 20, Y: 15}}, 5)

	require.Equal(t, Accent, out.At(20, 15))
	require.Equal(t, Accent, out.At(22, 16))
	require.Equal(t, Accent, out.At(17, 13))
	require.Equal(t, background, out.At(0, 0))
	require.Equal(t, background, out.At(39, 29))
	require.Equal(t, background, out.At(20, 22))
}

func TestDrawPoints_OverpaintIsIdempotent(t *testing.T) {
	src := newCanvas(40, 30)
	p := entity.Point{X: 12, Y: 9}

	once := DrawPoints(src, []entity.Point{p}, 5)
	twice := DrawPoints(src, []entity.Point{p, p}, 5)
	require.True(t, once.Equal(twice))
}

func TestDrawPoints_OutOfBoundsIsClipped(t *testing.T) {
	src := newCanvas(20, 20)
	out := DrawPoints(src, []entity.Point{{X: -100, Y: -100}, {X: 500, Y: 3}}, 5)
	require.True(t, out.Equal(src))

	edge := DrawPoints(src, []entity.Point{{X: 0, Y: 0}}, 5)
	require.Equal(t, Accent, edge.At(0, 0))
	require.Equal(t, Accent, edge.At(2, 2))
}

func TestDrawBoxes_OutlineOnly(t *testing.T) {
	src := newCanvas(60, 40)
	before := src.Clone()
	box := entity.Box{Coords: [4]int{10, 10, 50, 30}}

	out := DrawBoxes(src, []entity.Box{box}, entity.DefaultThickness)

	require.True(t, src.Equal(before))
	require.Equal(t, Accent, out.At(10, 10))
	require.Equal(t, Accent, out.At(30, 10))
	require.Equal(t, Accent, out.At(50, 20))
	require.Equal(t, Accent, out.At(30, 30))
	require.Equal(t, background, out.At(30, 20))
	require.Equal(t, background, out.At(2, 2))
	require.Equal(t, background, out.At(57, 37))
}

func TestDrawBoxes_OverpaintIsIdempotent(t *testing.T) {
	src := newCanvas(60, 40)
	box := entity.Box{Coords: [4]int{5, 5, 25, 25}}

	once := DrawBoxes(src, []entity.Box{box}, 2)
	twice := DrawBoxes(src, []entity.Box{box, box}, 2)
	require.True(t, once.Equal(twice))
}

func TestDrawBoxes_EvenThicknessDiffersFromNextOdd(t *testing.T) {
	src := newCanvas(60, 40)
	box := []entity.Box{{Coords: [4]int{10, 10, 50, 30}}}

	require.False(t, DrawBoxes(src, box, 2).Equal(DrawBoxes(src, box, 3)))
	require.False(t, DrawBoxes(src, box, 4).Equal(DrawBoxes(src, box, 5)))
}

func TestDrawBoxes_OutOfBoundsIsClipped(t *testing.T) {
	src := newCanvas(20, 20)
	out := DrawBoxes(src, []entity.Box{{Coords: [4]int{-10, -10, 40, 40}}}, 2)
	require.True(t, out.Equal(src))

	partial := DrawBoxes(src, []entity.Box{{Coords: [4]int{-10, 5, 10, 15}}}, 2)
	require.Equal(t, Accent, partial.At(10, 10))
	require.Equal(t, Accent, partial.At(5, 5))
	require.Equal(t, background, partial.At(5, 10))
}
