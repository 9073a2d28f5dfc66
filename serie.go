package charts

import (
	"github.com/midbel/svg"
)

type Serie[T, U ScalerConstraint] struct {
	Title string

	X      Scaler[T]
	Y      Scaler[U]
	Points []Point[T, U]

	Renderer Renderer[T, U]
}

func (s Serie[T, U]) Render() svg.Element {
	return s.Renderer.Render(s)
}

// Point is one datum of a Serie. Color and Title are optional and override
// the renderer defaults for this point only.
type Point[T, U ScalerConstraint] struct {
	X     T
	Y     U
	Color string
	Title string
}

func CategoryPoint(x string, y float64) Point[string, float64] {
	return Point[string, float64]{
		X: x,
		Y: y,
	}
}
