package charts

import (
	"github.com/midbel/svg"
)

const currentColour = "currentColor"

type Renderer[T, U ScalerConstraint] interface {
	Render(Serie[T, U]) svg.Element
}

// BarRenderer draws one rect per point from the bottom of the Y range up to
// the scaled value of the point.
//
// When the X scaler of the serie is a Band, bars take the full bandwidth and
// Width is ignored. Otherwise Width is the fraction of the X space used by a
// bar.
type BarRenderer[T ~string, U ~float64] struct {
	Fill   []string
	Width  float64
	Radius float64
}

func (r BarRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	if r.Width <= 0 {
		r.Width = 1
	}
	var (
		grp    = getBaseGroup("bars")
		width  = serie.X.Space() * r.Width
		offset = (serie.X.Space() - width) / 2
		bottom = serie.Y.Max()
	)
	if b, ok := any(serie.X).(Band); ok {
		width, offset = b.Bandwidth(), 0
	}
	for i, pt := range serie.Points {
		var (
			x  = serie.X.Scale(pt.X) + offset
			y  = serie.Y.Scale(pt.Y)
			el svg.Rect
		)
		el.Class = []string{"bar"}
		el.Title = escapeText(pt.Title)
		el.Pos = svg.NewPos(x, y)
		el.Dim = svg.NewDim(width, bottom-y)
		el.Fill = svg.NewFill(r.getFill(i, pt.Color))
		el.RX = r.Radius
		el.RY = r.Radius
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

func (r BarRenderer[T, U]) getFill(i int, color string) string {
	if color != "" {
		return color
	}
	if len(r.Fill) == 0 {
		return currentColour
	}
	return r.Fill[i%len(r.Fill)]
}

func getBaseGroup(class ...string) svg.Group {
	var g svg.Group
	g.Class = class
	return g
}
