package charts

import (
	"github.com/midbel/svg"
)

var DefaultSize float64 = 14

// GetSquare returns a square of side DefaultSize with its top left corner at
// pos and slightly rounded corners.
func GetSquare(pos svg.Pos, color string) svg.Element {
	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(color)
	el.RX = 2
	el.Class = []string{"swatch"}
	return el.AsElement()
}

type LegendItem struct {
	Label string
	Color string
}

// Legend stacks one swatch and one label per item, Gap pixels apart.
type Legend struct {
	Items  []LegendItem
	Offset float64
	Gap    float64
}

func (g Legend) Render(left, top, size float64) svg.Element {
	var grp svg.Group
	grp.Class = []string{"legend"}
	grp.Transform = svg.Translate(left, top)
	gap := g.Gap
	if gap <= 0 {
		gap = DefaultSize * 1.6
	}
	for i, it := range g.Items {
		var row svg.Group
		row.Class = []string{"legend-item"}
		row.Transform = svg.Translate(0, float64(i)*gap)
		row.Append(GetSquare(svg.NewPos(0, 0), it.Color))

		tx := svg.NewText(escapeText(it.Label))
		tx.Pos = svg.NewPos(DefaultSize+6, DefaultSize-2)
		tx.Font = getFont(size)
		row.Append(tx.AsElement())

		grp.Append(row.AsElement())
	}
	return grp.AsElement()
}
