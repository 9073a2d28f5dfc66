// Package layout derives the geometry of the speed chart from a dataset and
// the size of the surface it is drawn into.
package layout

import (
	"unicode/utf8"

	charts "github.com/midbel/speedchart"
	"github.com/midbel/speedchart/animal"
)

const (
	MinWidth  = 600
	MinHeight = 400

	// Headroom is the factor applied to the fastest speed to get the top of
	// the value domain.
	Headroom = 1.05
	// Padding is the band padding of the category scale.
	Padding = 0.2
	// Ticks is the number of ticks requested on the value axis.
	Ticks = 10

	maxLabel  = 12
	keepLabel = 10
	ellipsis  = "…"
)

var Margins = charts.Padding{
	Top:    70,
	Right:  140,
	Bottom: 100,
	Left:   90,
}

var DietColors = map[animal.Diet]string{
	animal.Carnivore: "#e74c3c",
	animal.Herbivore: "#27ae60",
	animal.Omnivore:  "#f39c12",
}

type Size struct {
	Width  float64
	Height float64
}

func NewSize(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

// Clamp returns the size raised to the minimum size of the chart.
func (s Size) Clamp() Size {
	if s.Width < MinWidth {
		s.Width = MinWidth
	}
	if s.Height < MinHeight {
		s.Height = MinHeight
	}
	return s
}

type Layout struct {
	Width       float64
	Height      float64
	ChartWidth  float64
	ChartHeight float64
	Margins     charts.Padding

	X      charts.Band
	Y      charts.Scaler[float64]
	Colors charts.Ordinal

	max float64
}

// Compute returns the layout of ds on a surface of the given size. It has no
// side effects and the same inputs always give the same layout.
func Compute(ds animal.Dataset, surface Size) Layout {
	surface = surface.Clamp()
	lay := Layout{
		Width:   surface.Width,
		Height:  surface.Height,
		Margins: Margins,
		max:     ds.MaxSpeed() * Headroom,
	}
	lay.ChartWidth = lay.Width - lay.Margins.Horizontal()
	lay.ChartHeight = lay.Height - lay.Margins.Vertical()

	lay.X = charts.BandScaler(ds.Names(), charts.NewRange(0, lay.ChartWidth), Padding)
	lay.Y = charts.NumberScaler(charts.NumberDomain(0, lay.max), charts.NewRange(lay.ChartHeight, 0))
	lay.Colors = ColorScale()
	return lay
}

// ColorScale returns the fixed mapping between diets and colors.
func ColorScale() charts.Ordinal {
	var (
		keys   []string
		colors charts.Palette
	)
	for _, d := range animal.Diets() {
		keys = append(keys, string(d))
		colors = append(colors, DietColors[d])
	}
	return charts.OrdinalScale(keys, colors)
}

// Domain returns the bounds of the value domain.
func (y Layout) Domain() (float64, float64) {
	return 0, y.max
}

func (y Layout) Color(d animal.Diet) string {
	return y.Colors.Color(string(d))
}

// Bar returns the position and dimension of the bar of r, relative to the
// top left corner of the plot area.
func (y Layout) Bar(r animal.Record) (x, top, width, height float64) {
	x = y.X.Scale(r.Name)
	top = y.Y.Scale(r.Speed)
	return x, top, y.X.Bandwidth(), y.ChartHeight - top
}

// ValueTicks returns the ticks of the value axis and their formatter.
func (y Layout) ValueTicks() ([]float64, func(float64) string) {
	lo, hi := y.Domain()
	return charts.Ticks(lo, hi, Ticks), charts.TickFormat(lo, hi, Ticks)
}

// FormatTick shortens labels longer than 12 characters to their first 10
// characters followed by an ellipsis.
func FormatTick(label string) string {
	if utf8.RuneCountInString(label) <= maxLabel {
		return label
	}
	var (
		n int
		i int
	)
	for i = range label {
		if n == keepLabel {
			break
		}
		n++
	}
	return label[:i] + ellipsis
}
