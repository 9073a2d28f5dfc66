package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/midbel/speedchart/animal"
	"github.com/midbel/speedchart/layout"
)

// pngDPI makes one point of the plot one pixel of the image, so the image
// has the size of the surface.
const pngDPI = 72

// PNG draws the chart as a raster image with gonum/plot. Each record is its
// own bar chart placed at the index of the record so that every bar gets the
// colour of its diet.
type PNG struct {
	Options
}

func NewPNG(opts Options) PNG {
	return PNG{
		Options: opts,
	}
}

func (r PNG) Render(surface Surface, ds animal.Dataset, lay layout.Layout) error {
	p := r.getPlot()

	var (
		names = make([]string, 0, ds.Len())
		width = vg.Points(lay.X.Bandwidth())
	)
	for i, rec := range ds.Records() {
		names = append(names, layout.FormatTick(rec.Name))

		bar, err := plotter.NewBarChart(plotter.Values{rec.Speed}, width)
		if err != nil {
			return err
		}
		bar.XMin = float64(i)
		bar.Color = parseHex(lay.Color(rec.Diet))
		bar.LineStyle.Width = 0
		p.Add(bar)
	}
	for _, sw := range legendSwatches(lay) {
		p.Legend.Add(sw.Label, sw)
	}
	if len(names) > 0 {
		p.NominalX(names...)
	}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight

	lo, hi := lay.Domain()
	p.Y.Min = lo
	p.Y.Max = hi

	return r.writePlot(surface, p, lay.Width, lay.Height)
}

func (r PNG) Placeholder(surface Surface, msg string) error {
	p := r.getPlot()
	p.Title.Text = msg
	p.HideAxes()

	size := surface.Size().Clamp()
	return r.writePlot(surface, p, size.Width, size.Height)
}

func (r PNG) getPlot() *plot.Plot {
	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = r.XLabel
	p.Y.Label.Text = r.YLabel
	p.Legend.Top = true
	return p
}

func (r PNG) writePlot(surface Surface, p *plot.Plot, w, h float64) error {
	c := vgimg.NewWith(vgimg.UseWH(vg.Points(w), vg.Points(h)), vgimg.UseDPI(pngDPI))
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return err
	}
	surface.Replace(buf.Bytes())
	return nil
}

// dietSwatch is a legend entry filled with the colour of a diet.
type dietSwatch struct {
	Label string
	Color color.Color
}

func legendSwatches(lay layout.Layout) []dietSwatch {
	var list []dietSwatch
	for _, it := range legendItems(lay) {
		list = append(list, dietSwatch{Label: it.Label, Color: parseHex(it.Color)})
	}
	return list
}

func (s dietSwatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Color, c.ClipPolygonXY(pts))
}

// parseHex converts a #rrggbb string into a colour. Anything else is black.
func parseHex(str string) color.Color {
	var c color.RGBA
	if _, err := fmt.Sscanf(str, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.Black
	}
	c.A = 0xff
	return c
}
