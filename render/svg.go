package render

import (
	"bytes"

	charts "github.com/midbel/speedchart"
	"github.com/midbel/speedchart/animal"
	"github.com/midbel/speedchart/layout"
)

const (
	legendOffset = 10
	legendGap    = 22
	tickRotate   = -45
	barRadius    = 2
)

type SVG struct {
	Options
	Style charts.Style
}

func NewSVG(opts Options) SVG {
	return SVG{
		Options: opts,
		Style:   charts.DefaultStyle(),
	}
}

func (r SVG) Render(surface Surface, ds animal.Dataset, lay layout.Layout) error {
	var (
		ch        = r.getChart(lay.Width, lay.Height)
		ticks, fn = lay.ValueTicks()
	)
	ch.Left = charts.NumberAxis{
		Orientation:    charts.OrientLeft,
		Ticks:          layout.Ticks,
		Scaler:         lay.Y,
		Domain:         ticks,
		Format:         fn,
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
	ch.Bottom = charts.CategoryAxis{
		Orientation:    charts.OrientBottom,
		Rotate:         tickRotate,
		Scaler:         lay.X,
		Format:         layout.FormatTick,
		WithInnerTicks: true,
	}
	ch.Legend = charts.Legend{
		Items:  legendItems(lay),
		Offset: legendOffset,
		Gap:    legendGap,
	}

	serie := charts.Serie[string, float64]{
		Title: "speed",
		X:     lay.X,
		Y:     lay.Y,
		Renderer: charts.BarRenderer[string, float64]{
			Radius: barRadius,
		},
	}
	for _, rec := range ds.Records() {
		pt := charts.CategoryPoint(rec.Name, rec.Speed)
		pt.Color = lay.Color(rec.Diet)
		pt.Title = barTitle(rec)
		serie.Points = append(serie.Points, pt)
	}

	var buf bytes.Buffer
	if err := ch.Render(&buf, serie); err != nil {
		return err
	}
	surface.Replace(buf.Bytes())
	return nil
}

func (r SVG) Placeholder(surface Surface, msg string) error {
	size := surface.Size().Clamp()
	ch := r.getChart(size.Width, size.Height)

	var buf bytes.Buffer
	if err := ch.Message(&buf, msg); err != nil {
		return err
	}
	surface.Replace(buf.Bytes())
	return nil
}

func (r SVG) getChart(w, h float64) charts.Chart {
	return charts.Chart{
		Title:   r.Title,
		Width:   w,
		Height:  h,
		Padding: layout.Margins,
		Style:   r.Style,
		XLabel:  r.XLabel,
		YLabel:  r.YLabel,
	}
}
