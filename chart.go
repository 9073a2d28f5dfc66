package charts

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Data interface {
	Render() svg.Element
}

// Chart assembles a complete svg document: plot area, axis, axis titles and
// legend. Every call to Render produces a new document.
type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding
	Style

	Left   Axis
	Bottom Axis

	XLabel string
	YLabel string

	Legend Legend
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Chart) Render(w io.Writer, set ...Data) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true

	for _, s := range set {
		ar := c.getArea()
		ar.Append(s.Render())
		el.Append(ar.AsElement())
	}
	el.Append(c.drawAxis())
	el.Append(c.drawLabels())
	if lg := c.drawLegend(); lg != nil {
		el.Append(lg)
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

// Message renders a document made only of str centered in the chart.
func (c Chart) Message(w io.Writer, str string) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true

	txt := c.getText(str, c.Width/2, c.Height/2, c.Style.LabelSize)
	txt.Baseline = "middle"
	txt.Class = []string{"message"}
	el.Append(txt.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

func (c Chart) drawLabels() svg.Element {
	var g svg.Group
	g.Class = []string{"labels"}
	if c.Title != "" {
		txt := c.getText(c.Title, c.Width/2, c.Padding.Top/2, c.Style.TitleSize)
		txt.Class = []string{"title"}
		g.Append(txt.AsElement())
	}
	if c.XLabel != "" {
		txt := c.getText(c.XLabel, c.Width/2, c.Height-15, c.Style.LabelSize)
		txt.Class = []string{"label", "label-x"}
		g.Append(txt.AsElement())
	}
	if c.YLabel != "" {
		txt := c.getText(c.YLabel, -c.Height/2, 20, c.Style.LabelSize)
		txt.Class = []string{"label", "label-y"}
		txt.Transform.Rotate(-90, 0, 0)
		g.Append(txt.AsElement())
	}
	return g.AsElement()
}

func (c Chart) getText(str string, x, y, size float64) svg.Text {
	txt := svg.NewText(escapeText(str))
	txt.Pos = svg.NewPos(x, y)
	txt.Font = getFont(size)
	txt.Anchor = "middle"
	return txt
}

func (c Chart) drawLegend() svg.Element {
	if len(c.Legend.Items) == 0 {
		return nil
	}
	left := c.Width - c.Padding.Right + c.Legend.Offset
	return c.Legend.Render(left, c.Padding.Top, c.Style.LegendSize)
}

func (c Chart) drawAxis() svg.Element {
	var g svg.Group
	g.Id = "axis"
	if c.Left != nil {
		el := c.Left.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Bottom != nil {
		el := c.Bottom.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
		g.Append(el)
	}
	return g.AsElement()
}
