package charts

import (
	"github.com/midbel/svg"
)

const (
	FontSize    = 10.0
	tickSize    = 6.0
	tickPadding = 3.0
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(float64, float64, float64, float64) svg.Element
}

type NumberAxis struct {
	Orientation
	Ticks          int
	Scaler         Scaler[float64]
	Domain         []float64
	Format         func(float64) string
	WithInnerTicks bool
	WithLabelTicks bool
}

func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := getAxisGroup(left, top, "axis", "axis-number")
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	var (
		data   = a.Domain
		font   = getFont(FontSize)
		format = a.Format
	)
	if len(data) == 0 {
		data = a.Scaler.Values(a.Ticks)
	}
	if format == nil {
		format = func(f float64) string {
			return formatFixed(f, 0)
		}
	}
	for _, f := range data {
		var (
			pos = a.Scaler.Scale(f)
			grp = getAxisGroup(pos, 0, "tick")
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, 0, tickSize)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(f), 0, font)
			grp.Append(text.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

type CategoryAxis struct {
	Orientation
	Rotate         float64
	Scaler         Band
	Domain         []string
	Format         func(string) string
	WithInnerTicks bool
}

func (a CategoryAxis) Render(length, size, left, top float64) svg.Element {
	g := getAxisGroup(left, top, "axis", "axis-category")
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	var (
		align  = a.Scaler.Bandwidth() / 2
		font   = getFont(FontSize)
		data   = a.Domain
		format = a.Format
	)
	if len(data) == 0 {
		data = a.Scaler.Values(0)
	}
	if format == nil {
		format = func(s string) string {
			return s
		}
	}
	for _, s := range data {
		var (
			pos  = a.Scaler.Scale(s)
			text = tickText(a.Orientation, format(s), align, font)
			grp  = getAxisGroup(pos, 0, "tick")
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, align, tickSize)
			grp.Append(tick.AsElement())
		}
		if a.Rotate != 0 {
			text.Anchor = "end"
			text.Transform.Rotate(a.Rotate, text.Pos.X, 0)
		}
		grp.Append(text.AsElement())
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func getAxisGroup(left, top float64, class ...string) svg.Group {
	var g svg.Group
	g.Class = class
	g.Transform = svg.Translate(left, top)
	return g
}

func getFont(size float64) svg.Font {
	font := svg.NewFont(size)
	font.Fill = currentColour
	return font
}

func domainLine(orient Orientation, length float64) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = svg.NewStroke(currentColour, 1)
	d.Class = []string{"domain"}
	return d
}

func lineTick(orient Orientation, offset, size float64) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = svg.NewStroke(currentColour, 1)
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		anchor = "middle"
		x, y   = offset, tickSize + tickPadding
		shift  = font.Size * 0.71
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		anchor = "end"
		x, y = -y, x
		shift = font.Size * 0.32
	case orient.Vertical() && orient.Reverse():
		anchor = "start"
		x, y = y, x
		shift = font.Size * 0.32
	case !orient.Vertical() && orient.Reverse():
		y = -y
		shift = 0
	default:
	}
	text := svg.NewText(escapeText(str))
	text.Pos = svg.NewPos(x, y)
	text.Shift = svg.NewPos(0, shift)
	text.Font = font
	text.Anchor = anchor
	return text
}
