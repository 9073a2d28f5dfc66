package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/midbel/speedchart/animal"
	"github.com/midbel/speedchart/layout"
)

const (
	cellWidth  = 8
	labelWidth = 13
	speedWidth = 8
	barGlyph   = "█"
	swatch     = "■"
)

// Text draws the chart as horizontal bars for a terminal. One column is
// cellWidth pixels of the layout.
type Text struct {
	Options

	title  lipgloss.Style
	label  lipgloss.Style
	legend lipgloss.Style
}

func NewText(opts Options) Text {
	return Text{
		Options: opts,
		title:   lipgloss.NewStyle().Bold(true).MarginBottom(1),
		label:   lipgloss.NewStyle().Width(labelWidth),
		legend:  lipgloss.NewStyle().MarginTop(1),
	}
}

func (r Text) Render(surface Surface, ds animal.Dataset, lay layout.Layout) error {
	var (
		lines []string
		_, hi = lay.Domain()
		cols  = r.columns(lay.Width)
	)
	if str := r.heading(); str != "" {
		lines = append(lines, r.title.Render(str))
	}
	for _, rec := range ds.Records() {
		n := 0
		if hi > 0 {
			n = int(math.Round(rec.Speed / hi * float64(cols)))
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(lay.Color(rec.Diet)))
		row := lipgloss.JoinHorizontal(
			lipgloss.Top,
			r.label.Render(layout.FormatTick(rec.Name)),
			bar.Render(strings.Repeat(barGlyph, n)),
			" ",
			formatSpeed(rec.Speed),
		)
		lines = append(lines, row)
	}
	lines = append(lines, r.legend.Render(r.drawLegend(lay)))

	surface.Replace([]byte(lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"))
	return nil
}

func (r Text) Placeholder(surface Surface, msg string) error {
	surface.Replace([]byte(msg + "\n"))
	return nil
}

func (r Text) heading() string {
	switch {
	case r.Title != "" && r.YLabel != "":
		return fmt.Sprintf("%s - %s", r.Title, r.YLabel)
	case r.Title != "":
		return r.Title
	default:
		return r.YLabel
	}
}

func (r Text) columns(width float64) int {
	n := int(width/cellWidth) - labelWidth - speedWidth
	return max(n, 10)
}

func (r Text) drawLegend(lay layout.Layout) string {
	var list []string
	for _, it := range legendItems(lay) {
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render(swatch)
		list = append(list, sw+" "+it.Label)
	}
	return strings.Join(list, "  ")
}
