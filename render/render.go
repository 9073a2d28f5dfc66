// Package render draws the speed chart, or a placeholder message, into a
// Surface.
package render

import (
	"errors"
	"fmt"
	"strings"

	charts "github.com/midbel/speedchart"
	"github.com/midbel/speedchart/animal"
	"github.com/midbel/speedchart/layout"
)

const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatText = "text"
)

var ErrFormat = errors.New("unsupported format")

// Renderer turns a dataset and its layout into a document and hands it to
// the surface in a single Replace call.
type Renderer interface {
	Render(Surface, animal.Dataset, layout.Layout) error
	Placeholder(Surface, string) error
}

// Options holds the texts drawn around the plot area.
type Options struct {
	Title  string
	XLabel string
	YLabel string
}

func DefaultOptions() Options {
	return Options{
		XLabel: "Animal",
		YLabel: "Speed (km/h)",
	}
}

func (o Options) merge(other Options) Options {
	if other.Title != "" {
		o.Title = other.Title
	}
	if other.XLabel != "" {
		o.XLabel = other.XLabel
	}
	if other.YLabel != "" {
		o.YLabel = other.YLabel
	}
	return o
}

// New returns the renderer registered for format.
func New(format string, opts Options) (Renderer, error) {
	opts = DefaultOptions().merge(opts)
	switch strings.ToLower(format) {
	case FormatSVG, "":
		return NewSVG(opts), nil
	case FormatPNG:
		return NewPNG(opts), nil
	case FormatText:
		return NewText(opts), nil
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrFormat)
	}
}

// ContentType returns the media type of the documents produced for format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case FormatPNG:
		return "image/png"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "image/svg+xml"
	}
}

func legendItems(lay layout.Layout) []charts.LegendItem {
	var list []charts.LegendItem
	for _, d := range animal.Diets() {
		it := charts.LegendItem{
			Label: d.Label(),
			Color: lay.Color(d),
		}
		list = append(list, it)
	}
	return list
}

func barTitle(r animal.Record) string {
	return fmt.Sprintf("%s: %s km/h", r.Name, formatSpeed(r.Speed))
}

func formatSpeed(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", f), "0"), ".")
}
