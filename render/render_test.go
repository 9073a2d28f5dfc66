package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/speedchart/animal"
	"github.com/midbel/speedchart/layout"
)

func sample() animal.Dataset {
	cells := func(name, speed, diet string) map[string]string {
		return map[string]string{
			animal.ColName:  name,
			animal.ColSpeed: speed,
			animal.ColDiet:  diet,
		}
	}
	rows := []animal.RawRow{
		animal.NewRow(1, cells("Cheetah", "120", "carnivore")),
		animal.NewRow(2, cells("Pronghorn", "88", "herbivore")),
		animal.NewRow(3, cells("Human", "45", "omnivore")),
		animal.NewRow(4, cells("Peregrine Falcon & Co", "389", "carnivore")),
	}
	return animal.Build(rows)
}

func TestSVGRender(t *testing.T) {
	var (
		ds     = sample()
		canvas = NewCanvas(800, 500)
		lay    = layout.Compute(ds, canvas.Size())
		rdr    = NewSVG(DefaultOptions())
	)
	require.NoError(t, rdr.Render(canvas, ds, lay))
	assert.Equal(t, 1, canvas.Replaced())

	counts := countElements(t, canvas.Bytes())
	assert.Equal(t, ds.Len(), counts["rect.bar"])
	assert.Equal(t, 3, counts["rect.swatch"])
	assert.Equal(t, 3, counts["g.legend-item"])
	assert.Equal(t, 2, counts["line.domain"])
	assert.Equal(t, 1, counts["g.axis-category"])
	assert.Equal(t, 1, counts["g.axis-number"])
	assert.Equal(t, 1, counts["text.label-x"])
	assert.Equal(t, 1, counts["text.label-y"])
	assert.Zero(t, counts["text.title"])

	doc := canvas.String()
	assert.Contains(t, doc, "Animal")
	assert.Contains(t, doc, "Speed (km/h)")
	assert.Contains(t, doc, "Peregrine …")
	assert.Contains(t, doc, "#e74c3c")
	assert.Contains(t, doc, "#27ae60")
	assert.Contains(t, doc, "#f39c12")
	assert.Contains(t, doc, "rotate(-45")
	assert.NotContains(t, doc, "& Co")
}

func TestSVGRenderIdempotent(t *testing.T) {
	var (
		ds     = sample()
		canvas = NewCanvas(800, 500)
		lay    = layout.Compute(ds, canvas.Size())
		rdr    = NewSVG(DefaultOptions())
	)
	require.NoError(t, rdr.Render(canvas, ds, lay))
	first := canvas.Bytes()
	require.NoError(t, rdr.Render(canvas, ds, lay))
	second := canvas.Bytes()

	assert.Equal(t, countElements(t, first), countElements(t, second))
	assert.Equal(t, first, second)
	assert.Equal(t, 2, canvas.Replaced())
}

func TestSVGRenderResize(t *testing.T) {
	var (
		ds     = sample()
		canvas = NewCanvas(600, 400)
		rdr    = NewSVG(DefaultOptions())
	)
	require.NoError(t, rdr.Render(canvas, ds, layout.Compute(ds, canvas.Size())))
	small := canvas.Bytes()

	canvas.Resize(1200, 900)
	require.NoError(t, rdr.Render(canvas, ds, layout.Compute(ds, canvas.Size())))
	large := canvas.Bytes()

	assert.NotEqual(t, small, large)
	assert.Equal(t, countElements(t, small), countElements(t, large))
	assert.Contains(t, string(large), `width="1200"`)
}

func TestSVGPlaceholder(t *testing.T) {
	var (
		canvas = NewCanvas(100, 100)
		rdr    = NewSVG(DefaultOptions())
	)
	require.NoError(t, rdr.Render(canvas, sample(), layout.Compute(sample(), canvas.Size())))
	require.NoError(t, rdr.Placeholder(canvas, "Loading chart data..."))

	counts := countElements(t, canvas.Bytes())
	assert.Equal(t, 1, counts["text.message"])
	assert.Zero(t, counts["rect.bar"])
	assert.Zero(t, counts["g.legend"])
	assert.Contains(t, canvas.String(), "Loading chart data...")
}

func TestPNGRender(t *testing.T) {
	var (
		ds     = sample()
		canvas = NewCanvas(640, 480)
		rdr    = NewPNG(DefaultOptions())
	)
	require.NoError(t, rdr.Render(canvas, ds, layout.Compute(ds, canvas.Size())))
	assert.True(t, bytes.HasPrefix(canvas.Bytes(), []byte("\x89PNG")))
	assertImageSize(t, canvas.Bytes(), 640, 480)

	require.NoError(t, rdr.Placeholder(canvas, "Failed to load data"))
	assert.True(t, bytes.HasPrefix(canvas.Bytes(), []byte("\x89PNG")))
	assertImageSize(t, canvas.Bytes(), 640, 480)
	assert.Equal(t, 2, canvas.Replaced())
}

func TestPNGRenderClampedSize(t *testing.T) {
	var (
		ds     = sample()
		canvas = NewCanvas(100, 100)
		rdr    = NewPNG(DefaultOptions())
	)
	require.NoError(t, rdr.Render(canvas, ds, layout.Compute(ds, canvas.Size())))
	assertImageSize(t, canvas.Bytes(), layout.MinWidth, layout.MinHeight)
}

func TestPNGLegendSingleDiet(t *testing.T) {
	ds := animal.Build([]animal.RawRow{
		animal.NewRow(1, map[string]string{
			animal.ColName:  "Cow",
			animal.ColSpeed: "40",
			animal.ColDiet:  "herbivore",
		}),
	})
	var (
		lay = layout.Compute(ds, layout.NewSize(600, 400))
		got = legendSwatches(lay)
	)
	require.Len(t, got, 3)
	for i, d := range animal.Diets() {
		assert.Equal(t, d.Label(), got[i].Label)
		assert.Equal(t, parseHex(layout.DietColors[d]), got[i].Color)
	}

	canvas := NewCanvas(600, 400)
	require.NoError(t, NewPNG(DefaultOptions()).Render(canvas, ds, lay))
	assertImageSize(t, canvas.Bytes(), 600, 400)
}

func assertImageSize(t *testing.T, doc []byte, width, height int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, width, cfg.Width)
	assert.Equal(t, height, cfg.Height)
}

func TestTextRender(t *testing.T) {
	var (
		ds     = sample()
		canvas = NewCanvas(800, 500)
		rdr    = NewText(DefaultOptions())
	)
	require.NoError(t, rdr.Render(canvas, ds, layout.Compute(ds, canvas.Size())))
	out := canvas.String()
	for _, name := range []string{"Cheetah", "Pronghorn", "Human", "Peregrine …"} {
		assert.Contains(t, out, name)
	}
	for _, label := range []string{"Carnivore", "Herbivore", "Omnivore"} {
		assert.Contains(t, out, label)
	}
	assert.Less(t, strings.Index(out, "Peregrine"), strings.Index(out, "Cheetah"))

	require.NoError(t, rdr.Placeholder(canvas, "No valid data"))
	assert.Equal(t, "No valid data\n", canvas.String())
}

func TestNew(t *testing.T) {
	for _, f := range []string{FormatSVG, FormatPNG, FormatText, "", "SVG"} {
		r, err := New(f, Options{})
		require.NoError(t, err, f)
		assert.NotNil(t, r)
	}
	_, err := New("gif", Options{})
	assert.ErrorIs(t, err, ErrFormat)

	assert.Equal(t, "image/png", ContentType(FormatPNG))
	assert.Equal(t, "image/svg+xml", ContentType(FormatSVG))
}

func TestCanvasConcurrent(t *testing.T) {
	var (
		ds     = sample()
		canvas = NewCanvas(800, 500)
		rdr    = NewSVG(DefaultOptions())
		wg     sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = rdr.Render(canvas, ds, layout.Compute(ds, canvas.Size()))
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, canvas.Replaced())
	assert.Equal(t, ds.Len(), countElements(t, canvas.Bytes())["rect.bar"])
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "120", formatSpeed(120))
	assert.Equal(t, "56.5", formatSpeed(56.5))
	assert.Equal(t, "0.2", formatSpeed(0.2))
}

func countElements(t *testing.T, doc []byte) map[string]int {
	t.Helper()
	var (
		dec    = xml.NewDecoder(bytes.NewReader(doc))
		counts = make(map[string]int)
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		counts[el.Name.Local]++
		for _, a := range el.Attr {
			if a.Name.Local != "class" {
				continue
			}
			for _, c := range strings.Fields(a.Value) {
				counts[el.Name.Local+"."+c]++
			}
		}
	}
	return counts
}
