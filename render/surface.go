package render

import (
	"io"
	"sync"

	"github.com/midbel/speedchart/layout"
)

// Surface is the drawing target of a Renderer. Replace swaps the whole
// content of the surface for doc.
type Surface interface {
	Size() layout.Size
	Replace(doc []byte)
}

// Canvas is an in-memory Surface safe for concurrent use.
type Canvas struct {
	mu       sync.RWMutex
	size     layout.Size
	content  []byte
	replaced int
}

func NewCanvas(w, h float64) *Canvas {
	return &Canvas{
		size: layout.NewSize(w, h),
	}
}

func (c *Canvas) Size() layout.Size {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Resize changes the size reported by the canvas. The content is left as is
// until the next call to Replace.
func (c *Canvas) Resize(w, h float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.size = layout.NewSize(w, h)
}

func (c *Canvas) Replace(doc []byte) {
	buf := make([]byte, len(doc))
	copy(buf, doc)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = buf
	c.replaced++
}

// Bytes returns a copy of the current content.
func (c *Canvas) Bytes() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	buf := make([]byte, len(c.content))
	copy(buf, c.content)
	return buf
}

func (c *Canvas) String() string {
	return string(c.Bytes())
}

// Replaced returns the number of times the content was replaced.
func (c *Canvas) Replaced() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.replaced
}

func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Bytes())
	return int64(n), err
}
