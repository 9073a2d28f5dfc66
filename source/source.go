// Package source loads the tabular data of the chart from a reader, a file or
// an http location.
package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/midbel/speedchart/animal"
)

var (
	ErrNoHeader = errors.New("missing header row")
	ErrScheme   = errors.New("unsupported scheme")
	ErrStatus   = errors.New("request does not end with success result code")
)

type Source interface {
	Fetch(context.Context) ([]animal.RawRow, error)
}

// FetchError reports a failure to get or decode the rows of a source.
type FetchError struct {
	Op       string
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Location != "" {
		base += fmt.Sprintf(" (location=%s)", e.Location)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

type readerSource struct {
	name string
	r    io.Reader
}

// Reader returns a Source decoding the rows from r. name is only used to
// describe errors.
func Reader(name string, r io.Reader) Source {
	return readerSource{
		name: name,
		r:    r,
	}
}

func (s readerSource) Fetch(ctx context.Context) ([]animal.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := Decode(s.r)
	if err != nil {
		return nil, &FetchError{
			Op:       "source.decode",
			Location: s.name,
			Err:      err,
		}
	}
	return rows, nil
}

// Location reads the rows from a file (bare path or file:// url) or from an
// http(s) url.
type Location struct {
	URL    string
	Client *http.Client
}

func At(loc string) Location {
	return Location{
		URL:    loc,
		Client: http.DefaultClient,
	}
}

func (s Location) Fetch(ctx context.Context) ([]animal.RawRow, error) {
	r, err := s.open(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &FetchError{
			Op:       "source.open",
			Location: s.URL,
			Err:      err,
		}
	}
	defer r.Close()

	rows, err := Decode(r)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &FetchError{
			Op:       "source.decode",
			Location: s.URL,
			Err:      err,
		}
	}
	return rows, nil
}

func (s Location) open(ctx context.Context) (io.ReadCloser, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		client := s.Client
		if client == nil {
			client = http.DefaultClient
		}
		res, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			res.Body.Close()
			return nil, fmt.Errorf("%w (%s)", ErrStatus, res.Status)
		}
		return res.Body, nil
	case "", "file":
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := u.Path
		if u.Scheme == "" {
			path = s.URL
		}
		return os.Open(path)
	default:
		return nil, fmt.Errorf("%s: %w", u.Scheme, ErrScheme)
	}
}

// Decode reads a csv document with a header row. Cells are addressed by the
// trimmed, lower-cased header name they appear under.
func Decode(r io.Reader) ([]animal.RawRow, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, err
	}
	header = Header(header)

	var list []animal.RawRow
	for line := 1; ; line++ {
		fields, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		cells := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(fields) || name == "" {
				continue
			}
			if _, ok := cells[name]; ok {
				continue
			}
			cells[name] = fields[i]
		}
		list = append(list, animal.NewRow(line, cells))
	}
	return list, nil
}

// Header normalizes the names of a header row.
func Header(names []string) []string {
	list := make([]string, len(names))
	for i, n := range names {
		if i == 0 {
			n = strings.TrimPrefix(n, bom)
		}
		list[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return list
}

const bom = "\ufeff"
