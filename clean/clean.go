// Package clean turns a loosely formatted spreadsheet export into a csv file
// with one name,speed,diet record per line that the chart accepts as is.
package clean

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/slices"

	"github.com/midbel/speedchart/animal"
	"github.com/midbel/speedchart/source"
)

var ErrEmpty = errors.New("no columns in input")

var (
	nameColumns  = []string{"name", "animal", "species"}
	speedColumns = []string{"speed", "velocity"}
	dietColumns  = []string{"diet"}
)

// Columns gives the position of the name, speed and diet columns in a header.
type Columns struct {
	Name  int
	Speed int
	Diet  int
}

// FindColumns looks for each column by exact name first and then by
// substring, ignoring case. A column not found defaults to the first, second
// and third column of the header, or to the first one when the header is too
// short.
func FindColumns(header []string) (Columns, error) {
	if len(header) == 0 {
		return Columns{}, ErrEmpty
	}
	header = source.Header(header)
	fallback := func(x int) int {
		if x < len(header) {
			return x
		}
		return 0
	}
	cs := Columns{
		Name:  findColumn(header, nameColumns),
		Speed: findColumn(header, speedColumns),
		Diet:  findColumn(header, dietColumns),
	}
	if cs.Name < 0 {
		cs.Name = fallback(0)
	}
	if cs.Speed < 0 {
		cs.Speed = fallback(1)
	}
	if cs.Diet < 0 {
		cs.Diet = fallback(2)
	}
	return cs, nil
}

func findColumn(header, names []string) int {
	return slices.Index(header, func(col string) bool {
		return slices.Some(names, func(n string) bool {
			return col == n || strings.Contains(col, n)
		})
	})
}

// Report summarizes a cleaning run.
type Report struct {
	Columns Columns
	Rows    int
	Kept    int
	Dropped map[string]int
}

func (r Report) String() string {
	return fmt.Sprintf("%d rows read, %d kept, %d dropped", r.Rows, r.Kept, r.Rows-r.Kept)
}

// Record is a cleaned row.
type Record struct {
	Name  string
	Speed float64
	Diet  animal.Diet
}

func (r Record) Strings() []string {
	return []string{
		r.Name,
		strconv.FormatFloat(r.Speed, 'f', 1, 64),
		string(r.Diet),
	}
}

const (
	reasonMissing = "missing"
	reasonSpeed   = "speed"
	reasonDiet    = "diet"
)

// Records cleans every row read from r.
func Records(r io.Reader) ([]Record, Report, error) {
	var (
		rs  = csv.NewReader(r)
		rep = Report{
			Dropped: make(map[string]int),
		}
	)
	rs.FieldsPerRecord = -1

	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmpty
		}
		return nil, rep, err
	}
	if rep.Columns, err = FindColumns(header); err != nil {
		return nil, rep, err
	}

	var list []Record
	for {
		row, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rep, err
		}
		rep.Rows++

		rec, reason := cleanRow(row, rep.Columns)
		if reason != "" {
			rep.Dropped[reason]++
			continue
		}
		rep.Kept++
		list = append(list, rec)
	}
	return list, rep, nil
}

// Clean reads a messy csv document from r and writes its cleaned version to w
// with a name,speed,diet header.
func Clean(r io.Reader, w io.Writer) (Report, error) {
	list, rep, err := Records(r)
	if err != nil {
		return rep, err
	}
	ws := csv.NewWriter(w)
	if err := ws.Write([]string{animal.ColName, animal.ColSpeed, animal.ColDiet}); err != nil {
		return rep, err
	}
	for _, rec := range list {
		if err := ws.Write(rec.Strings()); err != nil {
			return rep, err
		}
	}
	ws.Flush()
	return rep, ws.Error()
}

func cleanRow(row []string, cs Columns) (Record, string) {
	var (
		name  = cell(row, cs.Name)
		speed = cell(row, cs.Speed)
		diet  = cell(row, cs.Diet)
	)
	if missing(name) || missing(speed) || missing(diet) {
		return Record{}, reasonMissing
	}
	var (
		rec Record
		ok  bool
	)
	rec.Name = name
	if rec.Speed, ok = ParseSpeed(speed); !ok {
		return rec, reasonSpeed
	}
	if rec.Diet, ok = StandardizeDiet(diet); !ok {
		return rec, reasonDiet
	}
	return rec, ""
}

func cell(row []string, x int) string {
	if x < 0 || x >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[x])
}

func missing(str string) bool {
	return str == "" || strings.EqualFold(str, "nan")
}
