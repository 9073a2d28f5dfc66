// Package animal turns raw tabular rows into validated animal records and
// builds the bounded, sorted dataset the chart is drawn from.
package animal

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leading matches the decimal number a speed cell starts with. Whatever
// follows it, a unit for example, is ignored.
var leading = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Limit is the maximum number of records kept in a Dataset.
const Limit = 25

const (
	ColName  = "name"
	ColSpeed = "speed"
	ColDiet  = "diet"
)

var (
	ErrMissingName  = errors.New("missing name")
	ErrInvalidSpeed = errors.New("invalid speed")
	ErrInvalidDiet  = errors.New("invalid diet")
)

type Diet string

const (
	Carnivore Diet = "carnivore"
	Herbivore Diet = "herbivore"
	Omnivore  Diet = "omnivore"
)

// Diets returns all the diets in their display order.
func Diets() []Diet {
	return []Diet{Carnivore, Herbivore, Omnivore}
}

func ParseDiet(str string) (Diet, error) {
	d := Diet(strings.ToLower(strings.TrimSpace(str)))
	switch d {
	case Carnivore, Herbivore, Omnivore:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDiet, str)
	}
}

func (d Diet) Label() string {
	switch d {
	case Carnivore:
		return "Carnivore"
	case Herbivore:
		return "Herbivore"
	case Omnivore:
		return "Omnivore"
	default:
		return string(d)
	}
}

// RawRow is one row of the tabular source addressed by column name. Line is
// the position of the row among the data rows, starting at 1.
type RawRow struct {
	Line  int
	Cells map[string]string
}

func NewRow(line int, cells map[string]string) RawRow {
	return RawRow{
		Line:  line,
		Cells: cells,
	}
}

func (r RawRow) Get(col string) string {
	return r.Cells[col]
}

type Record struct {
	Name  string
	Speed float64
	Diet  Diet
}

// Rejection describes why a row did not make it into a Dataset.
type Rejection struct {
	Line  int
	Field string
	Err   error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("line %d: %s: %s", r.Line, r.Field, r.Err)
}

func (r Rejection) Unwrap() error {
	return r.Err
}

// Validate checks the name, speed and diet of row, in that order, and returns
// the record built from them. The returned error is a Rejection wrapping one
// of ErrMissingName, ErrInvalidSpeed or ErrInvalidDiet.
func Validate(row RawRow) (Record, error) {
	var rec Record

	rec.Name = strings.TrimSpace(row.Get(ColName))
	if rec.Name == "" {
		return rec, reject(row, ColName, ErrMissingName)
	}
	speed, err := parseSpeed(row.Get(ColSpeed))
	if err != nil {
		return rec, reject(row, ColSpeed, err)
	}
	rec.Speed = speed
	if rec.Diet, err = ParseDiet(row.Get(ColDiet)); err != nil {
		return rec, reject(row, ColDiet, err)
	}
	return rec, nil
}

func parseSpeed(str string) (float64, error) {
	str = strings.TrimSpace(str)
	num := leading.FindString(str)
	if num == "" {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSpeed, str)
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSpeed, str)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive number", ErrInvalidSpeed, str)
	}
	return f, nil
}

func reject(row RawRow, field string, err error) error {
	return Rejection{
		Line:  row.Line,
		Field: field,
		Err:   err,
	}
}
