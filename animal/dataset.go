package animal

import (
	"errors"
	"sort"

	"github.com/midbel/slices"
)

// Dataset is the working set of the chart. It is built in full by Build and
// never modified afterwards.
type Dataset struct {
	records  []Record
	rejected []Rejection
	total    int
}

// Build validates every row, keeps the valid ones sorted by decreasing speed
// (rows with equal speeds keep their input order) and truncates the result to
// Limit records.
func Build(rows []RawRow) Dataset {
	var ds Dataset
	for _, row := range rows {
		rec, err := Validate(row)
		if err != nil {
			var rej Rejection
			if errors.As(err, &rej) {
				ds.rejected = append(ds.rejected, rej)
			}
			continue
		}
		ds.records = append(ds.records, rec)
	}
	ds.total = len(ds.records)
	sort.SliceStable(ds.records, func(i, j int) bool {
		return ds.records[i].Speed > ds.records[j].Speed
	})
	if len(ds.records) > Limit {
		ds.records = ds.records[:Limit:Limit]
	}
	return ds
}

// Records returns a copy of the records of the dataset.
func (d Dataset) Records() []Record {
	list := make([]Record, len(d.records))
	copy(list, d.records)
	return list
}

func (d Dataset) Len() int {
	return len(d.records)
}

func (d Dataset) Empty() bool {
	return len(d.records) == 0
}

// Total returns the number of valid rows before truncation.
func (d Dataset) Total() int {
	return d.total
}

func (d Dataset) Rejected() []Rejection {
	list := make([]Rejection, len(d.rejected))
	copy(list, d.rejected)
	return list
}

// MaxSpeed returns the speed of the fastest record or 0 for an empty dataset.
func (d Dataset) MaxSpeed() float64 {
	return slices.Fst(d.records).Speed
}

func (d Dataset) Names() []string {
	list := make([]string, 0, len(d.records))
	for _, r := range d.records {
		list = append(list, r.Name)
	}
	return list
}

// Present returns the diets of the records, in display order, without
// duplicates.
func (d Dataset) Present() []Diet {
	return slices.Filter(Diets(), func(diet Diet) bool {
		return slices.Some(d.records, func(r Record) bool {
			return r.Diet == diet
		})
	})
}
