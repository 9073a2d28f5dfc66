package animal

import (
	"fmt"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	rows := []RawRow{
		row("Human", "45", "omnivore"),
		row("Cheetah", "120", "carnivore"),
		row("", "80", "carnivore"),
		row("Pronghorn", "88", "herbivore"),
		row("Sloth", "abc", "herbivore"),
	}
	ds := Build(rows)

	require.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"Cheetah", "Pronghorn", "Human"}, ds.Names())
	assert.Equal(t, 120.0, ds.MaxSpeed())
	assert.Equal(t, 3, ds.Total())
	assert.Len(t, ds.Rejected(), 2)
	assert.Equal(t, []Diet{Carnivore, Herbivore, Omnivore}, ds.Present())
}

func TestBuildStable(t *testing.T) {
	rows := []RawRow{
		row("A", "10", "omnivore"),
		row("B", "20", "omnivore"),
		row("C", "10", "omnivore"),
		row("D", "20", "omnivore"),
		row("E", "10", "omnivore"),
	}
	ds := Build(rows)
	assert.Equal(t, []string{"B", "D", "A", "C", "E"}, ds.Names())
}

func TestBuildLimit(t *testing.T) {
	var rows []RawRow
	for i := 0; i < 40; i++ {
		speed := strconv.Itoa(1 + i%13)
		rows = append(rows, row(fmt.Sprintf("animal-%02d", i), speed, "herbivore"))
	}
	ds := Build(rows)

	require.Equal(t, Limit, ds.Len())
	assert.Equal(t, 40, ds.Total())
	recs := ds.Records()
	assert.True(t, sort.SliceIsSorted(recs, func(i, j int) bool {
		return recs[i].Speed > recs[j].Speed
	}))
	assert.Equal(t, 13.0, recs[0].Speed)
}

func TestBuildEmpty(t *testing.T) {
	ds := Build([]RawRow{row("x", "-3", "carnivore")})
	assert.True(t, ds.Empty())
	assert.Zero(t, ds.MaxSpeed())
	assert.Len(t, ds.Rejected(), 1)
	assert.Empty(t, ds.Present())

	assert.True(t, Build(nil).Empty())
}

func TestDatasetIsNotShared(t *testing.T) {
	ds := Build([]RawRow{row("Cheetah", "120", "carnivore")})
	recs := ds.Records()
	recs[0].Name = "changed"
	assert.Equal(t, []string{"Cheetah"}, ds.Names())
}

func TestBuildRetention(t *testing.T) {
	var (
		names  = []string{"Lion", "  ", ""}
		speeds = []string{"80", "0", "-2", "x", "1e2", ""}
		diets  = []string{"carnivore", " HERBIVORE", "omnivore ", "plant", ""}
	)
	for _, n := range names {
		for _, s := range speeds {
			for _, d := range diets {
				r := row(n, s, d)
				_, err := Validate(r)
				var (
					okName  = n == "Lion"
					okSpeed = s == "80" || s == "1e2"
					okDiet  = d != "plant" && d != ""
				)
				assert.Equal(t, okName && okSpeed && okDiet, err == nil, "name=%q speed=%q diet=%q", n, s, d)
				assert.Equal(t, err == nil, Build([]RawRow{r}).Len() == 1)
			}
		}
	}
}
