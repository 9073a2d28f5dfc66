package clean

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/speedchart/animal"
	"github.com/midbel/speedchart/source"
)

func TestFindColumns(t *testing.T) {
	tests := []struct {
		Header []string
		Want   Columns
	}{
		{
			Header: []string{"name", "speed", "diet"},
			Want:   Columns{Name: 0, Speed: 1, Diet: 2},
		},
		{
			Header: []string{"ID", " Diet Type", "Animal Name", "Top Speed (km/h)"},
			Want:   Columns{Name: 2, Speed: 3, Diet: 1},
		},
		{
			Header: []string{"Species", "Velocity"},
			Want:   Columns{Name: 0, Speed: 1, Diet: 0},
		},
		{
			Header: []string{"a", "b", "c", "d"},
			Want:   Columns{Name: 0, Speed: 1, Diet: 2},
		},
	}
	for _, tt := range tests {
		got, err := FindColumns(tt.Header)
		require.NoError(t, err)
		assert.Equal(t, tt.Want, got, "header: %v", tt.Header)
	}
	_, err := FindColumns(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		Input string
		Want  float64
		Ok    bool
	}{
		{Input: "120", Want: 120, Ok: true},
		{Input: " 56.54 ", Want: 56.5, Ok: true},
		{Input: "70 km/h", Want: 70, Ok: true},
		{Input: "45mph", Want: 45, Ok: true},
		{Input: "88 KMH", Want: 88, Ok: true},
		{Input: "30-40", Want: 35, Ok: true},
		{Input: "30 to 45", Want: 37.5, Ok: true},
		{Input: "30–50 km/h", Want: 40, Ok: true},
		{Input: "thirty", Want: 30, Ok: true},
		{Input: "thirty-five", Want: 35, Ok: true},
		{Input: "one hundred and twelve", Want: 112, Ok: true},
		{Input: "twenty to thirty", Want: 25, Ok: true},
		{Input: "about 64", Want: 64, Ok: true},
		{Input: "fast", Ok: false},
		{Input: "", Ok: false},
		{Input: "km/h", Ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseSpeed(tt.Input)
		require.Equal(t, tt.Ok, ok, "input: %q", tt.Input)
		if tt.Ok {
			assert.InDelta(t, tt.Want, got, 1e-9, "input: %q", tt.Input)
		}
	}
}

func TestWordsToNumber(t *testing.T) {
	tests := []struct {
		Input string
		Want  float64
		Ok    bool
	}{
		{Input: "seven", Want: 7, Ok: true},
		{Input: "Ninety Nine", Want: 99, Ok: true},
		{Input: "two thousand three hundred", Want: 2300, Ok: true},
		{Input: "hundred", Want: 100, Ok: true},
		{Input: "twelve point five", Want: 12.5, Ok: true},
		{Input: "zero", Want: 0, Ok: true},
		{Input: "and", Ok: false},
		{Input: "very fast", Ok: false},
		{Input: "ten point fifty", Ok: false},
	}
	for _, tt := range tests {
		got, ok := WordsToNumber(tt.Input)
		require.Equal(t, tt.Ok, ok, "input: %q", tt.Input)
		if tt.Ok {
			assert.InDelta(t, tt.Want, got, 1e-9, "input: %q", tt.Input)
		}
	}
}

func TestStandardizeDiet(t *testing.T) {
	tests := []struct {
		Input string
		Want  animal.Diet
		Ok    bool
	}{
		{Input: "Carnivore", Want: animal.Carnivore, Ok: true},
		{Input: "eats meat", Want: animal.Carnivore, Ok: true},
		{Input: "Apex predator", Want: animal.Carnivore, Ok: true},
		{Input: " HERBIVOROUS ", Want: animal.Herbivore, Ok: true},
		{Input: "plants", Want: animal.Herbivore, Ok: true},
		{Input: "grazer", Want: animal.Herbivore, Ok: true},
		{Input: "omnivore", Want: animal.Omnivore, Ok: true},
		{Input: "mixed", Want: animal.Omnivore, Ok: true},
		{Input: "both plants and meat", Want: animal.Carnivore, Ok: true},
		{Input: "insects", Ok: false},
		{Input: "", Ok: false},
	}
	for _, tt := range tests {
		got, ok := StandardizeDiet(tt.Input)
		assert.Equal(t, tt.Ok, ok, "input: %q", tt.Input)
		assert.Equal(t, tt.Want, got, "input: %q", tt.Input)
	}
}

const messy = `ID,Animal Name,Top Speed,Diet Type
1, Cheetah ,"110-120 km/h",Carnivore
2,Pronghorn,eighty eight,herbivorous
3,Human,45 km/h,Mixed
4,,70,carnivore
5,Unicorn,nan,herbivore
6,Snail,slow,herbivore
7,Koala,30,eucalyptus
8,Brown Bear,56.54,omnivore
`

func TestClean(t *testing.T) {
	var buf bytes.Buffer
	rep, err := Clean(strings.NewReader(messy), &buf)
	require.NoError(t, err)

	assert.Equal(t, 8, rep.Rows)
	assert.Equal(t, 4, rep.Kept)
	assert.Equal(t, 2, rep.Dropped[reasonMissing])
	assert.Equal(t, 1, rep.Dropped[reasonSpeed])
	assert.Equal(t, 1, rep.Dropped[reasonDiet])
	assert.Equal(t, "8 rows read, 4 kept, 4 dropped", rep.String())

	want := `name,speed,diet
Cheetah,115.0,carnivore
Pronghorn,88.0,herbivore
Human,45.0,omnivore
Brown Bear,56.5,omnivore
`
	assert.Equal(t, want, buf.String())

	rows, err := source.Decode(&buf)
	require.NoError(t, err)
	ds := animal.Build(rows)
	assert.Equal(t, 4, ds.Len())
	assert.Empty(t, ds.Rejected())
}

func TestCleanEmpty(t *testing.T) {
	var buf bytes.Buffer
	_, err := Clean(strings.NewReader(""), &buf)
	assert.ErrorIs(t, err, ErrEmpty)
}
