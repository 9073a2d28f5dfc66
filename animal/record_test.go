package animal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(name, speed, diet string) RawRow {
	return NewRow(0, map[string]string{
		ColName:  name,
		ColSpeed: speed,
		ColDiet:  diet,
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		Name  string
		Row   RawRow
		Want  Record
		Error error
	}{
		{
			Name: "valid",
			Row:  row("Cheetah", "120", "carnivore"),
			Want: Record{Name: "Cheetah", Speed: 120, Diet: Carnivore},
		},
		{
			Name: "trimmed-and-lowered",
			Row:  row("  Brown Bear ", " 56.5 ", "  OmniVore "),
			Want: Record{Name: "Brown Bear", Speed: 56.5, Diet: Omnivore},
		},
		{
			Name:  "blank-name",
			Row:   row("   ", "10", "herbivore"),
			Error: ErrMissingName,
		},
		{
			Name:  "missing-columns",
			Row:   NewRow(1, map[string]string{}),
			Error: ErrMissingName,
		},
		{
			Name:  "not-a-number",
			Row:   row("Sloth", "slow", "herbivore"),
			Error: ErrInvalidSpeed,
		},
		{
			Name: "with-unit",
			Row:  row("Sloth", "0.2 km/h", "herbivore"),
			Want: Record{Name: "Sloth", Speed: 0.2, Diet: Herbivore},
		},
		{
			Name: "with-glued-unit",
			Row:  row("Pronghorn", "112mph", "herbivore"),
			Want: Record{Name: "Pronghorn", Speed: 112, Diet: Herbivore},
		},
		{
			Name: "leading-dot-and-exponent",
			Row:  row("Fly", ".5e1 m/s", "omnivore"),
			Want: Record{Name: "Fly", Speed: 5, Diet: Omnivore},
		},
		{
			Name:  "hex-reads-as-zero",
			Row:   row("Hex", "0x1p4", "carnivore"),
			Error: ErrInvalidSpeed,
		},
		{
			Name:  "unit-first",
			Row:   row("Sloth", "km/h 0.2", "herbivore"),
			Error: ErrInvalidSpeed,
		},
		{
			Name:  "zero-speed",
			Row:   row("Rock", "0", "herbivore"),
			Error: ErrInvalidSpeed,
		},
		{
			Name:  "negative-speed",
			Row:   row("Snail", "-1", "herbivore"),
			Error: ErrInvalidSpeed,
		},
		{
			Name:  "infinite-speed",
			Row:   row("Light", "+Inf", "omnivore"),
			Error: ErrInvalidSpeed,
		},
		{
			Name:  "nan-speed",
			Row:   row("Ghost", "NaN", "omnivore"),
			Error: ErrInvalidSpeed,
		},
		{
			Name:  "unknown-diet",
			Row:   row("Koala", "30", "eucalyptus"),
			Error: ErrInvalidDiet,
		},
		{
			Name:  "name-checked-first",
			Row:   row("", "abc", "xyz"),
			Error: ErrMissingName,
		},
		{
			Name:  "speed-checked-before-diet",
			Row:   row("Yeti", "abc", "xyz"),
			Error: ErrInvalidSpeed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got, err := Validate(tt.Row)
			if tt.Error != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.Error), "want %v, got %v", tt.Error, err)
				var rej Rejection
				assert.True(t, errors.As(err, &rej))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestRejectionField(t *testing.T) {
	_, err := Validate(NewRow(7, map[string]string{ColName: "Emu", ColSpeed: "48"}))
	var rej Rejection
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, 7, rej.Line)
	assert.Equal(t, ColDiet, rej.Field)
	assert.Contains(t, rej.Error(), "line 7")
}

func TestDietLabel(t *testing.T) {
	assert.Equal(t, []Diet{Carnivore, Herbivore, Omnivore}, Diets())
	assert.Equal(t, "Herbivore", Herbivore.Label())
	assert.Equal(t, "other", Diet("other").Label())
}
