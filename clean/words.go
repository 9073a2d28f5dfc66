package clean

import (
	"strings"
	"unicode"
)

var smallNumbers = map[string]float64{
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
	"thirty":    30,
	"forty":     40,
	"fifty":     50,
	"sixty":     60,
	"seventy":   70,
	"eighty":    80,
	"ninety":    90,
}

var magnitudes = map[string]float64{
	"thousand": 1e3,
	"million":  1e6,
	"billion":  1e9,
}

// WordsToNumber converts an english number written in words, like "one
// hundred and twenty" or "thirty-five point five", into its value. Any word
// that is not part of a number makes the conversion fail.
func WordsToNumber(str string) (float64, bool) {
	words := strings.FieldsFunc(strings.ToLower(str), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == ','
	})
	var (
		total   float64
		current float64
		decimal []string
		seen    bool
	)
	for i, w := range words {
		if w == "point" {
			decimal = words[i+1:]
			break
		}
		if v, ok := smallNumbers[w]; ok {
			current += v
			seen = true
			continue
		}
		switch w {
		case "and":
			continue
		case "hundred":
			if current == 0 {
				current = 1
			}
			current *= 100
			seen = true
			continue
		}
		if m, ok := magnitudes[w]; ok {
			if current == 0 {
				current = 1
			}
			total += current * m
			current = 0
			seen = true
			continue
		}
		return 0, false
	}
	if !seen {
		return 0, false
	}
	value := total + current
	if len(decimal) == 0 {
		return value, true
	}
	scale := 0.1
	for _, w := range decimal {
		v, ok := smallNumbers[w]
		if !ok || v > 9 {
			return 0, false
		}
		value += v * scale
		scale /= 10
	}
	return value, true
}
