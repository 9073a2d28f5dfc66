package clean

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/midbel/speedchart/animal"
)

var (
	units  = regexp.MustCompile(`(?i)\s*(km/h|kmh|kph|mph)\s*`)
	ranges = regexp.MustCompile(`^(.+?)\s*(?:-|–|—|\bto\b)\s*(.+)$`)
	digits = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	number = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

var diets = []struct {
	diet animal.Diet
	re   *regexp.Regexp
}{
	{diet: animal.Carnivore, re: regexp.MustCompile(`carnivor|meat|predator|hunt`)},
	{diet: animal.Herbivore, re: regexp.MustCompile(`herbivor|plant|vegetation|grazer`)},
	{diet: animal.Omnivore, re: regexp.MustCompile(`omnivor|both|mixed|varied`)},
}

// ParseSpeed reads a speed written as a number, a number in words or a range
// of those, with an optional unit. A range gives its midpoint. The result
// is rounded to one decimal.
func ParseSpeed(str string) (float64, bool) {
	str = strings.ToLower(strings.TrimSpace(str))
	str = strings.TrimSpace(units.ReplaceAllString(str, " "))
	if str == "" {
		return 0, false
	}
	if f, ok := parseValue(str); ok {
		return roundSpeed(f), true
	}
	if m := ranges.FindStringSubmatch(str); m != nil {
		lo, ok1 := parseValue(m[1])
		hi, ok2 := parseValue(m[2])
		if ok1 && ok2 {
			return roundSpeed((lo + hi) / 2), true
		}
	}
	if m := number.FindString(str); m != "" {
		f, err := strconv.ParseFloat(m, 64)
		return roundSpeed(f), err == nil
	}
	f, ok := WordsToNumber(str)
	return roundSpeed(f), ok
}

func parseValue(str string) (float64, bool) {
	str = strings.TrimSpace(str)
	if digits.MatchString(str) {
		f, err := strconv.ParseFloat(str, 64)
		return f, err == nil
	}
	return WordsToNumber(str)
}

func roundSpeed(f float64) float64 {
	return math.Round(f*10) / 10
}

// StandardizeDiet maps a free text diet onto one of the known diets by
// keyword. Carnivore keywords are checked first, omnivore ones last.
func StandardizeDiet(str string) (animal.Diet, bool) {
	str = strings.ToLower(strings.TrimSpace(str))
	for _, d := range diets {
		if d.re.MatchString(str) {
			return d.diet, true
		}
	}
	return "", false
}
