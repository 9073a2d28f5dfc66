package charts

import (
	"math"
	"strconv"
	"strings"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns about count values between start and stop (inclusive) spaced
// by 1, 2 or 5 times a power of ten.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if i2 < i1 {
		return nil
	}
	list := make([]float64, 0, int(i2-i1)+1)
	for i := i1; i <= i2; i++ {
		if inc < 0 {
			list = append(list, i/-inc)
		} else {
			list = append(list, i*inc)
		}
	}
	if reverse {
		for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
			list[i], list[j] = list[j], list[i]
		}
	}
	return list
}

// TickStep returns the distance between two ticks returned by Ticks.
func TickStep(start, stop float64, count int) float64 {
	if count <= 0 || start == stop {
		return 0
	}
	if stop < start {
		start, stop = stop, start
	}
	_, _, inc := tickSpec(start, stop, float64(count))
	if inc < 0 {
		return 1 / -inc
	}
	return inc
}

func tickSpec(start, stop, count float64) (float64, float64, float64) {
	var (
		step   = (stop - start) / math.Max(0, count)
		power  = math.Floor(math.Log10(step))
		err    = step / math.Pow(10, power)
		factor = 1.0
	)
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	var i1, i2, inc float64
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = round(start * inc)
		i2 = round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = round(start / inc)
		i2 = round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && count >= 0.5 && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

func round(f float64) float64 {
	return math.Floor(f + 0.5)
}

// TickFormat returns the formatter matching the ticks produced by Ticks for
// the same arguments: fixed notation with as many decimals as the step needs
// and a comma between groups of thousands.
func TickFormat(start, stop float64, count int) func(float64) string {
	prec := 0
	if step := TickStep(start, stop, count); step > 0 {
		prec = int(math.Max(0, -math.Floor(math.Log10(step))))
	}
	return func(f float64) string {
		return formatFixed(f, prec)
	}
}

func formatFixed(f float64, prec int) string {
	str := strconv.FormatFloat(math.Abs(f), 'f', prec, 64)
	var (
		integer = str
		decimal string
	)
	if x := strings.IndexByte(str, '.'); x >= 0 {
		integer, decimal = str[:x], str[x:]
	}
	var buf strings.Builder
	if f < 0 && strings.Trim(str, "0.") != "" {
		buf.WriteByte('-')
	}
	for i := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte(integer[i])
	}
	buf.WriteString(decimal)
	return buf.String()
}
