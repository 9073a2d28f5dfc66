package charts

import (
	"math"
)

type ScalerConstraint interface {
	~float64 | ~string
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Values(int) []T
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

// Values returns the "nice" ticks of the domain, about c of them.
func (n numberDomain) Values(c int) []float64 {
	return Ticks(n.fst, n.lst, c)
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain[float64]
}

// NumberScaler maps dom linearly onto rg. An inverted range (F > T) gives
// the usual screen orientation where larger values are drawn higher.
func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.F + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	ext := n.Extend()
	if ext == 0 {
		return 0
	}
	return n.Len() / ext
}

type Band interface {
	Scaler[string]
	Bandwidth() float64
	Contains(string) bool
}

type bandScaler struct {
	Range
	Strings []string
	Padding float64

	index map[string]int
	start float64
	step  float64
}

// BandScaler splits rg into len(str) bands of equal width. padding is the
// fraction of each step left empty between two bands and, on each side, of
// the step left before the first band and after the last one. Repeated values
// are collapsed onto their first occurrence.
func BandScaler(str []string, rg Range, padding float64) Band {
	var (
		list []string
		seen = make(map[string]int)
	)
	if padding < 0 || padding >= 1 {
		padding = 0
	}
	for _, v := range str {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = len(list)
		list = append(list, v)
	}
	s := bandScaler{
		Range:   rg,
		Strings: list,
		Padding: padding,
		index:   seen,
	}
	n := float64(len(list))
	s.step = rg.Len() / math.Max(1, n-padding+padding*2)
	s.start = rg.F + (rg.Len()-s.step*(n-padding))*0.5
	return s
}

func (s bandScaler) Scale(v string) float64 {
	x := s.index[v]
	return s.start + float64(x)*s.step
}

func (s bandScaler) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Space returns the distance between the starts of two adjacent bands.
func (s bandScaler) Space() float64 {
	return s.step
}

func (s bandScaler) Bandwidth() float64 {
	return s.step * (1 - s.Padding)
}

func (s bandScaler) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}
