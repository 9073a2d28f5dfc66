package charts

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// Ordinal maps a fixed list of keys onto a palette, by position. Keys past
// the end of the palette wrap around. An empty palette means Category10.
type Ordinal struct {
	keys   []string
	colors Palette
	index  map[string]int
}

func OrdinalScale(keys []string, colors Palette) Ordinal {
	if len(colors) == 0 {
		colors = Category10
	}
	o := Ordinal{
		keys:   make([]string, 0, len(keys)),
		colors: colors,
		index:  make(map[string]int),
	}
	for _, k := range keys {
		if _, ok := o.index[k]; ok {
			continue
		}
		o.index[k] = len(o.keys)
		o.keys = append(o.keys, k)
	}
	return o
}

// Color returns the colour of key or currentColor when key is not part of
// the scale.
func (o Ordinal) Color(key string) string {
	x, ok := o.index[key]
	if !ok || len(o.colors) == 0 {
		return currentColour
	}
	return o.colors[x%len(o.colors)]
}

func (o Ordinal) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}
