package charts

// Style holds the font sizes used for the text drawn around the plot area.
type Style struct {
	TitleSize  float64
	LabelSize  float64
	LegendSize float64
}

func DefaultStyle() Style {
	return Style{
		TitleSize:  16,
		LabelSize:  14,
		LegendSize: 12,
	}
}
