package vector

// RGB is a 0-255 color triple in gofpdf's convention.
type RGB struct {
	R, G, B int
}

// Theme carries every style constant the layout engine uses. Engines receive
// a Theme value explicitly so the package keeps no shared mutable state.
type Theme struct {
	FontFamily string

	MarginLeft   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64

	// Scaffold geometry: the header block and navigation bar drawn at fixed
	// offsets from the top margin of every page.
	HeaderHeight float64
	NavHeight    float64
	PillHeight   float64

	ChipHeight  float64
	LineHeight  float64
	CardPadding float64
	Indent      float64

	Primary      RGB // active pill, badges
	PrimaryText  RGB
	Surface      RGB // comment card fill
	Border       RGB
	BorderLight  RGB
	Text         RGB
	Muted        RGB
	ChipFill     RGB
	ChipText     RGB
	RatingFill   RGB
	RatingText   RGB
	Star         RGB
	StatusFill   RGB
	StatusText   RGB
	PriorityFill RGB
	PriorityText RGB
}

// DefaultTheme mirrors the palette of the HTML stylesheet so both renderers
// produce visually comparable output.
func DefaultTheme() Theme {
	return Theme{
		FontFamily: "Helvetica",

		MarginLeft:   15,
		MarginTop:    15,
		MarginRight:  15,
		MarginBottom: 15,

		HeaderHeight: 14,
		NavHeight:    12,
		PillHeight:   7,

		ChipHeight:  5.5,
		LineHeight:  4.5,
		CardPadding: 4,
		Indent:      8,

		Primary:      RGB{63, 81, 181},
		PrimaryText:  RGB{255, 255, 255},
		Surface:      RGB{249, 250, 251},
		Border:       RGB{229, 231, 235},
		BorderLight:  RGB{243, 244, 246},
		Text:         RGB{31, 41, 55},
		Muted:        RGB{107, 114, 128},
		ChipFill:     RGB{238, 242, 255},
		ChipText:     RGB{55, 48, 163},
		RatingFill:   RGB{254, 243, 199},
		RatingText:   RGB{146, 64, 14},
		Star:         RGB{245, 158, 11},
		StatusFill:   RGB{220, 252, 231},
		StatusText:   RGB{22, 101, 52},
		PriorityFill: RGB{254, 226, 226},
		PriorityText: RGB{153, 27, 27},
	}
}
