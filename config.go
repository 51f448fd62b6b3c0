package twig

// Defaults holds the values widgets and the Ui fall back to when the
// application does not pick its own. Build it with NewDefaults and override
// fields as needed; nothing in the package relies on zero values.
type Defaults struct {
	Font        Font    // font of plain text widgets
	ButtonFont  Font    // font of button labels
	TextEm      float64 // text height in logical units
	ButtonSize  Vec2    // size of a button in logical units
	ButtonColor Color   // button fill at rest; darkened while hovered

	// HoverDarken is the factor applied to a hovered button's color.
	HoverDarken float64

	// OutsidePointer is the logical position dispatched when the pointer is
	// outside the window or the viewport is empty.
	OutsidePointer Vec2
}

// NewDefaults returns the stock defaults.
func NewDefaults() Defaults {
	return Defaults{
		Font:           Font{Kind: FontDefault},
		ButtonFont:     Font{Kind: FontButton},
		TextEm:         0.1,
		ButtonSize:     Vec2{0.1, 0.1},
		ButtonColor:    Color{1, 1, 0},
		HoverDarken:    0.8,
		OutsidePointer: Vec2{-1, -1},
	}
}
