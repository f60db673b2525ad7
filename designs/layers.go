package designs

// Area names one of the four printable regions of a garment. The set of
// areas is fixed; a design always carries exactly one layer per area.
type Area string

const (
	AreaFront       Area = "FRONT"
	AreaBack        Area = "BACK"
	AreaLeftSleeve  Area = "LEFT_SLEEVE"
	AreaRightSleeve Area = "RIGHT_SLEEVE"
)

// Areas lists the four areas in render order.
func Areas() []Area {
	return []Area{AreaFront, AreaBack, AreaLeftSleeve, AreaRightSleeve}
}

// Valid reports whether a is one of the four known areas.
func (a Area) Valid() bool {
	switch a {
	case AreaFront, AreaBack, AreaLeftSleeve, AreaRightSleeve:
		return true
	}
	return false
}

// Layer holds the editable visual parameters for one area. Scale is a
// multiplier, rotation is in degrees, position is a percentage of the
// printable region.
type Layer struct {
	Area       Area    `json:"area"`
	DesignText string  `json:"designText,omitempty"`
	ColorHex   string  `json:"colorHex"`
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   int     `json:"fontSize,omitempty"`
	PositionX  float64 `json:"positionX"`
	PositionY  float64 `json:"positionY"`
	Scale      float64 `json:"scale"`
	Rotation   float64 `json:"rotation"`
}

const (
	defaultColorHex = "#1a1a1a"
	defaultPosition = 50

	// Scale multipliers outside this range distort the preview mesh.
	MinScale = 0.1
	MaxScale = 3.0
)

func defaultLayer(area Area) Layer {
	return Layer{
		Area:      area,
		ColorHex:  defaultColorHex,
		PositionX: defaultPosition,
		PositionY: defaultPosition,
		Scale:     1,
		Rotation:  0,
	}
}

// LayerUpdate is a partial edit of a layer. Nil fields leave the current
// value untouched.
type LayerUpdate struct {
	DesignText *string
	ColorHex   *string
	FontFamily *string
	FontSize   *int
	PositionX  *float64
	PositionY  *float64
	Scale      *float64
	Rotation   *float64
}

func (u LayerUpdate) applyTo(l Layer) Layer {
	if u.DesignText != nil {
		l.DesignText = *u.DesignText
	}
	if u.ColorHex != nil {
		l.ColorHex = *u.ColorHex
	}
	if u.FontFamily != nil {
		l.FontFamily = *u.FontFamily
	}
	if u.FontSize != nil {
		l.FontSize = *u.FontSize
	}
	if u.PositionX != nil {
		l.PositionX = *u.PositionX
	}
	if u.PositionY != nil {
		l.PositionY = *u.PositionY
	}
	if u.Scale != nil {
		l.Scale = clampScale(*u.Scale)
	}
	if u.Rotation != nil {
		l.Rotation = *u.Rotation
	}
	return l
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
