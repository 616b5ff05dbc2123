package gltext

// Placement selects how a string origin is anchored to the framebuffer.
type Placement uint8

const (
	// PlacementAbsoluteBottomLeft measures x from the left edge and y from
	// the bottom edge.
	PlacementAbsoluteBottomLeft Placement = iota + 1

	// PlacementAbsoluteTopLeft measures x from the left edge and y from the
	// top edge.
	PlacementAbsoluteTopLeft

	// PlacementAbsoluteTopRight measures x from the right edge and y from
	// the top edge.
	PlacementAbsoluteTopRight

	// PlacementAbsoluteBottomRight measures x from the right edge and y
	// from the bottom edge.
	PlacementAbsoluteBottomRight

	// PlacementRelative takes the origin as a fraction of the framebuffer
	// size. Used by AddStringRelative.
	PlacementRelative
)

func (p Placement) valid() bool {
	return p >= PlacementAbsoluteBottomLeft && p <= PlacementRelative
}

func (p Placement) leftAnchored() bool {
	return p == PlacementAbsoluteBottomLeft || p == PlacementAbsoluteTopLeft
}

func (p Placement) bottomAnchored() bool {
	return p == PlacementAbsoluteBottomLeft || p == PlacementAbsoluteBottomRight
}

// String returns the placement name.
func (p Placement) String() string {
	switch p {
	case PlacementAbsoluteBottomLeft:
		return "AbsoluteBottomLeft"
	case PlacementAbsoluteTopLeft:
		return "AbsoluteTopLeft"
	case PlacementAbsoluteTopRight:
		return "AbsoluteTopRight"
	case PlacementAbsoluteBottomRight:
		return "AbsoluteBottomRight"
	case PlacementRelative:
		return "Relative"
	default:
		return "Unknown"
	}
}

// Alignment selects how a string is positioned relative to its pen origin.
type Alignment uint8

const (
	// AlignLeft ends the string at the pen: the string grows leftward.
	AlignLeft Alignment = iota + 1

	// AlignCenterX centers the string horizontally on the pen.
	AlignCenterX

	// AlignCenterY centers the string vertically on the pen.
	AlignCenterY

	// AlignCenterXY centers the string on the pen along both axes.
	AlignCenterXY

	// AlignRight starts the string at the pen.
	AlignRight
)

func (a Alignment) valid() bool {
	return a >= AlignLeft && a <= AlignRight
}

func (a Alignment) centersX() bool {
	return a == AlignCenterX || a == AlignCenterXY
}

func (a Alignment) centersY() bool {
	return a == AlignCenterY || a == AlignCenterXY
}

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenterX:
		return "CenterX"
	case AlignCenterY:
		return "CenterY"
	case AlignCenterXY:
		return "CenterXY"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}
