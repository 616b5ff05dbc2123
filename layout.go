package gltext

import "math"

// advance returns the horizontal pen advance of g in whole pixels, scaled.
func advance(src GlyphSource, r rune, scale float32) float32 {
	g, _ := src.Lookup(r)
	return float32(g.AdvanceX>>6) * scale
}

// measure returns the scaled size of text and the number of quads it
// produces.
func measure(src GlyphSource, text []rune, scale float32) (width, height float32, n int) {
	lineHeight := float32(src.LineHeight()) * scale
	height = lineHeight

	var line float32
	for _, r := range text {
		line += advance(src, r, scale)
		if r != '\n' {
			n++
			continue
		}
		height += lineHeight
		width = max(width, line)
		line = 0
	}
	width = max(width, line)
	return width, height, n
}

// penOrigin returns the pen position of the first line of rec.
func penOrigin(rec *StringRecord, vp Viewport, lineHeight int) (x, y float32) {
	if rec.Placement == PlacementRelative {
		x = float32(math.Floor(float64(rec.RelX) * float64(vp.Width)))
		y = float32(math.Floor(float64(rec.RelY) * float64(vp.Height)))
	} else {
		x = float32(rec.X)
		if !rec.Placement.leftAnchored() {
			x = float32(vp.Width - rec.X)
		}
		y = float32(rec.Y)
		if !rec.Placement.bottomAnchored() {
			y = float32(vp.Height - rec.Y)
		}
	}

	if rec.Alignment.centersX() {
		x -= rec.Width / 2
	}
	if rec.Alignment.centersY() {
		y += rec.Height/2 - float32(lineHeight)*rec.Scale
	}
	if rec.Alignment == AlignLeft {
		x -= rec.Width
	}
	return x, y
}
