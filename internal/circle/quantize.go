// Package circle turns pointer and keyboard input into a selection on the circle of fifths.
package circle

import (
	"math"

	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

const (
	// SlotDegrees is the angular width of one position.
	SlotDegrees = 360.0 / theory.Slots
	// halfSlot offsets slot boundaries so each slot is centred on its nominal angle.
	halfSlot = SlotDegrees / 2
)

// AngleAt returns the clockwise angle of (px, py) from straight up around (cx, cy),
// in [0, 360). ok is false when the point is not strictly inside the circle of radius r.
func AngleAt(px, py, cx, cy, r float64) (deg float64, ok bool) {
	dx := px - cx
	dy := py - cy
	if dx*dx+dy*dy >= r*r {
		return 0, false
	}
	return normalize(math.Atan2(dy, dx)*180/math.Pi + 90), true
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Quantize returns how many positions clockwise deg lies from the top slot.
// Angles within half a slot of the top give 0.
func Quantize(deg float64) int {
	deg = normalize(deg)
	if deg >= 360-halfSlot || deg < halfSlot {
		return 0
	}
	steps := 0
	for k := 0; k < theory.Slots-1; k++ {
		if deg >= halfSlot+SlotDegrees*float64(k) {
			steps++
		}
	}
	return steps
}

// Next steps prev around the circle by the given number of positions.
func Next(prev theory.Degree, steps int) theory.Degree {
	return prev.Add(theory.FifthSemitones * steps)
}
