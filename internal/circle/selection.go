package circle

import (
	"math"

	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

// Snapshot is a copy of the selection handed to observers.
type Snapshot struct {
	Degree   theory.Degree
	Position theory.Position
	// Rotation is the angle in radians the circle image is drawn at.
	Rotation float64
	// Rotated is false until the first selection moves away from the start.
	Rotated bool
	// Target is the last angle asked for, in degrees, even when it did not move the selection.
	Target float64
}

// Selection holds the currently selected note and the rotation of the diagram.
type Selection struct {
	snap      Snapshot
	observers []func(Snapshot)
}

// NewSelection starts at C with no rotation.
func NewSelection() *Selection {
	return &Selection{}
}

// OnChange registers fn to be called after every change of the selection.
func (s *Selection) OnChange(fn func(Snapshot)) {
	s.observers = append(s.observers, fn)
}

// Snapshot returns the current state.
func (s *Selection) Snapshot() Snapshot { return s.snap }

func (s *Selection) Degree() theory.Degree { return s.snap.Degree }

func (s *Selection) Position() theory.Position { return s.snap.Position }

// SelectDegree moves the selection to the slot the clockwise angle deg falls in,
// counted from the slot currently at the top. It reports whether the selection changed.
func (s *Selection) SelectDegree(deg float64) bool {
	s.snap.Target = normalize(deg)
	steps := Quantize(deg)
	if steps == 0 {
		return false
	}
	next := Next(s.snap.Degree, steps)
	s.snap.Degree = next
	s.snap.Position = next.Position()
	s.snap.Rotation = -float64(s.snap.Position) * SlotDegrees * math.Pi / 180
	s.snap.Rotated = true
	s.notify()
	return true
}

// StepClockwise selects the neighbour one fifth up.
func (s *Selection) StepClockwise() bool {
	return s.SelectDegree(SlotDegrees)
}

// StepCounterclockwise selects the neighbour one fifth down.
func (s *Selection) StepCounterclockwise() bool {
	return s.SelectDegree(360 - SlotDegrees)
}

// Click selects the slot under (px, py) of the circle centred on (cx, cy).
// Points outside the circle are ignored.
func (s *Selection) Click(px, py, cx, cy, r float64) bool {
	deg, ok := AngleAt(px, py, cx, cy, r)
	if !ok {
		return false
	}
	return s.SelectDegree(deg)
}

func (s *Selection) notify() {
	for _, fn := range s.observers {
		fn(s.snap)
	}
}
