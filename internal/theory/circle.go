// Package theory holds the pitch-class arithmetic behind the circle of fifths.
package theory

// Slots is the number of pitch classes, and of positions on the circle.
const Slots = 12

// FifthSemitones is the size of one step around the circle.
const FifthSemitones = 7

// Degree is a chromatic pitch class, 0 = C.
type Degree int

// Position is an angular slot on the circle, 0 at the top, counted clockwise.
type Position int

// noteToCircle places each pitch class on the circle in ascending fifths.
var noteToCircle = [Slots]Position{
	0:  0,
	7:  1,
	2:  2,
	9:  3,
	4:  4,
	11: 5,
	6:  6,
	1:  7,
	8:  8,
	3:  9,
	10: 10,
	5:  11,
}

var circleToNote = invert(noteToCircle)

func invert(m [Slots]Position) [Slots]Degree {
	var out [Slots]Degree
	for d, p := range m {
		out[p] = Degree(d)
	}
	return out
}

// Wrap reduces any integer to a pitch class.
func Wrap(n int) Degree {
	n %= Slots
	if n < 0 {
		n += Slots
	}
	return Degree(n)
}

// Position returns the slot of d on the circle.
func (d Degree) Position() Position {
	return noteToCircle[Wrap(int(d))]
}

// Add moves d by n semitones.
func (d Degree) Add(n int) Degree {
	return Wrap(int(d) + n)
}

// Degree returns the pitch class sitting at p.
func (p Position) Degree() Degree {
	n := int(p) % Slots
	if n < 0 {
		n += Slots
	}
	return circleToNote[n]
}

var letterNames = [Slots]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var solfegeNames = [Slots]string{"Do", "Do#", "Re", "Re#", "Mi", "Fa", "Fa#", "Sol", "Sol#", "La", "La#", "Si"}

// Name returns the letter name of d.
func (d Degree) Name() string { return letterNames[Wrap(int(d))] }

// Solfege returns the fixed-do name of d.
func (d Degree) Solfege() string { return solfegeNames[Wrap(int(d))] }
