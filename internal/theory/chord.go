package theory

import "strings"

// Quality is the kind of triad built by stacking two thirds.
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
)

// Suffix is the chord-symbol suffix of a triad quality.
func (q Quality) Suffix() string {
	switch q {
	case Minor:
		return "m"
	case Diminished:
		return "dim"
	case Augmented:
		return "+"
	default:
		return ""
	}
}

// Chord is a diatonic chord, rooted at an offset from the mode's tonic.
type Chord struct {
	// Step is the scale step the chord is built on, 0 for the tonic.
	Step    int
	Root    Degree
	Quality Quality
	// Seventh is the chord-symbol suffix of the four-note chord.
	Seventh string
}

// Triad renders the chord symbol of the three-note chord.
func (c Chord) Triad(name func(Degree) string) string {
	return name(c.Root) + c.Quality.Suffix()
}

// SeventhSymbol renders the chord symbol of the four-note chord.
func (c Chord) SeventhSymbol(name func(Degree) string) string {
	return name(c.Root) + c.Seventh
}

// Chords stacks thirds on every note of m. Notes has no chords.
func Chords(m Mode) []Chord {
	s := m.Scale()
	if len(s) == 0 {
		return nil
	}
	out := make([]Chord, len(s))
	for i := range s {
		third := interval(s, i, 2)
		fifth := interval(s, i, 4)
		seventh := interval(s, i, 6)
		q := triadQuality(third, fifth)
		out[i] = Chord{
			Step:    i,
			Root:    Degree(s[i]),
			Quality: q,
			Seventh: seventhSuffix(q, seventh),
		}
	}
	return out
}

// interval is the distance in semitones from scale note i to the note step places above it.
func interval(s []int, i, step int) int {
	j := i + step
	top := s[j%len(s)]
	if j >= len(s) {
		top += Slots
	}
	return top - s[i]
}

func triadQuality(third, fifth int) Quality {
	switch {
	case third == 4 && fifth == 8:
		return Augmented
	case third == 4:
		return Major
	case fifth == 6:
		return Diminished
	default:
		return Minor
	}
}

func seventhSuffix(q Quality, seventh int) string {
	switch q {
	case Major:
		if seventh == 11 {
			return "maj7"
		}
		return "7"
	case Minor:
		if seventh == 11 {
			return "mMaj7"
		}
		return "m7"
	case Diminished:
		if seventh == 9 {
			return "dim7"
		}
		return "m7b5"
	case Augmented:
		if seventh == 11 {
			return "+maj7"
		}
		return "+7"
	}
	return ""
}

var numerals = [...]string{"I", "II", "III", "IV", "V", "VI", "VII"}

var majorScale = [...]int{0, 2, 4, 5, 7, 9, 11}

// Numeral names the chord by scale step, relative to the major scale on the same tonic:
// upper case for major, lower case for minor, "o" for diminished, "+" for augmented.
func (c Chord) Numeral() string {
	if c.Step < 0 || c.Step >= len(numerals) {
		return "?"
	}
	n := numerals[c.Step]
	switch c.Quality {
	case Minor:
		n = strings.ToLower(n)
	case Diminished:
		n = strings.ToLower(n) + "o"
	case Augmented:
		n += "+"
	}
	switch diff := int(c.Root) - majorScale[c.Step]; {
	case diff < 0:
		n = "b" + n
	case diff > 0:
		n = "#" + n
	}
	return n
}
