package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteToCircleIsBijection(t *testing.T) {
	seen := map[Position]Degree{}
	for d := Degree(0); d < Slots; d++ {
		p := d.Position()
		require.GreaterOrEqual(t, int(p), 0)
		require.Less(t, int(p), Slots)
		if prev, dup := seen[p]; dup {
			t.Fatalf("position %d used by both %d and %d", p, prev, d)
		}
		seen[p] = d
		assert.Equal(t, d, p.Degree(), "round trip of degree %d", d)
	}
	assert.Len(t, seen, Slots)
}

func TestCircleIsOrderedInFifths(t *testing.T) {
	for p := Position(0); p < Slots; p++ {
		next := (p + 1) % Slots
		assert.Equal(t, p.Degree().Add(FifthSemitones), next.Degree(), "position %d", p)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, Degree(0), Wrap(12))
	assert.Equal(t, Degree(11), Wrap(-1))
	assert.Equal(t, Degree(9), Wrap(21))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "F#", Degree(6).Name())
	assert.Equal(t, "Sol", Degree(7).Solfege())
}

func TestModeByName(t *testing.T) {
	m, err := ModeByName("Harmonic minor")
	require.NoError(t, err)
	assert.Equal(t, HarmonicMinor, m)

	m, err = ModeByName("aeolian")
	require.NoError(t, err)
	assert.Equal(t, Aeolian, m)

	_, err = ModeByName("Blues")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestModeMenuOrder(t *testing.T) {
	want := []string{
		"Notes", "Ionian (Major)", "Dorian", "Phrygian", "Lydian", "Mixolydian",
		"Aeolian (Nat. minor)", "Locrian", "Harmonic minor", "Melodic minor",
	}
	var got []string
	for _, m := range Modes() {
		got = append(got, m.String())
	}
	assert.Equal(t, want, got)
}

func TestModePrevNextClamp(t *testing.T) {
	assert.Equal(t, Notes, Notes.Prev())
	assert.Equal(t, Ionian, Notes.Next())
	assert.Equal(t, MelodicMinor, MelodicMinor.Next())
	assert.Equal(t, HarmonicMinor, MelodicMinor.Prev())
	assert.Equal(t, MelodicMinor, ClampMode(42))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, CategoryNotes, Notes.Category())
	for _, m := range []Mode{Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian} {
		assert.Equal(t, CategoryDiatonic, m.Category(), m.String())
	}
	assert.Equal(t, CategoryHarmonicMinor, HarmonicMinor.Category())
	assert.Equal(t, CategoryMelodicMinor, MelodicMinor.Category())
	assert.False(t, Notes.HasOverlay())
	assert.Nil(t, Notes.Scale())
}

func TestChordsIonian(t *testing.T) {
	chords := Chords(Ionian)
	require.Len(t, chords, 7)

	var triads, sevenths []string
	for _, c := range chords {
		triads = append(triads, c.Triad(Degree.Name))
		sevenths = append(sevenths, c.SeventhSymbol(Degree.Name))
	}
	assert.Equal(t, []string{"C", "Dm", "Em", "F", "G", "Am", "Bdim"}, triads)
	assert.Equal(t, []string{"Cmaj7", "Dm7", "Em7", "Fmaj7", "G7", "Am7", "Bm7b5"}, sevenths)
}

func TestChordsHarmonicMinor(t *testing.T) {
	chords := Chords(HarmonicMinor)
	require.Len(t, chords, 7)
	assert.Equal(t, "mMaj7", chords[0].Seventh)
	assert.Equal(t, Augmented, chords[2].Quality)
	assert.Equal(t, "dim7", chords[6].Seventh)
}

func TestChordsNotes(t *testing.T) {
	assert.Nil(t, Chords(Notes))
}

func TestNumerals(t *testing.T) {
	numerals := func(m Mode) []string {
		var out []string
		for _, c := range Chords(m) {
			out = append(out, c.Numeral())
		}
		return out
	}
	assert.Equal(t, []string{"I", "ii", "iii", "IV", "V", "vi", "viio"}, numerals(Ionian))
	assert.Equal(t, []string{"i", "iio", "bIII+", "iv", "V", "bVI", "viio"}, numerals(HarmonicMinor))
	assert.Equal(t, []string{"i", "ii", "bIII+", "IV", "V", "vio", "viio"}, numerals(MelodicMinor))
	assert.Equal(t, []string{"i", "ii", "bIII", "IV", "v", "vio", "bVII"}, numerals(Dorian))
}
