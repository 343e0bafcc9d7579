package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtSevenths(t *testing.T) {
	m := New()
	assert.Equal(t, Sevenths, m.Mode())
	assert.True(t, m.ShowsTriads())
	assert.True(t, m.ShowsSevenths())
}

func TestAdvanceCycles(t *testing.T) {
	m := NewAt(None)
	var labels []string
	for i := 0; i < 3; i++ {
		labels = append(labels, m.Mode().Label())
		m.Advance()
	}
	assert.Equal(t, []string{" ", "T", "7"}, labels)
	assert.Equal(t, None, m.Mode())
}

func TestAdvanceThreeTimesIsIdentity(t *testing.T) {
	for _, start := range []Mode{None, Triads, Sevenths} {
		m := NewAt(start)
		m.Advance()
		m.Advance()
		m.Advance()
		assert.Equal(t, start, m.Mode())
	}
}

func TestLayers(t *testing.T) {
	tests := []struct {
		mode     Mode
		triads   bool
		sevenths bool
		tooltip  string
	}{
		{None, false, false, "Show triads"},
		{Triads, true, false, "Show sevenths"},
		{Sevenths, true, true, "Don't show overlays"},
	}
	for _, tt := range tests {
		m := NewAt(tt.mode)
		assert.Equal(t, tt.triads, m.ShowsTriads(), tt.mode.String())
		assert.Equal(t, tt.sevenths, m.ShowsSevenths(), tt.mode.String())
		assert.Equal(t, tt.tooltip, tt.mode.Tooltip())
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("Triads")
	require.NoError(t, err)
	assert.Equal(t, Triads, m)

	_, err = Parse("ninths")
	assert.Error(t, err)
}

func TestOutOfRangeModesAreClamped(t *testing.T) {
	assert.Equal(t, Sevenths, NewAt(Mode(3)).Mode())
	assert.Equal(t, None, NewAt(Mode(-1)).Mode())

	assert.NotPanics(t, func() {
		assert.Equal(t, "7", Mode(3).Label())
		assert.Equal(t, "Show triads", Mode(-2).Tooltip())
		assert.Equal(t, "sevenths", Mode(42).String())
	})

	m := NewAt(Mode(9))
	assert.Equal(t, None, m.Advance())
}
