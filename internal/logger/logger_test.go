package logger

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "warn"))
	t.Cleanup(func() { _ = Setup(os.Stderr, "info") })

	Info("hidden", nil)
	Warn("shown", Fields{"b": 2, "a": 1})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Regexp(t, `a=1 b=2`, out)
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "debug"))
	t.Cleanup(func() { _ = Setup(os.Stderr, "info") })

	Error("load failed", errors.New("boom"), Fields{"asset": "circle"})
	assert.Contains(t, buf.String(), `error=boom`)
	assert.Contains(t, buf.String(), `asset=circle`)
}

func TestParseLevel(t *testing.T) {
	_, err := ParseLevel("loud")
	assert.Error(t, err)

	for _, name := range []string{"debug", "INFO", "warning", "error", ""} {
		_, err := ParseLevel(name)
		assert.NoError(t, err, name)
	}
}
