package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleRunsOneAtATime(t *testing.T) {
	var s Single
	release := make(chan struct{})
	started := make(chan struct{}, 3)
	open := func() {
		started <- struct{}{}
		<-release
	}

	require.True(t, s.Go(open))
	<-started
	assert.True(t, s.Busy())
	assert.False(t, s.Go(open), "second press while open")
	assert.False(t, s.Go(open), "third press while open")

	close(release)
	assert.Eventually(t, func() bool { return !s.Busy() }, time.Second, time.Millisecond)

	assert.True(t, s.Go(open), "can open again once closed")
	<-started
	assert.Eventually(t, func() bool { return !s.Busy() }, time.Second, time.Millisecond)
	assert.Empty(t, started)
}
