package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCustomTimeout_SetsDeadline(t *testing.T) {
	ctx, cancel := WithCustomTimeout(ChatSendTimeout)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(ChatSendTimeout), deadline, time.Second)
}

func TestChatSendTimeout_WiderThanCatalogReads(t *testing.T) {
	assert.Greater(t, ChatSendTimeout, UpstreamTimeout)
}

func TestGetEnvInt_FallsBackOnJunk(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 42, GetEnvInt("SOME_INT", 42))

	t.Setenv("SOME_INT", "7")
	assert.Equal(t, 7, GetEnvInt("SOME_INT", 42))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("SOME_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("SOME_DUR", time.Minute))

	t.Setenv("SOME_DUR", "junk")
	assert.Equal(t, time.Minute, GetEnvDuration("SOME_DUR", time.Minute))
}
