package chat_test

import (
	"testing"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Flags(t *testing.T) {
	msg := &chat.Message{ID: "msg-1"}

	require.NoError(t, msg.SetFlag("other", "count", 3))
	assert.True(t, msg.HasFlag("other", "count"))

	var count int
	found, err := msg.GetFlag("other", "count", &count)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, count)

	found, err = msg.GetFlag("other", "missing", &count)
	require.NoError(t, err)
	assert.False(t, found)

	msg.UnsetFlag("other", "count")
	assert.False(t, msg.HasFlag("other", "count"))
	assert.NotContains(t, msg.Flags, "other")

	assert.NotPanics(t, func() { msg.UnsetFlag("nope", "nothing") })
}

func TestMessage_GetFlagDecodeError(t *testing.T) {
	msg := &chat.Message{}
	require.NoError(t, msg.SetFlag("other", "name", "text"))

	var n int
	found, err := msg.GetFlag("other", "name", &n)
	assert.True(t, found)
	assert.Error(t, err)
}

func TestMessage_InspectUnwrapsCheck(t *testing.T) {
	c := &check.Check{ID: "check-1", Type: check.TypeAccuracy}
	check.Configure(c).
		SetDamage(affinity.DamageIce, 8).
		SetHrZero(true).
		SetDifficulty(10)

	msg := &chat.Message{ID: "msg-1"}
	require.NoError(t, msg.SetCheck(c))

	inspector := check.Inspect(msg)
	require.True(t, inspector.Check())
	assert.Equal(t, affinity.DamageIce, inspector.GetDamage().Type)
	assert.True(t, *inspector.GetHrZero())
	assert.Equal(t, 10, *inspector.GetDifficulty())
}

func TestMessage_InspectWithoutCheck(t *testing.T) {
	msg := &chat.Message{ID: "msg-1"}

	inspector := check.Inspect(msg)
	assert.False(t, inspector.Check())
	assert.Nil(t, inspector.GetDamage())

	require.NoError(t, msg.SetFlag(chat.SystemScope, chat.FlagCheck, "garbage"))
	assert.False(t, check.Inspect(msg).Check())
}

func TestMessage_Clone(t *testing.T) {
	msg := &chat.Message{ID: "msg-1"}
	require.NoError(t, msg.SetFlag("other", "count", 1))

	clone := msg.Clone()
	require.NoError(t, clone.SetFlag("other", "count", 2))

	var count int
	_, err := msg.GetFlag("other", "count", &count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Nil(t, (*chat.Message)(nil).Clone())
}
