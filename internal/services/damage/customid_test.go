package damage_test

import (
	"testing"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/services/damage"
	"github.com/stretchr/testify/assert"
)

func TestCustomID(t *testing.T) {
	tests := []struct {
		mods affinity.ClickModifiers
		want string
	}{
		{affinity.ClickModifiers{}, "fu:apply_damage:msg-1:"},
		{affinity.ClickModifiers{Shift: true}, "fu:apply_damage:msg-1:s"},
		{affinity.ClickModifiers{Shift: true, Ctrl: true}, "fu:apply_damage:msg-1:cs"},
		{affinity.ClickModifiers{Alt: true, Ctrl: true, Shift: true}, "fu:apply_damage:msg-1:acs"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			id := damage.CustomID("msg-1", tt.mods)
			assert.Equal(t, tt.want, id)

			messageID, mods, ok := damage.ParseCustomID(id)
			assert.True(t, ok)
			assert.Equal(t, "msg-1", messageID)
			assert.Equal(t, tt.mods, mods)
		})
	}
}

func TestParseCustomID_Rejects(t *testing.T) {
	for _, id := range []string{
		"",
		"fu:apply_damage",
		"fu:apply_damage::s",
		"combat:attack:msg-1:s",
		"fu:select:msg-1:",
	} {
		_, _, ok := damage.ParseCustomID(id)
		assert.False(t, ok, id)
	}
}

func TestDecodeModifiers_IgnoresUnknown(t *testing.T) {
	assert.Equal(t, affinity.ClickModifiers{Shift: true}, damage.DecodeModifiers("xsz"))
}
