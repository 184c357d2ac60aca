// Package chat models chat log messages and the namespaced flags rules data
// rides along in.
package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
)

const (
	// SystemScope is the flag namespace owned by the rules system
	SystemScope = "projectfu"

	// FlagCheck is the key the check is stored under
	FlagCheck = "checkV2"
)

// Speaker identifies who a message is posted as
type Speaker struct {
	ActorID string `json:"actorId,omitempty"`
	Alias   string `json:"alias,omitempty"`
}

// Action is an interactive control attached to a rendered message
type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Style ActionStyle `json:"style,omitempty"`
}

// ActionStyle hints how a transport should draw an action
type ActionStyle string

const (
	ActionStylePrimary   ActionStyle = "primary"
	ActionStyleSecondary ActionStyle = "secondary"
	ActionStyleDanger    ActionStyle = "danger"
)

// Message is one chat log entry
type Message struct {
	ID        string                                `json:"id"`
	ChannelID string                                `json:"channelId"`
	AuthorID  string                                `json:"authorId,omitempty"`
	Speaker   Speaker                               `json:"speaker"`
	Flavor    string                                `json:"flavor,omitempty"`
	Content   string                                `json:"content"`
	Flags     map[string]map[string]json.RawMessage `json:"flags,omitempty"`
	CreatedAt time.Time                             `json:"createdAt"`
}

// SetFlag stores value as JSON under scope.key
func (m *Message) SetFlag(scope, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode flag %s.%s: %w", scope, key, err)
	}
	if m.Flags == nil {
		m.Flags = make(map[string]map[string]json.RawMessage)
	}
	if m.Flags[scope] == nil {
		m.Flags[scope] = make(map[string]json.RawMessage)
	}
	m.Flags[scope][key] = raw
	return nil
}

// GetFlag decodes scope.key into out. It reports false when the flag is absent.
func (m *Message) GetFlag(scope, key string, out any) (bool, error) {
	raw, ok := m.Flags[scope][key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("failed to decode flag %s.%s: %w", scope, key, err)
	}
	return true, nil
}

// HasFlag reports whether scope.key is set
func (m *Message) HasFlag(scope, key string) bool {
	_, ok := m.Flags[scope][key]
	return ok
}

// UnsetFlag removes scope.key, dropping the scope once empty
func (m *Message) UnsetFlag(scope, key string) {
	if m.Flags[scope] == nil {
		return
	}
	delete(m.Flags[scope], key)
	if len(m.Flags[scope]) == 0 {
		delete(m.Flags, scope)
	}
}

// SetCheck stores the check under the system flag
func (m *Message) SetCheck(c *check.Check) error {
	return m.SetFlag(SystemScope, FlagCheck, c)
}

// SourceCheck decodes the check carried in the system flag. Messages without
// a check, or with an unreadable one, yield nil.
func (m *Message) SourceCheck() *check.Check {
	if m == nil {
		return nil
	}
	var c check.Check
	found, err := m.GetFlag(SystemScope, FlagCheck, &c)
	if !found || err != nil {
		return nil
	}
	return &c
}

// Clone returns a copy whose flags can be changed independently
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	out := *m
	if m.Flags != nil {
		out.Flags = make(map[string]map[string]json.RawMessage, len(m.Flags))
		for scope, keys := range m.Flags {
			inner := make(map[string]json.RawMessage, len(keys))
			for k, v := range keys {
				inner[k] = append(json.RawMessage(nil), v...)
			}
			out.Flags[scope] = inner
		}
	}
	return &out
}
