package discord

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/projectfu-discord/internal/i18n"
	"github.com/KirkDiggler/projectfu-discord/internal/notify"
)

// interactionNotifier shows notifications to the user behind an interaction.
// For a deferred command the first notification fills in the pending reply;
// everything else goes out as an ephemeral followup.
type interactionNotifier struct {
	session     Session
	interaction *discordgo.Interaction
	localizer   *i18n.Localizer

	mu           sync.Mutex
	replyPending bool
	sent         map[string]bool
}

func newInteractionNotifier(s Session, i *discordgo.Interaction, l *i18n.Localizer, replyPending bool) *interactionNotifier {
	return &interactionNotifier{
		session:      s,
		interaction:  i,
		localizer:    l,
		replyPending: replyPending,
		sent:         make(map[string]bool),
	}
}

func (n *interactionNotifier) Notify(_ context.Context, level notify.Level, key string) error {
	content := levelPrefix(level) + n.localizer.Localize(key)

	n.mu.Lock()
	n.sent[key] = true
	fillReply := n.replyPending
	n.replyPending = false
	n.mu.Unlock()

	if fillReply {
		_, err := n.session.InteractionResponseEdit(n.interaction, &discordgo.WebhookEdit{Content: &content})
		return err
	}
	_, err := n.session.FollowupMessageCreate(n.interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}

// notified reports whether key was already shown to the user
func (n *interactionNotifier) notified(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[key]
}

// replied reports whether the user has already been shown a notification
func (n *interactionNotifier) replied() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent) > 0 && !n.replyPending
}

func levelPrefix(level notify.Level) string {
	switch level {
	case notify.LevelError:
		return "❌ "
	case notify.LevelWarning:
		return "⚠️ "
	default:
		return "ℹ️ "
	}
}
