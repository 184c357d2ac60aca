package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	"github.com/KirkDiggler/projectfu-discord/internal/services/chatlog"
)

// maxButtonsPerRow is the most buttons Discord draws in one action row
const maxButtonsPerRow = 5

// ChannelSender posts messages to a channel
type ChannelSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// NewSink returns a chat log sink that posts messages to their Discord channel
func NewSink(sender ChannelSender) chatlog.Sink {
	return chatlog.SinkFunc(func(_ context.Context, msg *chat.Message, actions []chat.Action) error {
		if msg.ChannelID == "" {
			return fmt.Errorf("message %s has no channel", msg.ID)
		}
		_, err := sender.ChannelMessageSendComplex(msg.ChannelID, BuildMessageSend(msg, actions))
		if err != nil {
			return fmt.Errorf("failed to send message %s: %w", msg.ID, err)
		}
		return nil
	})
}

// BuildMessageSend draws a chat message as an embed with its actions as buttons
func BuildMessageSend(msg *chat.Message, actions []chat.Action) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Description: msg.Content,
		Color:       0x5865F2,
	}
	if msg.Speaker.Alias != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: msg.Speaker.Alias}
	}
	if msg.Flavor != "" {
		embed.Title = msg.Flavor
	}
	if !msg.CreatedAt.IsZero() {
		embed.Timestamp = msg.CreatedAt.Format(time.RFC3339)
	}

	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: actionRows(actions),
	}
}

func actionRows(actions []chat.Action) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	for start := 0; start < len(actions); start += maxButtonsPerRow {
		end := min(start+maxButtonsPerRow, len(actions))
		buttons := make([]discordgo.MessageComponent, 0, end-start)
		for _, a := range actions[start:end] {
			buttons = append(buttons, discordgo.Button{
				Label:    a.Label,
				Style:    buttonStyle(a.Style),
				CustomID: a.ID,
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}
	return rows
}

func buttonStyle(style chat.ActionStyle) discordgo.ButtonStyle {
	switch style {
	case chat.ActionStyleDanger:
		return discordgo.DangerButton
	case chat.ActionStyleSecondary:
		return discordgo.SecondaryButton
	default:
		return discordgo.PrimaryButton
	}
}
