package discord

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// RecoverMiddleware recovers panics in an interaction handler and tells the
// user something went wrong. The returned func must stay an unnamed func type
// for discordgo's AddHandler to recognise it.
func RecoverMiddleware(handlerName, message string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())
				respondWithError(s, i, message)
			}
		}()

		handler(s, i)
	}
}

// respondWithError tries each way of reaching the user until one works,
// since the interaction may or may not have been acknowledged yet
func respondWithError(s Session, i *discordgo.InteractionCreate, message string) {
	content := fmt.Sprintf("❌ %s", message)
	attempts := []func() error{
		func() error {
			return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: content,
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
		},
		func() error {
			_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content})
			return err
		},
		func() error {
			_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: content,
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, attempt := range attempts {
		if err := attempt(); err == nil {
			return
		}
	}
	log.Printf("Failed to send error response to user: %s", message)
}
