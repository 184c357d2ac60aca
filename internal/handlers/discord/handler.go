package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/handlers/discord/utils"
	"github.com/KirkDiggler/projectfu-discord/internal/i18n"
	"github.com/KirkDiggler/projectfu-discord/internal/notify"
	"github.com/KirkDiggler/projectfu-discord/internal/services"
	characterService "github.com/KirkDiggler/projectfu-discord/internal/services/character"
	"github.com/KirkDiggler/projectfu-discord/internal/services/checks"
	"github.com/KirkDiggler/projectfu-discord/internal/services/damage"
	encounterService "github.com/KirkDiggler/projectfu-discord/internal/services/encounter"
)

// Localization keys used directly by the handlers
const (
	KeyErrorGeneric = "FU.ErrorGeneric"
	KeyNoActor      = "FU.NoActor"
)

// Handler handles all Discord interactions
type Handler struct {
	characters characterService.Service
	checks     checks.Service
	damage     damage.Service
	encounters encounterService.Service
	bundle     *i18n.Bundle
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	p := cfg.ServiceProvider
	if p.Bundle == nil {
		panic("locale bundle is required")
	}

	return &Handler{
		characters: p.CharacterService,
		checks:     p.CheckService,
		damage:     p.DamageService,
		encounters: p.EncounterService,
		bundle:     p.Bundle,
	}
}

// RegisterCommands registers the slash commands, globally when guildID is empty
func (h *Handler) RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
	}
	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.Handle(s, i)
}

// Handle dispatches an interaction to the command or component handlers
func (h *Handler) Handle(s Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

// commandRequest is one parsed /fu invocation
type commandRequest struct {
	userID    string
	channelID string
	options   utils.Options
	localizer *i18n.Localizer
}

type commandFunc func(ctx context.Context, req *commandRequest) (string, error)

func (h *Handler) route(group, name string) commandFunc {
	switch group + "/" + name {
	case GroupCheck + "/" + SubRoll:
		return h.rollCheck
	case GroupTarget + "/" + SubSelect:
		return h.selectTargets
	case GroupTarget + "/" + SubClear:
		return h.clearTargets
	case GroupTarget + "/" + SubBind:
		return h.bindCharacter
	case GroupCombat + "/" + SubCreate:
		return h.createEncounter
	case GroupCombat + "/" + SubJoin:
		return h.joinEncounter
	case GroupCombat + "/" + SubStart:
		return h.startEncounter
	case GroupCombat + "/" + SubTurn:
		return h.takeTurn
	case GroupCombat + "/" + SubStatus:
		return h.encounterStatus
	case GroupCombat + "/" + SubEnd:
		return h.endEncounter
	default:
		return nil
	}
}

// handleCommand defers an ephemeral reply, runs the subcommand and fills the
// reply in with its result
func (h *Handler) handleCommand(s Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != CommandName {
		return
	}

	group, name, opts := utils.Subcommand(i)
	run := h.route(group, name)
	if run == nil {
		log.Printf("Unknown subcommand /%s %s %s", CommandName, group, name)
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		log.Printf("Failed to acknowledge /%s %s %s: %v", CommandName, group, name, err)
		return
	}

	localizer := h.bundle.For(string(i.Locale))
	notifier := newInteractionNotifier(s, i.Interaction, localizer, true)
	ctx := notify.WithNotifier(context.Background(), notifier)

	content, err := run(ctx, &commandRequest{
		userID:    userID(i),
		channelID: i.ChannelID,
		options:   opts,
		localizer: localizer,
	})
	if err != nil {
		log.Printf("Command /%s %s %s failed: %v", CommandName, group, name, err)
		h.replyError(notifier, localizer, err, func(msg string) error {
			_, editErr := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &msg})
			return editErr
		})
		return
	}
	if notifier.replied() {
		return
	}
	if content == "" {
		content = "✅"
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		log.Printf("Failed to edit reply for /%s %s %s: %v", CommandName, group, name, err)
	}
}

// replyError tells the user about err unless a notification already did.
// Vetoing listeners usually explain themselves.
func (h *Handler) replyError(n *interactionNotifier, l *i18n.Localizer, err error, reply func(string) error) {
	var content string
	if key, ok := dnderr.LocalizationKey(err); ok {
		if n.notified(key) {
			return
		}
		content = "❌ " + l.Localize(key)
	} else {
		switch dnderr.GetCode(err) {
		case dnderr.CodeVetoed:
			if n.replied() {
				return
			}
			content = "❌ " + err.Error()
		case dnderr.CodeInvalidArgument, dnderr.CodeNotFound, dnderr.CodeAlreadyExists, dnderr.CodeFailedPrecondition:
			content = "❌ " + err.Error()
		default:
			content = "❌ " + l.Localize(KeyErrorGeneric)
		}
	}

	if replyErr := reply(content); replyErr != nil {
		log.Printf("Failed to send error reply: %v", replyErr)
	}
}

// handleComponent handles button clicks on chat messages
func (h *Handler) handleComponent(s Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	messageID, mods, ok := damage.ParseCustomID(customID)
	if !ok {
		log.Printf("Ignoring unknown component %q", customID)
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("Failed to acknowledge apply damage click: %v", err)
		return
	}

	localizer := h.bundle.For(string(i.Locale))
	notifier := newInteractionNotifier(s, i.Interaction, localizer, false)
	ctx := notify.WithNotifier(context.Background(), notifier)

	ran, out, err := h.damage.Trigger(ctx, &damage.ApplyDamageInput{
		UserID:    userID(i),
		MessageID: messageID,
		Modifiers: mods,
	})
	if err != nil {
		log.Printf("Apply damage from %s failed: %v", messageID, err)
		h.replyError(notifier, localizer, err, func(msg string) error {
			_, sendErr := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: msg,
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return sendErr
		})
		return
	}
	if !ran {
		notify.Info(ctx, damage.KeyBusy)
		return
	}

	log.Printf("Applied %d %s damage from %s to %d actors", out.Damage, out.Type, messageID, len(out.Applications))
}
