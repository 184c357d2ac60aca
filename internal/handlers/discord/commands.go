package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/combat"
)

// CommandName is the root slash command
const CommandName = "fu"

// Subcommand groups and subcommands of /fu
const (
	GroupCheck  = "check"
	GroupTarget = "target"
	GroupCombat = "combat"

	SubRoll   = "roll"
	SubSelect = "select"
	SubClear  = "clear"
	SubBind   = "bind"
	SubCreate = "create"
	SubJoin   = "join"
	SubStart  = "start"
	SubTurn   = "turn"
	SubStatus = "status"
	SubEnd    = "end"
)

func attributeChoices() []*discordgo.ApplicationCommandOptionChoice {
	names := map[check.Attribute]string{
		check.AttributeDexterity: "Dexterity",
		check.AttributeInsight:   "Insight",
		check.AttributeMight:     "Might",
		check.AttributeWillpower: "Willpower",
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(check.Attributes))
	for _, a := range check.Attributes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: names[a], Value: string(a)})
	}
	return choices
}

func damageTypeChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(affinity.DamageTypes))
	for _, t := range affinity.DamageTypes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: string(t), Value: string(t)})
	}
	return choices
}

func factionChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Friendly", Value: string(combat.FactionFriendly)},
		{Name: "Hostile", Value: string(combat.FactionHostile)},
	}
}

// Commands returns the application commands the bot registers
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandName,
			Description: "Fabula Ultima table commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        GroupCheck,
					Description: "Roll checks",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        SubRoll,
							Description: "Roll a check for your character",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "primary",
									Description: "First attribute",
									Required:    true,
									Choices:     attributeChoices(),
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "secondary",
									Description: "Second attribute",
									Required:    true,
									Choices:     attributeChoices(),
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "What the check is for",
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "actor",
									Description: "Actor ID to roll for (defaults to your selection or character)",
								},
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "bonus",
									Description: "Flat bonus to the result",
								},
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "difficulty",
									Description: "Difficulty to beat",
									MinValue:    new(float64),
								},
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "damage",
									Description: "Base damage, added to the high roll",
									MinValue:    new(float64),
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "type",
									Description: "Damage type",
									Choices:     damageTypeChoices(),
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "defense",
									Description: "Defense the targets use",
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "Defense", Value: string(check.DefensePhysical)},
										{Name: "Magic Defense", Value: string(check.DefenseMagic)},
									},
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "targets",
									Description: "Comma separated actor IDs to target",
								},
								{
									Type:        discordgo.ApplicationCommandOptionBoolean,
									Name:        "hr-zero",
									Description: "Count the high roll as zero",
								},
							},
						},
					},
				},
				{
					Name:        GroupTarget,
					Description: "Choose who damage applies to",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        SubSelect,
							Description: "Select actors",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "actors",
									Description: "Comma separated actor IDs",
									Required:    true,
								},
							},
						},
						{
							Name:        SubClear,
							Description: "Clear your selection",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        SubBind,
							Description: "Bind your character (leave empty to unbind)",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "actor",
									Description: "Actor ID",
								},
							},
						},
					},
				},
				{
					Name:        GroupCombat,
					Description: "Run encounters",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        SubCreate,
							Description: "Open an encounter in this channel",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Encounter name",
								},
							},
						},
						{
							Name:        SubJoin,
							Description: "Add a combatant",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "actor",
									Description: "Actor ID (defaults to your selection or character)",
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Token name",
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "disposition",
									Description: "How the token regards the players",
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "Friendly", Value: "friendly"},
										{Name: "Neutral", Value: "neutral"},
										{Name: "Hostile", Value: "hostile"},
										{Name: "Secret", Value: "secret"},
									},
								},
								{
									Type:        discordgo.ApplicationCommandOptionBoolean,
									Name:        "hidden",
									Description: "Hide the combatant",
								},
							},
						},
						{
							Name:        SubStart,
							Description: "Begin round one",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "first",
									Description: "Faction acting first",
									Choices:     factionChoices(),
								},
							},
						},
						{
							Name:        SubTurn,
							Description: "Take a turn",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "actor",
									Description: "Actor ID (defaults to your selection or character)",
								},
							},
						},
						{
							Name:        SubStatus,
							Description: "Show remaining turns",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        SubEnd,
							Description: "End the encounter",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
					},
				},
			},
		},
	}
}

// parseDisposition maps the join option onto a token disposition
func parseDisposition(s string) combat.Disposition {
	switch s {
	case "friendly":
		return combat.DispositionFriendly
	case "neutral":
		return combat.DispositionNeutral
	case "secret":
		return combat.DispositionSecret
	default:
		return combat.DispositionHostile
	}
}
