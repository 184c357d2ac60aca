package discord

import (
	"context"
	"strings"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/services/checks"
)

// rollCheck handles /fu check roll
func (h *Handler) rollCheck(ctx context.Context, req *commandRequest) (string, error) {
	opts := req.options

	actorID, err := h.speaker(ctx, req)
	if err != nil {
		return "", err
	}

	input := &checks.RollInput{
		UserID:          req.userID,
		ChannelID:       req.channelID,
		ActorID:         actorID,
		Type:            check.TypeAttribute,
		Primary:         check.Attribute(opts.String("primary")),
		Secondary:       check.Attribute(opts.String("secondary")),
		Details:         check.Details{Name: opts.String("name")},
		Difficulty:      opts.Int("difficulty"),
		HrZero:          opts.Bool("hr-zero"),
		TargetedDefense: check.Defense(opts.String("defense")),
		TargetIDs:       opts.List("targets"),
	}
	if bonus := opts.Int("bonus"); bonus != 0 {
		input.Modifiers = []check.Modifier{{Label: "FU.CheckBonus", Value: bonus}}
	}

	if opts.Has("damage") {
		damageType := affinity.DamagePhysical
		if raw := opts.String("type"); raw != "" {
			damageType, err = affinity.ParseDamageType(raw)
			if err != nil {
				return "", dnderr.InvalidArgument(err.Error())
			}
		}
		input.Type = check.TypeAccuracy
		input.Damage = &check.DamageData{
			Type:      damageType,
			Modifiers: []check.BonusDamage{{Label: check.BaseDamageLabel, Value: opts.Int("damage")}},
		}
	} else if len(input.TargetIDs) > 0 {
		input.Type = check.TypeAccuracy
	}

	out, err := h.checks.Roll(ctx, input)
	if err != nil {
		return "", err
	}

	name := out.Check.Details.Name
	if name == "" {
		name = strings.ToUpper(string(input.Primary)) + " + " + strings.ToUpper(string(input.Secondary))
	}
	return req.localizer.Format("FU.CheckRolled", map[string]string{"name": name}), nil
}

// speaker is the actor named by the actor option, else the user's first
// selected actor or bound character
func (h *Handler) speaker(ctx context.Context, req *commandRequest) (string, error) {
	if id := req.options.String("actor"); id != "" {
		return id, nil
	}
	targets, err := h.characters.ResolveTargets(ctx, req.userID)
	if err != nil {
		return "", err
	}
	if len(targets) == 0 {
		return "", dnderr.FailedPrecondition("no actor selected or bound").
			WithLocalizationKey(KeyNoActor)
	}
	return targets[0].ID, nil
}
