package discord

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/combat"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/i18n"
	encounterService "github.com/KirkDiggler/projectfu-discord/internal/services/encounter"
)

const (
	keyCombatNotFound    = "FU.CombatNotFound"
	keyCombatNoCombatant = "FU.CombatNoCombatant"
)

// activeEncounter returns the channel's open encounter
func (h *Handler) activeEncounter(ctx context.Context, channelID string) (*combat.Encounter, error) {
	enc, err := h.encounters.GetActiveEncounter(ctx, channelID)
	if err != nil && !dnderr.IsNotFound(err) {
		return nil, err
	}
	if enc == nil {
		return nil, dnderr.FailedPrecondition("no encounter in channel").
			WithLocalizationKey(keyCombatNotFound)
	}
	return enc, nil
}

// createEncounter handles /fu combat create
func (h *Handler) createEncounter(ctx context.Context, req *commandRequest) (string, error) {
	enc, err := h.encounters.CreateEncounter(ctx, &encounterService.CreateEncounterInput{
		ChannelID: req.channelID,
		Name:      req.options.String("name"),
		UserID:    req.userID,
	})
	if err != nil {
		return "", err
	}
	return req.localizer.Format("FU.CombatCreated", map[string]string{"name": enc.Name}), nil
}

// joinEncounter handles /fu combat join. A token without an actor is offered
// to the preCreateCombatant listeners like any other.
func (h *Handler) joinEncounter(ctx context.Context, req *commandRequest) (string, error) {
	enc, err := h.activeEncounter(ctx, req.channelID)
	if err != nil {
		return "", err
	}

	actorID := req.options.String("actor")
	if actorID == "" {
		targets, err := h.characters.ResolveTargets(ctx, req.userID)
		if err != nil {
			return "", err
		}
		if len(targets) > 0 {
			actorID = targets[0].ID
		}
	}

	disposition := parseDisposition(req.options.String("disposition"))
	if !req.options.Has("disposition") && actorID != "" {
		a, err := h.characters.GetActor(ctx, actorID)
		if err != nil {
			return "", err
		}
		if a.Type == actor.TypeCharacter {
			disposition = combat.DispositionFriendly
		}
	}

	name := req.options.String("name")
	_, created, err := h.encounters.AddCombatant(ctx, &encounterService.AddCombatantInput{
		EncounterID: enc.ID,
		UserID:      req.userID,
		Name:        name,
		ActorID:     actorID,
		Token: &combat.Token{
			Name:        name,
			ActorID:     actorID,
			Disposition: disposition,
		},
		Hidden: req.options.Bool("hidden"),
	})
	if err != nil {
		return "", err
	}
	if !created {
		return "", dnderr.Vetoed("combatant creation was vetoed")
	}
	return req.localizer.Localize("FU.CombatJoined"), nil
}

// startEncounter handles /fu combat start
func (h *Handler) startEncounter(ctx context.Context, req *commandRequest) (string, error) {
	enc, err := h.activeEncounter(ctx, req.channelID)
	if err != nil {
		return "", err
	}

	first := combat.FactionFriendly
	if req.options.String("first") == string(combat.FactionHostile) {
		first = combat.FactionHostile
	}
	enc, err = h.encounters.StartEncounter(ctx, enc.ID, first)
	if err != nil {
		return "", err
	}
	return req.localizer.Localize("FU.CombatStarted") + "\n" + roundHeader(req.localizer, enc), nil
}

// takeTurn handles /fu combat turn for the user's combatant
func (h *Handler) takeTurn(ctx context.Context, req *commandRequest) (string, error) {
	enc, err := h.activeEncounter(ctx, req.channelID)
	if err != nil {
		return "", err
	}
	actorID, err := h.speaker(ctx, req)
	if err != nil {
		return "", err
	}

	var combatant *combat.Combatant
	for _, id := range enc.Order {
		if c := enc.Combatants[id]; c.ActorID == actorID {
			combatant = c
			break
		}
	}
	if combatant == nil {
		return "", dnderr.FailedPrecondition("actor is not in the encounter").
			WithLocalizationKey(keyCombatNoCombatant)
	}

	enc, err = h.encounters.TakeTurn(ctx, enc.ID, combatant.ID)
	if err != nil {
		return "", err
	}
	return req.localizer.Format("FU.CombatTurnTaken", map[string]string{"name": combatant.Name}) +
		"\n" + roundHeader(req.localizer, enc), nil
}

// encounterStatus handles /fu combat status
func (h *Handler) encounterStatus(ctx context.Context, req *commandRequest) (string, error) {
	enc, err := h.activeEncounter(ctx, req.channelID)
	if err != nil {
		return "", err
	}
	rows, err := h.encounters.TurnSummary(ctx, enc.ID)
	if err != nil {
		return "", err
	}
	return formatTurnSummary(req.localizer, enc, rows), nil
}

// endEncounter handles /fu combat end
func (h *Handler) endEncounter(ctx context.Context, req *commandRequest) (string, error) {
	enc, err := h.activeEncounter(ctx, req.channelID)
	if err != nil {
		return "", err
	}
	if err := h.encounters.EndEncounter(ctx, enc.ID); err != nil {
		return "", err
	}
	return req.localizer.Localize("FU.CombatEnded"), nil
}

func factionLabel(l *i18n.Localizer, f combat.Faction) string {
	if f == combat.FactionFriendly {
		return l.Localize("FU.FactionFriendly")
	}
	return l.Localize("FU.FactionHostile")
}

func roundHeader(l *i18n.Localizer, enc *combat.Encounter) string {
	return l.Format("FU.CombatRound", map[string]string{
		"round":   strconv.Itoa(enc.Round),
		"faction": factionLabel(l, enc.CurrentFaction),
	})
}

func formatTurnSummary(l *i18n.Localizer, enc *combat.Encounter, rows []encounterService.CombatantTurns) string {
	var b strings.Builder
	b.WriteString("**" + enc.Name + "**")
	if enc.Round > 0 {
		b.WriteString("\n" + roundHeader(l, enc))
	}
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(l.Format("FU.CombatSummaryRow", map[string]string{
			"name":      row.Combatant.Name,
			"faction":   factionLabel(l, row.Faction),
			"remaining": strconv.Itoa(row.Remaining),
			"total":     strconv.Itoa(row.Total),
		}))
	}
	return b.String()
}
