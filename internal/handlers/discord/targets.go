package discord

import (
	"context"

	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
)

// selectTargets handles /fu target select
func (h *Handler) selectTargets(ctx context.Context, req *commandRequest) (string, error) {
	ids := req.options.List("actors")
	if len(ids) == 0 {
		return "", dnderr.InvalidArgument("at least one actor ID is required")
	}
	if err := h.characters.Select(ctx, req.userID, ids); err != nil {
		if dnderr.IsNotFound(err) {
			return "", dnderr.Wrap(err, "cannot select").WithLocalizationKey("FU.ActorNotFound")
		}
		return "", err
	}
	return req.localizer.Localize("FU.SelectionUpdated"), nil
}

// clearTargets handles /fu target clear
func (h *Handler) clearTargets(ctx context.Context, req *commandRequest) (string, error) {
	if err := h.characters.ClearSelection(ctx, req.userID); err != nil {
		return "", err
	}
	return req.localizer.Localize("FU.SelectionCleared"), nil
}

// bindCharacter handles /fu target bind
func (h *Handler) bindCharacter(ctx context.Context, req *commandRequest) (string, error) {
	if err := h.characters.BindCharacter(ctx, req.userID, req.options.String("actor")); err != nil {
		if dnderr.IsNotFound(err) {
			return "", dnderr.Wrap(err, "cannot bind").WithLocalizationKey("FU.ActorNotFound")
		}
		return "", err
	}
	return req.localizer.Localize("FU.CharacterBound"), nil
}
