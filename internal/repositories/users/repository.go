package users

//go:generate mockgen -destination=mock/mock_repository.go -package=mockusers -source=repository.go

import "context"

// Repository tracks, per user, the character bound to them and the tokens
// they currently have selected
type Repository interface {
	BindCharacter(ctx context.Context, userID, actorID string) error
	// GetCharacter returns "" when no character is bound
	GetCharacter(ctx context.Context, userID string) (string, error)

	// Select replaces the selection, keeping the given order
	Select(ctx context.Context, userID string, actorIDs []string) error
	ClearSelection(ctx context.Context, userID string) error
	GetSelection(ctx context.Context, userID string) ([]string, error)
}
