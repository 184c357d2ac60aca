package encounter_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/combat"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/notify"
	mocknotify "github.com/KirkDiggler/projectfu-discord/internal/notify/mock"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/actors"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/encounters"
	mockencrepo "github.com/KirkDiggler/projectfu-discord/internal/repositories/encounters/mock"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/users"
	"github.com/KirkDiggler/projectfu-discord/internal/services/character"
	mockcharacter "github.com/KirkDiggler/projectfu-discord/internal/services/character/mock"
	"github.com/KirkDiggler/projectfu-discord/internal/services/encounter"
	"github.com/KirkDiggler/projectfu-discord/internal/testutils"
	"github.com/KirkDiggler/projectfu-discord/internal/uuid"
	mockuuid "github.com/KirkDiggler/projectfu-discord/internal/uuid/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service    encounter.Service
	characters character.Service
	bus        *events.Bus
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	characters := character.NewService(&character.ServiceConfig{
		Actors: actors.NewInMemoryRepository(),
		Users:  users.NewInMemoryRepository(),
	})
	for _, a := range []*actor.Actor{
		testutils.CreateTestCharacter("hero", "Hero"),
		testutils.CreateTestCharacter("mage", "Mage"),
		testutils.CreateTestNPC("boss", "Boss", actor.Rank{Value: actor.RankChampion, Replace: 2}),
	} {
		_, err := characters.SaveActor(ctx, a)
		require.NoError(t, err)
	}

	bus := events.NewBus()
	encounter.AttachActorGuard(bus)

	svc := encounter.NewService(&encounter.ServiceConfig{
		Repository:       encounters.NewInMemoryRepository(),
		CharacterService: characters,
		Bus:              bus,
		UUIDGenerator:    uuid.NewSequence("id"),
	})
	return &fixture{service: svc, characters: characters, bus: bus}
}

func (f *fixture) join(t *testing.T, encID, actorID string, disposition combat.Disposition) *combat.Combatant {
	t.Helper()
	c, created, err := f.service.AddCombatant(context.Background(), &encounter.AddCombatantInput{
		EncounterID: encID,
		ActorID:     actorID,
		Token:       &combat.Token{ID: "tok-" + actorID, ActorID: actorID, Disposition: disposition},
	})
	require.NoError(t, err)
	require.True(t, created)
	return c
}

func TestEncounter_TurnOrder(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	enc, err := f.service.CreateEncounter(ctx, &encounter.CreateEncounterInput{ChannelID: "chan-1", Name: "Ambush", UserID: "gm"})
	require.NoError(t, err)

	hero := f.join(t, enc.ID, "hero", combat.DispositionFriendly)
	mage := f.join(t, enc.ID, "mage", combat.DispositionFriendly)
	boss := f.join(t, enc.ID, "boss", combat.DispositionHostile)
	assert.Equal(t, "Hero", hero.Name)

	summary, err := f.service.TurnSummary(ctx, enc.ID)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, combat.FactionHostile, summary[2].Faction)
	assert.Equal(t, 2, summary[2].Total, "champion replacing two soldiers takes two turns")

	enc, err = f.service.StartEncounter(ctx, enc.ID, combat.FactionFriendly)
	require.NoError(t, err)
	assert.Equal(t, 1, enc.Round)

	_, err = f.service.TakeTurn(ctx, enc.ID, boss.ID)
	assert.True(t, dnderr.IsFailedPrecondition(err), "hostiles wait for the friendly faction")

	steps := []struct {
		who     *combat.Combatant
		round   int
		current combat.Faction
	}{
		{hero, 1, combat.FactionHostile},
		{boss, 1, combat.FactionFriendly},
		{mage, 1, combat.FactionHostile},
		{boss, 2, combat.FactionFriendly},
	}
	for _, step := range steps {
		enc, err = f.service.TakeTurn(ctx, enc.ID, step.who.ID)
		require.NoError(t, err, step.who.Name)
		assert.Equal(t, step.round, enc.Round, step.who.Name)
		assert.Equal(t, step.current, enc.CurrentFaction, step.who.Name)
	}
}

func TestEncounter_TurnsFollowCurrentRank(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	enc, err := f.service.CreateEncounter(ctx, &encounter.CreateEncounterInput{ChannelID: "chan-1"})
	require.NoError(t, err)
	boss := f.join(t, enc.ID, "boss", combat.DispositionHostile)

	a, err := f.characters.GetActor(ctx, "boss")
	require.NoError(t, err)
	a.Rank = &actor.Rank{Value: actor.RankChampion, Replace: 4}
	_, err = f.characters.SaveActor(ctx, a)
	require.NoError(t, err)

	summary, err := f.service.TurnSummary(ctx, enc.ID)
	require.NoError(t, err)
	assert.Equal(t, boss.ID, summary[0].Combatant.ID)
	assert.Equal(t, 4, summary[0].Total)
}

func TestEncounter_OneOpenEncounterPerChannel(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.service.CreateEncounter(ctx, &encounter.CreateEncounterInput{ChannelID: "chan-1"})
	require.NoError(t, err)
	assert.Equal(t, "Encounter", first.Name)

	_, err = f.service.CreateEncounter(ctx, &encounter.CreateEncounterInput{ChannelID: "chan-1"})
	assert.True(t, dnderr.IsAlreadyExists(err))

	require.NoError(t, f.service.EndEncounter(ctx, first.ID))
	active, err := f.service.GetActiveEncounter(ctx, "chan-1")
	require.NoError(t, err)
	assert.Nil(t, active)

	_, err = f.service.CreateEncounter(ctx, &encounter.CreateEncounterInput{ChannelID: "chan-1"})
	assert.NoError(t, err)
}

func TestEncounter_TokenWithoutActorIsVetoed(t *testing.T) {
	f := setup(t)
	ctrl := gomock.NewController(t)
	notifier := mocknotify.NewMockNotifier(ctrl)
	ctx := notify.WithNotifier(context.Background(), notifier)

	enc, err := f.service.CreateEncounter(ctx, &encounter.CreateEncounterInput{ChannelID: "chan-1"})
	require.NoError(t, err)

	notifier.EXPECT().Notify(ctx, notify.LevelInfo, encounter.KeyTokenWithoutActor).Return(nil).Times(1)

	c, created, err := f.service.AddCombatant(ctx, &encounter.AddCombatantInput{
		EncounterID: enc.ID,
		Token:       &combat.Token{ID: "tok-1", Name: "Barrel"},
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, c)

	stored, err := f.service.GetEncounter(ctx, enc.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Combatants)
}

func TestEncounter_RemoveCombatant(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	enc, err := f.service.CreateEncounter(ctx, &encounter.CreateEncounterInput{ChannelID: "chan-1"})
	require.NoError(t, err)
	hero := f.join(t, enc.ID, "hero", combat.DispositionFriendly)

	require.NoError(t, f.service.RemoveCombatant(ctx, enc.ID, hero.ID))
	assert.True(t, dnderr.IsNotFound(f.service.RemoveCombatant(ctx, enc.ID, hero.ID)))
}

func TestCreateEncounter_Mocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mockencrepo.NewMockRepository(ctrl)
	mockCharService := mockcharacter.NewMockService(ctrl)
	mockUUID := mockuuid.NewMockGenerator(ctrl)

	svc := encounter.NewService(&encounter.ServiceConfig{
		Repository:       mockRepo,
		CharacterService: mockCharService,
		Bus:              events.NewBus(),
		UUIDGenerator:    mockUUID,
	})

	t.Run("creates when the channel is free", func(t *testing.T) {
		mockRepo.EXPECT().GetActiveByChannel(gomock.Any(), "chan-1").Return(nil, nil)
		mockUUID.EXPECT().New().Return("enc-1")
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, enc *combat.Encounter) error {
				assert.Equal(t, "enc-1", enc.ID)
				assert.Equal(t, combat.EncounterStatusSetup, enc.Status)
				return nil
			})

		enc, err := svc.CreateEncounter(context.Background(), &encounter.CreateEncounterInput{ChannelID: "chan-1", Name: "Bridge"})
		require.NoError(t, err)
		assert.Equal(t, "Bridge", enc.Name)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.CreateEncounter(context.Background(), nil)
		assert.True(t, dnderr.IsInvalidArgument(err))

		_, err = svc.CreateEncounter(context.Background(), &encounter.CreateEncounterInput{Name: "No channel"})
		assert.True(t, dnderr.IsInvalidArgument(err))
	})
}
