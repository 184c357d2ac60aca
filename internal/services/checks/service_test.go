package checks_test

import (
	"context"
	"testing"

	mockdice "github.com/KirkDiggler/projectfu-discord/internal/dice/mock"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/i18n"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/actors"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/messages"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/users"
	"github.com/KirkDiggler/projectfu-discord/internal/services/character"
	"github.com/KirkDiggler/projectfu-discord/internal/services/chatlog"
	"github.com/KirkDiggler/projectfu-discord/internal/services/checks"
	"github.com/KirkDiggler/projectfu-discord/internal/templates"
	"github.com/KirkDiggler/projectfu-discord/internal/testutils"
	"github.com/KirkDiggler/projectfu-discord/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service checks.Service
	chatLog chatlog.Service
	bus     *events.Bus
	roller  *mockdice.ManualMockRoller
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	characters := character.NewService(&character.ServiceConfig{
		Actors: actors.NewInMemoryRepository(),
		Users:  users.NewInMemoryRepository(),
	})
	hero := testutils.CreateTestCharacter("hero", "Hero")
	hero.Attributes.Might = actor.AttributeScore{Base: 10, Current: 10}
	_, err := characters.SaveActor(ctx, hero)
	require.NoError(t, err)
	_, err = characters.SaveActor(ctx, testutils.CreateTestNPC("goblin", "Goblin", actor.Rank{Value: actor.RankSoldier}))
	require.NoError(t, err)

	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)

	bus := events.NewBus()
	chatLog := chatlog.NewService(&chatlog.ServiceConfig{
		Repository:    messages.NewInMemoryRepository(),
		Bus:           bus,
		UUIDGenerator: uuid.NewSequence("msg"),
	})

	roller := mockdice.NewManualMockRoller()
	svc := checks.NewService(&checks.ServiceConfig{
		CharacterService: characters,
		ChatLog:          chatLog,
		Bus:              bus,
		Roller:           roller,
		Renderer:         templates.Must(),
		Localizer:        bundle.For("en"),
		UUIDGenerator:    uuid.NewSequence("check"),
	})

	return &fixture{service: svc, chatLog: chatLog, bus: bus, roller: roller}
}

func TestRoll_AccuracyWithDamageAndTargets(t *testing.T) {
	f := setup(t)
	f.roller.SetRolls([]int{7, 4})

	out, err := f.service.Roll(context.Background(), &checks.RollInput{
		UserID:    "user-1",
		ChannelID: "chan-1",
		ActorID:   "hero",
		Type:      check.TypeAccuracy,
		Primary:   check.AttributeMight,
		Secondary: check.AttributeDexterity,
		Modifiers: []check.Modifier{{Label: "Weapon", Value: 1}},
		Details:   check.Details{Name: "Iron Sword"},
		Damage: &check.DamageData{
			Type:      affinity.DamagePhysical,
			Modifiers: []check.BonusDamage{{Label: check.BaseDamageLabel, Value: 5}, {Label: "Sharp", Value: 2}},
		},
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)

	c := out.Check
	require.NotNil(t, c.Result)
	assert.Equal(t, 12, c.Result.Total)
	assert.Equal(t, 7, c.Result.HR)
	assert.False(t, c.Result.Critical)

	damage := check.Inspect(c).GetDamage()
	require.NotNil(t, damage)
	require.NotNil(t, damage.ModifierTotal)
	assert.Equal(t, 7, *damage.ModifierTotal)
	assert.Equal(t, 14, damage.TotalOrZero())

	targets := check.Inspect(c).GetTargets()
	require.Len(t, targets, 1)
	assert.Equal(t, 10, targets[0].Difficulty, "soldier NPC fixture has DEF 10")
	assert.Equal(t, check.DefensePhysical, *check.Inspect(c).GetTargetedDefense())

	stored, err := f.chatLog.Get(context.Background(), out.Message.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hero", stored.Speaker.Alias)
	assert.Contains(t, stored.Content, "Iron Sword")
	assert.Contains(t, stored.Content, "Hit")
	assert.Contains(t, stored.Content, "physical")

	fromMessage := check.Inspect(stored).GetDamage()
	require.NotNil(t, fromMessage)
	assert.Equal(t, 14, fromMessage.TotalOrZero())
}

func TestRoll_HrZeroDropsHighRoll(t *testing.T) {
	f := setup(t)
	f.roller.SetRolls([]int{9, 3})

	out, err := f.service.Roll(context.Background(), &checks.RollInput{
		ChannelID: "chan-1",
		ActorID:   "hero",
		Primary:   check.AttributeMight,
		Secondary: check.AttributeInsight,
		HrZero:    true,
		Damage:    &check.DamageData{Type: affinity.DamageFire, Modifiers: []check.BonusDamage{{Label: check.BaseDamageLabel, Value: 10}}},
	})
	require.NoError(t, err)

	hrZero := check.Inspect(out.Check).GetHrZero()
	require.NotNil(t, hrZero)
	assert.True(t, *hrZero)
	assert.Equal(t, 10, check.Inspect(out.Check).GetDamage().TotalOrZero())
}

func TestRoll_CriticalAndFumble(t *testing.T) {
	tests := []struct {
		name     string
		rolls    []int
		critical bool
		fumble   bool
		hit      bool
	}{
		{name: "matching sixes crit", rolls: []int{6, 6}, critical: true, hit: true},
		{name: "matching fives do not crit", rolls: []int{5, 5}, hit: true},
		{name: "double ones fumble", rolls: []int{1, 1}, fumble: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			f.roller.SetRolls(tt.rolls)

			out, err := f.service.Roll(context.Background(), &checks.RollInput{
				ChannelID:  "chan-1",
				ActorID:    "hero",
				Primary:    check.AttributeDexterity,
				Secondary:  check.AttributeDexterity,
				Difficulty: 20,
				TargetIDs:  []string{"goblin"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.critical, out.Check.Result.Critical)
			assert.Equal(t, tt.fumble, out.Check.Result.Fumble)
			assert.Equal(t, 20, *check.Inspect(out.Check).GetDifficulty())

			if tt.hit {
				assert.Contains(t, out.Message.Content, "Hit")
			} else {
				assert.Contains(t, out.Message.Content, "Miss")
			}
		})
	}
}

func TestRoll_PrepareListenersAndCallbacks(t *testing.T) {
	f := setup(t)
	f.roller.SetRolls([]int{4, 4})

	f.bus.Subscribe(events.EventTypePrepareCheck, &events.ListenerFunc{
		Name:  "infusion",
		Order: events.PriorityFeatures,
		Callback: func(_ context.Context, e events.Event) error {
			check.Configure(e.(*events.PrepareCheckEvent).Check).AddDamageBonus("Infusion", 5)
			return nil
		},
	})

	out, err := f.service.Roll(context.Background(), &checks.RollInput{
		ChannelID: "chan-1",
		ActorID:   "hero",
		Primary:   check.AttributeMight,
		Secondary: check.AttributeMight,
		Callbacks: []check.Callback{func(c *check.Check) {
			check.Configure(c).SetDamage(affinity.DamageIce, 3)
		}},
	})
	require.NoError(t, err)

	damage := check.Inspect(out.Check).GetDamage()
	require.NotNil(t, damage)
	assert.Equal(t, affinity.DamageIce, damage.Type)
	assert.Len(t, damage.Modifiers, 2)
	assert.Equal(t, 3+5+4, damage.TotalOrZero())
}

func TestRoll_VetoedByListener(t *testing.T) {
	f := setup(t)
	f.bus.Subscribe(events.EventTypePrepareCheck, &events.ListenerFunc{
		Name: "veto",
		Callback: func(_ context.Context, e events.Event) error {
			e.Cancel()
			return nil
		},
	})

	_, err := f.service.Roll(context.Background(), &checks.RollInput{
		ChannelID: "chan-1",
		ActorID:   "hero",
		Primary:   check.AttributeMight,
		Secondary: check.AttributeMight,
	})
	assert.True(t, dnderr.IsVetoed(err))
}

func TestRoll_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.service.Roll(ctx, nil)
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = f.service.Roll(ctx, &checks.RollInput{ActorID: "hero", Primary: check.AttributeMight, Secondary: check.AttributeMight})
	assert.True(t, dnderr.IsInvalidArgument(err), "channel is required")

	_, err = f.service.Roll(ctx, &checks.RollInput{ChannelID: "c", ActorID: "nobody", Primary: check.AttributeMight, Secondary: check.AttributeMight})
	assert.True(t, dnderr.IsNotFound(err))

	_, err = f.service.Roll(ctx, &checks.RollInput{ChannelID: "c", ActorID: "hero", Primary: "str", Secondary: check.AttributeMight})
	assert.True(t, dnderr.IsInvalidArgument(err))
}
