package damage_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/KirkDiggler/projectfu-discord/internal/domain/actor"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/affinity"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/chat"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/check"
	dnderr "github.com/KirkDiggler/projectfu-discord/internal/errors"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/i18n"
	"github.com/KirkDiggler/projectfu-discord/internal/notify"
	mocknotify "github.com/KirkDiggler/projectfu-discord/internal/notify/mock"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/actors"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/messages"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/users"
	"github.com/KirkDiggler/projectfu-discord/internal/services/character"
	mockcharacter "github.com/KirkDiggler/projectfu-discord/internal/services/character/mock"
	"github.com/KirkDiggler/projectfu-discord/internal/services/chatlog"
	"github.com/KirkDiggler/projectfu-discord/internal/services/damage"
	"github.com/KirkDiggler/projectfu-discord/internal/templates"
	"github.com/KirkDiggler/projectfu-discord/internal/testutils"
	"github.com/KirkDiggler/projectfu-discord/internal/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ApplyDamageTestSuite runs damage application against in-memory storage
type ApplyDamageTestSuite struct {
	suite.Suite
	ctx        context.Context
	bus        *events.Bus
	characters character.Service
	chatLog    chatlog.Service
	localizer  *i18n.Localizer
	service    damage.Service
	applied    []*events.DamageAppliedEvent
	mu         sync.Mutex
}

func (s *ApplyDamageTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.applied = nil

	bundle, err := i18n.LoadEmbedded()
	s.Require().NoError(err)
	s.localizer = bundle.For("en")

	s.characters = character.NewService(&character.ServiceConfig{
		Actors: actors.NewInMemoryRepository(),
		Users:  users.NewInMemoryRepository(),
	})
	s.chatLog = chatlog.NewService(&chatlog.ServiceConfig{
		Repository:    messages.NewInMemoryRepository(),
		Bus:           s.bus,
		UUIDGenerator: uuid.NewSequence("msg"),
	})
	s.service = damage.NewService(&damage.ServiceConfig{
		CharacterService: s.characters,
		ChatLog:          s.chatLog,
		Bus:              s.bus,
		Renderer:         templates.Must(),
		Localizer:        s.localizer,
	})

	s.bus.Subscribe(events.EventTypeDamageApplied, &events.ListenerFunc{
		Name: "record",
		Callback: func(_ context.Context, e events.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.applied = append(s.applied, e.(*events.DamageAppliedEvent))
			return nil
		},
	})
}

func TestApplyDamageSuite(t *testing.T) {
	suite.Run(t, new(ApplyDamageTestSuite))
}

// postDamage posts a check message dealing total damage of the given type
func (s *ApplyDamageTestSuite) postDamage(t affinity.DamageType, total int) *chat.Message {
	c := &check.Check{ID: "check-1", Type: check.TypeAccuracy, Details: check.Details{Name: "Iron Sword"}}
	check.Configure(c).SetDamage(t, total)
	c.AdditionalData.Damage.Resolve(0, true)

	msg := &chat.Message{ChannelID: "chan-1", Speaker: chat.Speaker{ActorID: "hero", Alias: "Hero"}}
	s.Require().NoError(msg.SetCheck(c))

	stored, err := s.chatLog.Create(s.ctx, msg)
	s.Require().NoError(err)
	return stored
}

func (s *ApplyDamageTestSuite) saveTarget(id string, t affinity.DamageType, v affinity.Value) {
	a := testutils.WithAffinity(testutils.CreateTestNPC(id, "Target "+id, actor.Rank{Value: actor.RankSoldier}), t, v)
	_, err := s.characters.SaveActor(s.ctx, a)
	s.Require().NoError(err)
}

func (s *ApplyDamageTestSuite) hp(id string) int {
	a, err := s.characters.GetActor(s.ctx, id)
	s.Require().NoError(err)
	return a.Resources.HP.Value
}

func (s *ApplyDamageTestSuite) TestResistance_EndToEnd() {
	s.saveTarget("t1", affinity.DamagePhysical, affinity.Resistance)
	s.Require().NoError(s.characters.Select(s.ctx, "user-1", []string{"t1"}))
	msg := s.postDamage(affinity.DamagePhysical, 20)

	out, err := s.service.ApplyDamage(s.ctx, &damage.ApplyDamageInput{UserID: "user-1", MessageID: msg.ID})
	s.Require().NoError(err)
	s.Require().Len(out.Applications, 1)
	s.Equal(-10, out.Applications[0].Delta)
	s.Equal(40, s.hp("t1"))

	out, err = s.service.ApplyDamage(s.ctx, &damage.ApplyDamageInput{
		UserID:    "user-1",
		MessageID: msg.ID,
		Modifiers: affinity.ClickModifiers{Shift: true},
	})
	s.Require().NoError(err)
	s.Equal(-20, out.Applications[0].Delta)
	s.Equal(20, s.hp("t1"))

	report := out.Applications[0].Message
	s.Equal("Resistance", report.Flavor)
	s.Equal("Hero", report.Speaker.Alias)
	s.Equal("Iron Sword pierces Target t1's resistance for 20 physical damage.", report.Content)
}

func (s *ApplyDamageTestSuite) TestAffinityTable() {
	tests := []struct {
		name   string
		value  affinity.Value
		mods   affinity.ClickModifiers
		wantHP int
	}{
		{name: "none", value: affinity.None, wantHP: 38},
		{name: "vulnerability", value: affinity.Vulnerability, wantHP: 26},
		{name: "resistance rounds down", value: affinity.Resistance, wantHP: 44},
		{name: "immunity", value: affinity.Immunity, wantHP: 50},
		{name: "immunity ignores shift alone", value: affinity.Immunity, mods: affinity.ClickModifiers{Shift: true}, wantHP: 50},
		{name: "immunity pierced", value: affinity.Immunity, mods: affinity.ClickModifiers{Shift: true, Ctrl: true}, wantHP: 38},
		{name: "absorption heals up to max", value: affinity.Absorption, wantHP: 50},
		{name: "unknown affinity acts as none", value: affinity.Value(9), wantHP: 38},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.saveTarget("t1", affinity.DamageFire, tt.value)
			s.Require().NoError(s.characters.BindCharacter(s.ctx, "user-1", "t1"))
			msg := s.postDamage(affinity.DamageFire, 12)

			_, err := s.service.ApplyDamage(s.ctx, &damage.ApplyDamageInput{UserID: "user-1", MessageID: msg.ID, Modifiers: tt.mods})
			s.Require().NoError(err)
			s.Equal(tt.wantHP, s.hp("t1"))
		})
	}
}

func (s *ApplyDamageTestSuite) TestAbsorptionHeals() {
	s.saveTarget("t1", affinity.DamageDark, affinity.Absorption)
	_, err := s.characters.ModifyResource(s.ctx, "t1", actor.ResourceHP, -30)
	s.Require().NoError(err)
	s.Require().NoError(s.characters.BindCharacter(s.ctx, "user-1", "t1"))
	msg := s.postDamage(affinity.DamageDark, 10)

	out, err := s.service.ApplyDamage(s.ctx, &damage.ApplyDamageInput{UserID: "user-1", MessageID: msg.ID})
	s.Require().NoError(err)
	s.Equal(10, out.Applications[0].Delta)
	s.Equal(30, s.hp("t1"))
	s.Equal("Absorption", out.Applications[0].Message.Flavor)
}

func (s *ApplyDamageTestSuite) TestSeveralTargets() {
	s.saveTarget("t1", affinity.DamageIce, affinity.None)
	s.saveTarget("t2", affinity.DamageIce, affinity.Vulnerability)
	s.saveTarget("t3", affinity.DamageIce, affinity.Immunity)
	s.Require().NoError(s.characters.Select(s.ctx, "user-1", []string{"t1", "t2", "t3"}))
	msg := s.postDamage(affinity.DamageIce, 5)

	out, err := s.service.ApplyDamage(s.ctx, &damage.ApplyDamageInput{UserID: "user-1", MessageID: msg.ID})
	s.Require().NoError(err)
	s.Require().Len(out.Applications, 3)
	s.Equal("t1", out.Applications[0].ActorID)
	s.Equal(-5, out.Applications[0].Delta)
	s.Equal(-10, out.Applications[1].Delta)
	s.Equal(0, out.Applications[2].Delta)
	s.Len(s.applied, 3)

	recent, err := s.chatLog.ListRecent(s.ctx, "chan-1", 10)
	s.Require().NoError(err)
	s.Len(recent, 4, "the check plus one report per target")
}

func (s *ApplyDamageTestSuite) TestMessageWithoutDamage() {
	msg, err := s.chatLog.Create(s.ctx, &chat.Message{ChannelID: "chan-1", Content: "just talking"})
	s.Require().NoError(err)

	_, err = s.service.ApplyDamage(s.ctx, &damage.ApplyDamageInput{UserID: "user-1", MessageID: msg.ID})
	s.True(dnderr.IsFailedPrecondition(err))
}

func (s *ApplyDamageTestSuite) TestRenderAddsButtons() {
	damage.AttachApplyDamage(s.bus, s.localizer)

	msg := s.postDamage(affinity.DamageBolt, 8)
	actions, err := s.chatLog.Render(s.ctx, msg)
	s.Require().NoError(err)
	s.Require().Len(actions, 3)
	s.Equal(damage.CustomID(msg.ID, affinity.ClickModifiers{}), actions[0].ID)
	s.Equal("Apply damage", actions[0].Label)
	s.Equal(damage.CustomID(msg.ID, affinity.ClickModifiers{Shift: true}), actions[1].ID)
	s.Equal(damage.CustomID(msg.ID, affinity.ClickModifiers{Shift: true, Ctrl: true}), actions[2].ID)

	plain, err := s.chatLog.Render(s.ctx, &chat.Message{ID: "plain", ChannelID: "chan-1"})
	s.Require().NoError(err)
	s.Empty(plain)
}

func english(t *testing.T) *i18n.Localizer {
	t.Helper()
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	return bundle.For("en")
}

func TestApplyDamage_NoActorsSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	characters := mockcharacter.NewMockService(ctrl)
	notifier := mocknotify.NewMockNotifier(ctrl)
	bus := events.NewBus()

	chatLog := chatlog.NewService(&chatlog.ServiceConfig{Repository: messages.NewInMemoryRepository(), Bus: bus})
	c := &check.Check{Details: check.Details{Name: "Fireball"}}
	check.Configure(c).SetDamage(affinity.DamageFire, 20)
	c.AdditionalData.Damage.Resolve(5, false)
	msg := &chat.Message{ID: "m1", ChannelID: "chan-1"}
	if err := msg.SetCheck(c); err != nil {
		t.Fatal(err)
	}
	if _, err := chatLog.Create(context.Background(), msg); err != nil {
		t.Fatal(err)
	}

	svc := damage.NewService(&damage.ServiceConfig{
		CharacterService: characters,
		ChatLog:          chatLog,
		Bus:              bus,
		Renderer:         templates.Must(),
		Localizer:        english(t),
	})

	ctx := notify.WithNotifier(context.Background(), notifier)
	characters.EXPECT().ResolveTargets(ctx, "user-1").Return(nil, nil)
	notifier.EXPECT().Notify(ctx, notify.LevelError, damage.KeyNoActorsSelected).Return(nil).Times(1)
	// No ModifyResource expectation: any mutation fails the test

	_, err := svc.ApplyDamage(ctx, &damage.ApplyDamageInput{UserID: "user-1", MessageID: "m1"})
	if !dnderr.IsFailedPrecondition(err) {
		t.Fatalf("want failed precondition, got %v", err)
	}
	if key, ok := dnderr.LocalizationKey(err); !ok || key != damage.KeyNoActorsSelected {
		t.Fatalf("want localization key %s, got %q", damage.KeyNoActorsSelected, key)
	}
	recent, _ := chatLog.ListRecent(context.Background(), "chan-1", 10)
	if len(recent) != 1 {
		t.Fatalf("no report messages expected, got %d messages", len(recent))
	}
}

func TestApplyDamage_OneTargetFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	characters := mockcharacter.NewMockService(ctrl)
	bus := events.NewBus()

	chatLog := chatlog.NewService(&chatlog.ServiceConfig{Repository: messages.NewInMemoryRepository(), Bus: bus})
	c := &check.Check{Details: check.Details{Name: "Fireball"}}
	check.Configure(c).SetDamage(affinity.DamageFire, 10)
	c.AdditionalData.Damage.Resolve(0, true)
	msg := &chat.Message{ID: "m1", ChannelID: "chan-1"}
	if err := msg.SetCheck(c); err != nil {
		t.Fatal(err)
	}
	if _, err := chatLog.Create(context.Background(), msg); err != nil {
		t.Fatal(err)
	}

	svc := damage.NewService(&damage.ServiceConfig{
		CharacterService: characters,
		ChatLog:          chatLog,
		Bus:              bus,
		Renderer:         templates.Must(),
		Localizer:        english(t),
	})

	ok := testutils.CreateTestCharacter("ok", "Standing")
	broken := testutils.CreateTestCharacter("broken", "Broken")
	updated := ok.Clone()
	updated.Resources.HP.Value = 40

	ctx := context.Background()
	characters.EXPECT().ResolveTargets(ctx, "user-1").Return([]*actor.Actor{ok, broken}, nil)
	characters.EXPECT().ModifyResource(ctx, "ok", actor.ResourceHP, -10).Return(updated, nil)
	characters.EXPECT().ModifyResource(ctx, "broken", actor.ResourceHP, -10).Return(nil, errors.New("redis unavailable"))

	_, err := svc.ApplyDamage(ctx, &damage.ApplyDamageInput{UserID: "user-1", MessageID: "m1"})
	if err == nil {
		t.Fatal("expected the failed update to surface")
	}

	recent, _ := chatLog.ListRecent(ctx, "chan-1", 10)
	if len(recent) != 2 {
		t.Fatalf("the healthy target should still be reported, got %d messages", len(recent))
	}
}

func TestTrigger_DropsOverlappingClicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	characters := mockcharacter.NewMockService(ctrl)
	bus := events.NewBus()

	chatLog := chatlog.NewService(&chatlog.ServiceConfig{Repository: messages.NewInMemoryRepository(), Bus: bus})
	c := &check.Check{}
	check.Configure(c).SetDamage(affinity.DamageAir, 4)
	c.AdditionalData.Damage.Resolve(0, true)
	msg := &chat.Message{ID: "m1", ChannelID: "chan-1"}
	if err := msg.SetCheck(c); err != nil {
		t.Fatal(err)
	}
	if _, err := chatLog.Create(context.Background(), msg); err != nil {
		t.Fatal(err)
	}

	svc := damage.NewService(&damage.ServiceConfig{
		CharacterService: characters,
		ChatLog:          chatLog,
		Bus:              bus,
		Renderer:         templates.Must(),
		Localizer:        english(t),
	})

	started := make(chan struct{})
	release := make(chan struct{})
	characters.EXPECT().ResolveTargets(gomock.Any(), "user-1").
		DoAndReturn(func(context.Context, string) ([]*actor.Actor, error) {
			close(started)
			<-release
			return nil, errors.New("selection lookup failed")
		})

	input := &damage.ApplyDamageInput{UserID: "user-1", MessageID: "m1"}
	done := make(chan error, 1)
	go func() {
		_, _, err := svc.Trigger(context.Background(), input)
		done <- err
	}()

	<-started
	ran, _, err := svc.Trigger(context.Background(), input)
	if ran || err != nil {
		t.Fatalf("overlapping click should be dropped, got ran=%v err=%v", ran, err)
	}

	close(release)
	if err := <-done; err == nil {
		t.Fatal("first click should report its failure")
	}

	// The latch is released after a failure
	characters.EXPECT().ResolveTargets(gomock.Any(), "user-1").Return(nil, errors.New("still failing"))
	ran, _, err = svc.Trigger(context.Background(), input)
	if !ran || err == nil {
		t.Fatalf("click after completion should run, got ran=%v err=%v", ran, err)
	}
}
