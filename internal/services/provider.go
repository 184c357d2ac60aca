package services

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/projectfu-discord/internal/dice"
	"github.com/KirkDiggler/projectfu-discord/internal/domain/classfeature"
	"github.com/KirkDiggler/projectfu-discord/internal/events"
	"github.com/KirkDiggler/projectfu-discord/internal/i18n"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/actors"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/encounters"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/messages"
	"github.com/KirkDiggler/projectfu-discord/internal/repositories/users"
	characterService "github.com/KirkDiggler/projectfu-discord/internal/services/character"
	"github.com/KirkDiggler/projectfu-discord/internal/services/chatlog"
	"github.com/KirkDiggler/projectfu-discord/internal/services/checks"
	"github.com/KirkDiggler/projectfu-discord/internal/services/damage"
	encounterService "github.com/KirkDiggler/projectfu-discord/internal/services/encounter"
	"github.com/KirkDiggler/projectfu-discord/internal/templates"
	"github.com/KirkDiggler/projectfu-discord/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	Bus              *events.Bus
	Registry         *classfeature.Registry
	Bundle           *i18n.Bundle
	CharacterService characterService.Service
	ChatLog          chatlog.Service
	CheckService     checks.Service
	DamageService    damage.Service
	EncounterService encounterService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	// RedisClient backs every repository. Without it everything is kept in memory.
	RedisClient redis.UniversalClient
	MessageTTL  time.Duration

	Sink          chatlog.Sink
	Bundle        *i18n.Bundle
	Locale        string
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
// and the rules listeners attached to the event bus
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	bundle := cfg.Bundle
	if bundle == nil {
		var err error
		bundle, err = i18n.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("failed to load locales: %w", err)
		}
	}
	localizer := bundle.For(cfg.Locale)

	renderer, err := templates.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	registry := classfeature.NewRegistry()
	if err := classfeature.RegisterClassFeatures(registry); err != nil {
		return nil, fmt.Errorf("failed to register class features: %w", err)
	}

	var (
		actorRepo     actors.Repository
		userRepo      users.Repository
		messageRepo   messages.Repository
		encounterRepo encounters.Repository
	)
	if cfg.RedisClient != nil {
		actorRepo = actors.NewRedisRepository(&actors.RedisRepoConfig{Client: cfg.RedisClient})
		userRepo = users.NewRedisRepository(&users.RedisRepoConfig{Client: cfg.RedisClient})
		messageRepo = messages.NewRedisRepository(&messages.RedisRepoConfig{
			Client:     cfg.RedisClient,
			MessageTTL: cfg.MessageTTL,
		})
		encounterRepo = encounters.NewRedisRepository(&encounters.RedisRepoConfig{Client: cfg.RedisClient})
	} else {
		actorRepo = actors.NewInMemoryRepository()
		userRepo = users.NewInMemoryRepository()
		messageRepo = messages.NewInMemoryRepository()
		encounterRepo = encounters.NewInMemoryRepository()
	}

	bus := events.NewBus()

	charService := characterService.NewService(&characterService.ServiceConfig{
		Actors:        actorRepo,
		Users:         userRepo,
		Registry:      registry,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	chatLog := chatlog.NewService(&chatlog.ServiceConfig{
		Repository:    messageRepo,
		Bus:           bus,
		Sink:          cfg.Sink,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	checkService := checks.NewService(&checks.ServiceConfig{
		CharacterService: charService,
		ChatLog:          chatLog,
		Bus:              bus,
		Roller:           cfg.Roller,
		Renderer:         renderer,
		Localizer:        localizer,
		UUIDGenerator:    cfg.UUIDGenerator,
	})

	damageService := damage.NewService(&damage.ServiceConfig{
		CharacterService: charService,
		ChatLog:          chatLog,
		Bus:              bus,
		Renderer:         renderer,
		Localizer:        localizer,
	})

	encService := encounterService.NewService(&encounterService.ServiceConfig{
		Repository:       encounterRepo,
		CharacterService: charService,
		Bus:              bus,
		UUIDGenerator:    cfg.UUIDGenerator,
	})

	damage.AttachApplyDamage(bus, localizer)
	encounterService.AttachActorGuard(bus)

	return &Provider{
		Bus:              bus,
		Registry:         registry,
		Bundle:           bundle,
		CharacterService: charService,
		ChatLog:          chatLog,
		CheckService:     checkService,
		DamageService:    damageService,
		EncounterService: encService,
	}, nil
}
