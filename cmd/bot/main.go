package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/projectfu-discord/internal/config"
	"github.com/KirkDiggler/projectfu-discord/internal/handlers/discord"
	"github.com/KirkDiggler/projectfu-discord/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		Sink:       discord.NewSink(dg),
		Locale:     cfg.Rules.Locale,
		MessageTTL: cfg.Rules.MessageTTL,
	}

	redisClient := connectRedis(&cfg.Redis)
	if redisClient != nil {
		providerConfig.RedisClient = redisClient
		log.Println("Using Redis for persistence")
	} else {
		log.Println("Using in-memory repositories")
	}

	serviceProvider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
	})
	errorMessage := serviceProvider.Bundle.Localize(cfg.Rules.Locale, discord.KeyErrorGeneric)
	dg.AddHandler(discord.RecoverMiddleware("interaction", errorMessage, handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			log.Printf("Failed to close Discord connection: %v", closeErr)
		}
	}()

	// An empty guild ID registers global commands
	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}
	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns a connected client, or nil to fall back to memory
func connectRedis(cfg *config.RedisConfig) *redis.Client {
	opts, err := cfg.Options()
	if err != nil {
		log.Printf("Invalid Redis settings: %v", err)
		return nil
	}

	log.Printf("Connecting to Redis at: %s", opts.Addr)
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis client: %v", closeErr)
		}
		return nil
	}
	log.Println("Successfully connected to Redis")
	return client
}
