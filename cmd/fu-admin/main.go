package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/projectfu-discord/internal/config"
	"github.com/KirkDiggler/projectfu-discord/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "fu-admin",
	Short: "Manage Fabula Ultima actors stored in Redis",
	Long: `fu-admin seeds actors, binds players to their characters and lists
what the bot can see. Redis is configured with the same REDIS_* variables
as the bot.`,
	SilenceUsage: true,
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	rootCmd.AddCommand(seedCmd, bindCmd, actorsCmd, featuresCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withProvider connects to Redis and runs fn against the services
func withProvider(ctx context.Context, fn func(p *services.Provider) error) error {
	cfg, err := config.LoadRedis()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	client := redis.NewClient(opts)
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis connection: %v", closeErr)
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	provider, err := services.NewProvider(&services.ProviderConfig{RedisClient: client})
	if err != nil {
		return err
	}
	return fn(provider)
}
