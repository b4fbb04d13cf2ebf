package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/HIDORAKAI002/flagbot/internal/chatter"
	"github.com/HIDORAKAI002/flagbot/internal/config"
	"github.com/HIDORAKAI002/flagbot/internal/countries"
	"github.com/HIDORAKAI002/flagbot/internal/handlers/discord"
	"github.com/HIDORAKAI002/flagbot/internal/rng"
	giveawayRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/giveaway"
	guildRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/guild"
	playerRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/player"
	gameService "github.com/HIDORAKAI002/flagbot/internal/services/game"
	giveawayService "github.com/HIDORAKAI002/flagbot/internal/services/giveaway"
	infectionService "github.com/HIDORAKAI002/flagbot/internal/services/infection"
	moderationService "github.com/HIDORAKAI002/flagbot/internal/services/moderation"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Local development convenience; a missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.Bot.Token == "" {
		log.Fatal().Msg("BOT_TOKEN is required")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to Redis")
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create player repository")
	}
	guilds, err := guildRepo.NewRedis(&guildRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create guild repository")
	}
	giveaways, err := giveawayRepo.NewRedis(&giveawayRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create giveaway repository")
	}

	roller := rng.New(&rng.Config{})

	fetcher, err := countries.NewClient(&countries.Config{
		BaseURL:  cfg.Countries.BaseURL,
		Timeout:  cfg.Countries.Timeout,
		CacheTTL: cfg.Countries.CacheTTL,
		Roller:   roller,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create countries client")
	}

	chatterClient := chatter.New(&chatter.Config{
		Endpoint: cfg.Chatter.Endpoint,
		APIKey:   cfg.Chatter.APIKey,
		Model:    cfg.Chatter.Model,
		Timeout:  cfg.Chatter.Timeout,
	})

	session, err := discord.NewSession(cfg.Bot.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord session")
	}
	messenger, err := discord.NewMessenger(session)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messenger")
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Fetcher:           fetcher,
		PlayerRepo:        players,
		GuildRepo:         guilds,
		Notifier:          messenger,
		Roller:            roller,
		RoundDuration:     cfg.Game.RoundDuration,
		StartDelay:        cfg.Game.StartDelay,
		NextRoundDelay:    cfg.Game.NextRoundDelay,
		XPMin:             cfg.Game.XPMin,
		XPMax:             cfg.Game.XPMax,
		InfectionDuration: cfg.Game.InfectionDuration,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game service")
	}

	giveawaySvc, err := giveawayService.New(&giveawayService.Config{
		Repo:          giveaways,
		Notifier:      messenger,
		Roller:        roller,
		SweepInterval: cfg.Giveaway.SweepInterval,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create giveaway service")
	}

	infectionSvc, err := infectionService.New(&infectionService.Config{
		PlayerRepo:    players,
		Notifier:      messenger,
		SweepInterval: cfg.Game.InfectionSweepInterval,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create infection sweeper")
	}

	moderationSvc, err := moderationService.New(&moderationService.Config{
		PlayerRepo:      players,
		SpamWindow:      cfg.Moderation.SpamWindow,
		SpamMaxMessages: cfg.Moderation.SpamMaxMessages,
		BlockedWords:    cfg.Moderation.BlockedNicknameWords,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create moderation service")
	}

	bot, err := discord.New(&discord.Config{
		Session:           session,
		Prefix:            cfg.Bot.Prefix,
		AdminIDs:          cfg.Bot.AdminIDs,
		HeckleUserID:      cfg.Bot.HeckleUserID,
		StatusChannelID:   cfg.Bot.StatusChannelID,
		GameService:       gameSvc,
		GiveawayService:   giveawaySvc,
		ModerationService: moderationSvc,
		GuildRepo:         guilds,
		Chatter:           chatterClient,
		Roller:            roller,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	go infectionSvc.Run(sweepCtx)
	go giveawaySvc.Run(sweepCtx)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	sweepCancel()
	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
}
