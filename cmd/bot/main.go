package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jose-valero/deadlock-match-bot/internal/adapters/deadlock"
	discordrouter "github.com/jose-valero/deadlock-match-bot/internal/adapters/discord"
	"github.com/jose-valero/deadlock-match-bot/internal/adapters/httpapi"
	"github.com/jose-valero/deadlock-match-bot/internal/app/service"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/assets"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/cache"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/config"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/logging"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/storage"
	"github.com/jose-valero/deadlock-match-bot/internal/render/scoreboard"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// DB
	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
	log.Info("✅ DB lista y migrada")

	rosterRepo := storage.NewRosterRepo(db)
	settingsRepo := storage.NewSettingsRepo(db)
	postedRepo := storage.NewPostedRepo(db)

	// Cache (opcional)
	var cc cache.Cache = cache.Nop{}
	if cfg.RedisURL != "" {
		rdb, err := cache.Open(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, running without cache", zap.Error(err))
		} else {
			defer rdb.Close()
			cc = cache.NewRedisCache(rdb, "deadlock:")
			log.Info("✅ Redis conectado")
		}
	}

	api := deadlock.New(
		deadlock.WithAPIURL(cfg.DeadlockAPIURL),
		deadlock.WithAssetsURL(cfg.DeadlockAssetsURL),
		deadlock.WithCache(cc),
	)
	loader := assets.NewLoader(assets.WithCache(cc), assets.WithLogger(log))
	compositor := scoreboard.New(loader, scoreboard.WithLogger(log))

	assembler := service.NewMatchAssembler(api, log)
	if err := assembler.LoadRanks(ctx); err != nil {
		// se reintenta en el primer Assemble
		log.Warn("ranks", zap.Error(err))
	}
	scoreboardSvc := service.NewScoreboardService(assembler, compositor)
	rosterSvc := service.NewRosterService(rosterRepo, settingsRepo)
	statsSvc := service.NewStatsService(api)

	// Discord
	auth := strings.TrimSpace(cfg.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal("discord session", zap.Error(err))
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		log.Fatal("discord open", zap.Error(err))
	}
	defer s.Close()
	log.Info("✅ Conectado", zap.String("user", s.State.User.Username), zap.String("id", s.State.User.ID))

	r := discordrouter.NewRouter(s, cfg.DiscordGuild, cfg.AdminRoleIDs, rosterSvc, statsSvc, scoreboardSvc, log)
	if err := r.Register(); err != nil {
		log.Fatal("registrando comandos", zap.Error(err))
	}
	r.Handlers()

	// HTTP: healthcheck + preview
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.New(scoreboardSvc, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http", zap.Error(err))
		}
	}()

	// Notifier
	notifier := service.NewNotifier(
		cfg.DiscordGuild,
		api,
		rosterRepo,
		settingsRepo,
		postedRepo,
		scoreboardSvc,
		discordrouter.NewPublisher(s),
		cfg.PollInterval,
		log,
	)
	go notifier.Run(ctx)

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
