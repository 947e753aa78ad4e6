package service

import (
	"context"
	"encoding/json"

	"github.com/jose-valero/deadlock-match-bot/internal/domain"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/storage"
)

// Lo implementa internal/adapters/deadlock.Client
type DeadlockAPI interface {
	GetMatchHistory(ctx context.Context, steamID string) ([]domain.MatchHistoryEntry, error)
	GetMatchMetadata(ctx context.Context, matchID int64) (*domain.MatchMetadata, error)
	GetSteamProfile(ctx context.Context, steamID string) (domain.SteamProfile, error)
	GetHeroInfo(ctx context.Context, heroID int) (domain.HeroInfo, error)
	GetRanks(ctx context.Context, language string) ([]domain.Rank, error)
	GetPlayerCard(ctx context.Context, steamID string) (json.RawMessage, error)
}

// Lo implementa internal/render/scoreboard.Compositor
type Renderer interface {
	Render(ctx context.Context, m domain.MatchRenderModel) ([]byte, error)
}

// Lo implementa internal/adapters/discord.Publisher
type Publisher interface {
	SendText(ctx context.Context, channelID, text string) error
	SendImage(ctx context.Context, channelID, filename string, png []byte) error
}

// Lo implementa internal/infra/storage.RosterRepo
type RosterRepo interface {
	Add(ctx context.Context, guildID, steamID string) (bool, error)
	Remove(ctx context.Context, guildID, steamID string) (bool, error)
	List(ctx context.Context, guildID string) ([]storage.TrackedPlayer, error)
	SetLastMatch(ctx context.Context, guildID string, steamIDs []string, matchID int64) error
}

// Lo implementa internal/infra/storage.SettingsRepo
type SettingsRepo interface {
	Get(ctx context.Context, guildID string) (storage.GuildSettings, error)
	SetNotifyChannel(ctx context.Context, guildID, channelID string) error
}

// Lo implementa internal/infra/storage.PostedRepo
type PostedRepo interface {
	MarkPosted(ctx context.Context, guildID string, matchID int64) error
	WasPosted(ctx context.Context, guildID string, matchID int64) (bool, error)
}
