package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/deadlock-match-bot/internal/domain"
)

const (
	teamAName  = "THE SAPPHIRE FLAME"
	teamAColor = "#2a3a6a"
	teamBName  = "THE AMBER HAND"
	teamBColor = "#6a5a2a"

	team0 = "Team0"
	team1 = "Team1"
)

var ErrEmptyRoster = errors.New("match has an empty team")

// MatchAssembler arma el MatchRenderModel a partir de deadlock-api.
type MatchAssembler struct {
	api DeadlockAPI
	log *zap.Logger

	mu    sync.RWMutex
	ranks []domain.Rank
}

func NewMatchAssembler(api DeadlockAPI, log *zap.Logger) *MatchAssembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &MatchAssembler{api: api, log: log.With(zap.String("component", "assembler"))}
}

// LoadRanks trae los rangos una vez; si falla se conservan los anteriores.
func (a *MatchAssembler) LoadRanks(ctx context.Context) error {
	ranks, err := a.api.GetRanks(ctx, "english")
	if err != nil {
		return fmt.Errorf("load ranks: %w", err)
	}
	a.mu.Lock()
	a.ranks = ranks
	a.mu.Unlock()
	a.log.Info("ranks loaded", zap.Int("count", len(ranks)))
	return nil
}

func (a *MatchAssembler) hasRanks() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.ranks) > 0
}

// rankIcon: badge = tier*10 + subrank. Tier 0 o desconocido -> icono grande de tier 0.
func (a *MatchAssembler) rankIcon(badge int) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if len(a.ranks) == 0 {
		return ""
	}

	var fallback, rank *domain.Rank
	tier, subrank := badge/10, badge%10
	for i := range a.ranks {
		switch a.ranks[i].Tier {
		case 0:
			fallback = &a.ranks[i]
		case tier:
			rank = &a.ranks[i]
		}
	}
	if rank == nil || tier == 0 {
		if fallback == nil {
			return ""
		}
		return fallback.Images["large"]
	}
	return rank.Images["large_subrank"+strconv.Itoa(subrank)]
}

func (a *MatchAssembler) Assemble(ctx context.Context, matchID int64) (domain.MatchRenderModel, error) {
	md, err := a.api.GetMatchMetadata(ctx, matchID)
	if err != nil {
		return domain.MatchRenderModel{}, fmt.Errorf("match %d metadata: %w", matchID, err)
	}
	if !a.hasRanks() {
		if err := a.LoadRanks(ctx); err != nil {
			a.log.Warn("ranks unavailable", zap.Error(err))
		}
	}

	players := make([]domain.PlayerStats, len(md.Players))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(6)
	for i, p := range md.Players {
		g.Go(func() error {
			players[i] = a.player(gctx, p)
			return nil
		})
	}
	_ = g.Wait()

	m := domain.MatchRenderModel{
		MatchID:  strconv.FormatInt(md.MatchID, 10),
		Duration: formatDuration(md.DurationS),
		TeamA: domain.TeamStats{
			Name:     teamAName,
			Color:    teamAColor,
			Victory:  md.WinningTeam == team0,
			RankIcon: a.rankIcon(md.AverageBadgeTeam0),
		},
		TeamB: domain.TeamStats{
			Name:     teamBName,
			Color:    teamBColor,
			Victory:  md.WinningTeam == team1,
			RankIcon: a.rankIcon(md.AverageBadgeTeam1),
		},
	}

	var soulsA, soulsB int
	for i, p := range md.Players {
		if p.Team == team0 {
			m.TeamA.Players = append(m.TeamA.Players, players[i])
			soulsA += players[i].Souls
		} else {
			m.TeamB.Players = append(m.TeamB.Players, players[i])
			soulsB += players[i].Souls
		}
	}
	if len(m.TeamA.Players) == 0 || len(m.TeamB.Players) == 0 {
		return domain.MatchRenderModel{}, fmt.Errorf("match %d: %w", matchID, ErrEmptyRoster)
	}
	m.TeamA.TotalSouls = roundThousands(soulsA)
	m.TeamB.TotalSouls = roundThousands(soulsB)
	return m, nil
}

// player: si falla héroe o perfil se usa el nombre por defecto y se sigue.
func (a *MatchAssembler) player(ctx context.Context, p domain.MetadataPlayer) domain.PlayerStats {
	steamID := strconv.FormatInt(p.AccountID, 10)

	hero, err := a.api.GetHeroInfo(ctx, p.HeroID)
	if err != nil {
		a.log.Warn("hero info", zap.Int("hero_id", p.HeroID), zap.Error(err))
		hero = domain.HeroInfo{Name: fmt.Sprintf("Hero %d", p.HeroID)}
	}
	profile, err := a.api.GetSteamProfile(ctx, steamID)
	if err != nil {
		a.log.Warn("steam profile", zap.String("steam_id", steamID), zap.Error(err))
		profile = domain.SteamProfile{Nickname: "Steam User " + steamID}
	}

	var last domain.PlayerStatsSnapshot
	if n := len(p.Stats); n > 0 {
		last = p.Stats[n-1]
	}
	return domain.PlayerStats{
		Nickname:        profile.Nickname,
		Avatar:          profile.Avatar,
		HeroName:        hero.Name,
		HeroImage:       hero.Image,
		Souls:           nonNegative(p.NetWorth),
		Kills:           nonNegative(p.Kills),
		Deaths:          nonNegative(p.Deaths),
		Assists:         nonNegative(p.Assists),
		PlayerDamage:    nonNegative(last.PlayerDamage),
		ObjectiveDamage: nonNegative(last.BossDamage),
		Healing:         nonNegative(last.PlayerHealing),
	}
}

func formatDuration(sec int) string {
	if sec <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

func roundThousands(v int) int {
	return int(math.Round(float64(v) / 1000))
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
