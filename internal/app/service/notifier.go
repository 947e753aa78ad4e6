package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jose-valero/deadlock-match-bot/internal/infra/storage"
)

type scoreboarder interface {
	Render(ctx context.Context, matchID int64) ([]byte, error)
}

// Notifier revisa el último match de cada Steam ID trackeado y postea el scoreboard.
type Notifier struct {
	guildID    string
	api        DeadlockAPI
	roster     RosterRepo
	settings   SettingsRepo
	posted     PostedRepo
	scoreboard scoreboarder
	pub        Publisher
	interval   time.Duration
	log        *zap.Logger
}

func NewNotifier(
	guildID string,
	api DeadlockAPI,
	roster RosterRepo,
	settings SettingsRepo,
	posted PostedRepo,
	scoreboard scoreboarder,
	pub Publisher,
	interval time.Duration,
	log *zap.Logger,
) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Notifier{
		guildID:    guildID,
		api:        api,
		roster:     roster,
		settings:   settings,
		posted:     posted,
		scoreboard: scoreboard,
		pub:        pub,
		interval:   interval,
		log:        log.With(zap.String("component", "notifier"), zap.String("guild_id", guildID)),
	}
}

// Run: primer poll inmediato, después cada interval hasta que se cancele ctx.
func (n *Notifier) Run(ctx context.Context) {
	n.log.Info("notifier started", zap.Duration("interval", n.interval))
	t := time.NewTicker(n.interval)
	defer t.Stop()

	n.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			n.log.Info("notifier stopped")
			return
		case <-t.C:
			n.poll(ctx)
		}
	}
}

func (n *Notifier) poll(ctx context.Context) {
	if err := n.PollOnce(ctx); err != nil && ctx.Err() == nil {
		n.log.Error("poll", zap.Error(err))
	}
}

type matchGroup struct {
	matchID  int64
	steamIDs []string
}

func (n *Notifier) PollOnce(ctx context.Context) error {
	st, err := n.settings.Get(ctx, n.guildID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	channelID := st.NotifyChannelID
	if channelID == "" {
		return nil
	}

	tracked, err := n.roster.List(ctx, n.guildID)
	if err != nil {
		return fmt.Errorf("roster: %w", err)
	}
	if len(tracked) == 0 {
		return nil
	}

	groups := n.collect(ctx, channelID, tracked)
	for _, g := range groups {
		if err := n.publish(ctx, channelID, g); err != nil {
			n.log.Warn("match not posted", zap.Int64("match_id", g.matchID), zap.Error(err))
		}
	}
	return nil
}

// collect agrupa por match id, en el orden en que aparecen en el roster.
func (n *Notifier) collect(ctx context.Context, channelID string, tracked []storage.TrackedPlayer) []*matchGroup {
	var (
		order []*matchGroup
		byID  = map[int64]*matchGroup{}
	)
	for _, p := range tracked {
		history, err := n.api.GetMatchHistory(ctx, p.SteamID)
		if err != nil {
			n.log.Warn("match history", zap.String("steam_id", p.SteamID), zap.Error(err))
			msg := fmt.Sprintf("Failed to fetch match for Steam ID %s: %v", p.SteamID, err)
			if err := n.pub.SendText(ctx, channelID, msg); err != nil {
				n.log.Warn("send text", zap.Error(err))
			}
			continue
		}
		if len(history) == 0 {
			continue
		}
		latest := history[0].MatchID
		if p.LastMatchID != nil && *p.LastMatchID == latest {
			continue
		}
		g, ok := byID[latest]
		if !ok {
			g = &matchGroup{matchID: latest}
			byID[latest] = g
			order = append(order, g)
		}
		g.steamIDs = append(g.steamIDs, p.SteamID)
	}
	return order
}

func (n *Notifier) publish(ctx context.Context, channelID string, g *matchGroup) error {
	already, err := n.posted.WasPosted(ctx, n.guildID, g.matchID)
	if err != nil {
		return fmt.Errorf("was posted: %w", err)
	}
	if !already {
		png, err := n.scoreboard.Render(ctx, g.matchID)
		if err != nil {
			return err
		}
		if err := n.pub.SendImage(ctx, channelID, fmt.Sprintf("match_%d.png", g.matchID), png); err != nil {
			return fmt.Errorf("send image: %w", err)
		}
		n.log.Info("match posted", zap.Int64("match_id", g.matchID), zap.Strings("steam_ids", g.steamIDs))
	}

	if err := n.roster.SetLastMatch(ctx, n.guildID, g.steamIDs, g.matchID); err != nil {
		return fmt.Errorf("set last match: %w", err)
	}
	if already {
		return nil
	}
	return n.posted.MarkPosted(ctx, n.guildID, g.matchID)
}
