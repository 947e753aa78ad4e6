package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jose-valero/deadlock-match-bot/internal/domain"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/storage"
)

type fakeAPI struct {
	mu         sync.Mutex
	history    map[string][]domain.MatchHistoryEntry
	historyErr map[string]error
	metadata   map[int64]*domain.MatchMetadata
	heroes     map[int]domain.HeroInfo
	profiles   map[string]domain.SteamProfile
	ranks      []domain.Rank
	ranksErr   error
	card       json.RawMessage
	cardErr    error
	rankCalls  int
}

func (f *fakeAPI) GetMatchHistory(_ context.Context, steamID string) ([]domain.MatchHistoryEntry, error) {
	if err := f.historyErr[steamID]; err != nil {
		return nil, err
	}
	return f.history[steamID], nil
}

func (f *fakeAPI) GetMatchMetadata(_ context.Context, matchID int64) (*domain.MatchMetadata, error) {
	md, ok := f.metadata[matchID]
	if !ok {
		return nil, fmt.Errorf("no metadata for %d", matchID)
	}
	return md, nil
}

func (f *fakeAPI) GetSteamProfile(_ context.Context, steamID string) (domain.SteamProfile, error) {
	p, ok := f.profiles[steamID]
	if !ok {
		return domain.SteamProfile{}, fmt.Errorf("profile %s down", steamID)
	}
	return p, nil
}

func (f *fakeAPI) GetHeroInfo(_ context.Context, heroID int) (domain.HeroInfo, error) {
	h, ok := f.heroes[heroID]
	if !ok {
		return domain.HeroInfo{}, fmt.Errorf("hero %d down", heroID)
	}
	return h, nil
}

func (f *fakeAPI) GetRanks(context.Context, string) ([]domain.Rank, error) {
	f.mu.Lock()
	f.rankCalls++
	f.mu.Unlock()
	return f.ranks, f.ranksErr
}

func (f *fakeAPI) GetPlayerCard(context.Context, string) (json.RawMessage, error) {
	return f.card, f.cardErr
}

type fakeRoster struct {
	players []storage.TrackedPlayer
	listErr error
	last    map[string]int64
}

func (f *fakeRoster) Add(_ context.Context, guildID, steamID string) (bool, error) {
	for _, p := range f.players {
		if p.SteamID == steamID {
			return false, nil
		}
	}
	f.players = append(f.players, storage.TrackedPlayer{GuildID: guildID, SteamID: steamID})
	return true, nil
}

func (f *fakeRoster) Remove(_ context.Context, _, steamID string) (bool, error) {
	for i, p := range f.players {
		if p.SteamID == steamID {
			f.players = append(f.players[:i], f.players[i+1:]...)
			delete(f.last, steamID)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoster) List(context.Context, string) ([]storage.TrackedPlayer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]storage.TrackedPlayer, len(f.players))
	for i, p := range f.players {
		if id, ok := f.last[p.SteamID]; ok {
			p.LastMatchID = &id
		}
		out[i] = p
	}
	return out, nil
}

func (f *fakeRoster) SetLastMatch(_ context.Context, _ string, steamIDs []string, matchID int64) error {
	if f.last == nil {
		f.last = map[string]int64{}
	}
	for _, id := range steamIDs {
		f.last[id] = matchID
	}
	return nil
}

type fakeSettings struct {
	channel string
	set     bool
}

func (f *fakeSettings) Get(_ context.Context, guildID string) (storage.GuildSettings, error) {
	if !f.set {
		return storage.GuildSettings{}, storage.ErrNotFound
	}
	return storage.GuildSettings{GuildID: guildID, NotifyChannelID: f.channel}, nil
}

func (f *fakeSettings) SetNotifyChannel(_ context.Context, _, channelID string) error {
	f.channel, f.set = channelID, true
	return nil
}

type fakePosted struct{ ids map[int64]bool }

func (f *fakePosted) MarkPosted(_ context.Context, _ string, matchID int64) error {
	if f.ids == nil {
		f.ids = map[int64]bool{}
	}
	f.ids[matchID] = true
	return nil
}

func (f *fakePosted) WasPosted(_ context.Context, _ string, matchID int64) (bool, error) {
	return f.ids[matchID], nil
}

type sentImage struct {
	channel, name string
	png           []byte
}

type fakePub struct {
	texts   []string
	images  []sentImage
	sendErr error
}

func (f *fakePub) SendText(_ context.Context, _, text string) error {
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakePub) SendImage(_ context.Context, channelID, name string, png []byte) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.images = append(f.images, sentImage{channel: channelID, name: name, png: png})
	return nil
}

type fakeRenderer struct {
	got []domain.MatchRenderModel
}

func (f *fakeRenderer) Render(_ context.Context, m domain.MatchRenderModel) ([]byte, error) {
	f.got = append(f.got, m)
	return []byte("png:" + m.MatchID), nil
}

type fakeScoreboard struct {
	calls []int64
	err   error
}

func (f *fakeScoreboard) Render(_ context.Context, matchID int64) ([]byte, error) {
	f.calls = append(f.calls, matchID)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(fmt.Sprintf("png:%d", matchID)), nil
}
