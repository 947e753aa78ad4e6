package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jose-valero/deadlock-match-bot/internal/infra/storage"
)

type RosterService struct {
	roster   RosterRepo
	settings SettingsRepo
}

func NewRosterService(roster RosterRepo, settings SettingsRepo) *RosterService {
	return &RosterService{roster: roster, settings: settings}
}

func (s *RosterService) Add(ctx context.Context, guildID, steamID string) (string, error) {
	steamID = strings.TrimSpace(steamID)
	if !validSteamID(steamID) {
		return "❌ `" + steamID + "` no es un Steam ID válido (solo números).", nil
	}
	added, err := s.roster.Add(ctx, guildID, steamID)
	if err != nil {
		return "", err
	}
	if !added {
		return "ℹ️ Steam ID " + steamID + " is already in the list.", nil
	}
	return "✅ Steam ID " + steamID + " added.", nil
}

func (s *RosterService) Remove(ctx context.Context, guildID, steamID string) (string, error) {
	steamID = strings.TrimSpace(steamID)
	removed, err := s.roster.Remove(ctx, guildID, steamID)
	if err != nil {
		return "", err
	}
	if !removed {
		return "ℹ️ Steam ID " + steamID + " not found in the list.", nil
	}
	return "✅ Steam ID " + steamID + " removed.", nil
}

func (s *RosterService) List(ctx context.Context, guildID string) (string, error) {
	items, err := s.roster.List(ctx, guildID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "ℹ️ No Steam IDs stored.", nil
	}
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.SteamID
	}
	return "📋 Stored Steam IDs:\n" + strings.Join(ids, ", "), nil
}

func (s *RosterService) SetNotifyChannel(ctx context.Context, guildID, channelID string) (string, error) {
	if err := s.settings.SetNotifyChannel(ctx, guildID, channelID); err != nil {
		return "", err
	}
	return "✅ Notification channel set to <#" + channelID + ">.", nil
}

// NotifyChannel: "" si todavía no se configuró.
func (s *RosterService) NotifyChannel(ctx context.Context, guildID string) (string, error) {
	st, err := s.settings.Get(ctx, guildID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return st.NotifyChannelID, nil
}

func validSteamID(s string) bool {
	if s == "" || len(s) > 20 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
