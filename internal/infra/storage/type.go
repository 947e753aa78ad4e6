package storage

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type TrackedPlayer struct {
	GuildID     string
	SteamID     string
	LastMatchID *int64 // nil hasta el primer post
	AddedAt     time.Time
}

type GuildSettings struct {
	GuildID         string
	NotifyChannelID string
	UpdatedAt       time.Time
}
