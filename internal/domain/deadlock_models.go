package domain

// DTOs mínimos de deadlock-api que usamos para armar el render.

type MatchHistoryEntry struct {
	AccountID int64 `json:"account_id"`
	MatchID   int64 `json:"match_id"`
	HeroID    int   `json:"hero_id"`
	StartTime int64 `json:"start_time"`
}

type PlayerStatsSnapshot struct {
	PlayerDamage  int `json:"player_damage"`
	BossDamage    int `json:"boss_damage"`
	PlayerHealing int `json:"player_healing"`
}

type MetadataPlayer struct {
	AccountID int64                 `json:"account_id"`
	HeroID    int                   `json:"hero_id"`
	Kills     int                   `json:"kills"`
	Deaths    int                   `json:"deaths"`
	Assists   int                   `json:"assists"`
	Team      string                `json:"team"` // "Team0" | "Team1"
	NetWorth  int                   `json:"net_worth"`
	Stats     []PlayerStatsSnapshot `json:"stats"`
}

type MatchMetadata struct {
	MatchID           int64            `json:"match_id"`
	DurationS         int              `json:"duration_s"`
	WinningTeam       string           `json:"winning_team"`
	Players           []MetadataPlayer `json:"players"`
	AverageBadgeTeam0 int              `json:"average_badge_team0"`
	AverageBadgeTeam1 int              `json:"average_badge_team1"`
}

type SteamProfile struct {
	Nickname string
	Avatar   string
}

type HeroInfo struct {
	Name  string
	Image string
}

// Rank: Images trae large, large_subrank1..6, small, etc (y sus _webp).
type Rank struct {
	Tier   int               `json:"tier"`
	Name   string            `json:"name"`
	Images map[string]string `json:"images"`
	Color  string            `json:"color"`
}
