package storage

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type RosterRepo struct{ db *sql.DB }

func NewRosterRepo(db *sql.DB) *RosterRepo { return &RosterRepo{db: db} }

// Add devuelve false si el steam id ya estaba en el roster.
func (r *RosterRepo) Add(ctx context.Context, guildID, steamID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO tracked_players (guild_id, steam_id)
VALUES ($1, $2)
ON CONFLICT (guild_id, steam_id) DO NOTHING
`, guildID, steamID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Remove borra la fila entera, así que también se va el last_match_id.
func (r *RosterRepo) Remove(ctx context.Context, guildID, steamID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM tracked_players WHERE guild_id = $1 AND steam_id = $2
`, guildID, steamID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *RosterRepo) List(ctx context.Context, guildID string) ([]TrackedPlayer, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT guild_id, steam_id, last_match_id, added_at
  FROM tracked_players
 WHERE guild_id = $1
 ORDER BY added_at ASC
`, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TrackedPlayer
	for rows.Next() {
		var p TrackedPlayer
		if err := rows.Scan(&p.GuildID, &p.SteamID, &p.LastMatchID, &p.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SetLastMatch marca el mismo match para todos los ids del grupo.
func (r *RosterRepo) SetLastMatch(ctx context.Context, guildID string, steamIDs []string, matchID int64) error {
	if len(steamIDs) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
UPDATE tracked_players
   SET last_match_id = $3
 WHERE guild_id = $1
   AND steam_id = ANY($2)
`, guildID, pq.Array(steamIDs), matchID)
	return err
}

type SettingsRepo struct{ db *sql.DB }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) Get(ctx context.Context, guildID string) (GuildSettings, error) {
	var (
		s  GuildSettings
		ch sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
SELECT guild_id, notify_channel_id, updated_at
  FROM guild_settings
 WHERE guild_id = $1
`, guildID).Scan(&s.GuildID, &ch, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return GuildSettings{}, ErrNotFound
	}
	if err != nil {
		return GuildSettings{}, err
	}
	s.NotifyChannelID = ch.String
	return s, nil
}

func (r *SettingsRepo) SetNotifyChannel(ctx context.Context, guildID, channelID string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO guild_settings (guild_id, notify_channel_id, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (guild_id) DO UPDATE SET
  notify_channel_id = EXCLUDED.notify_channel_id,
  updated_at        = NOW()
`, guildID, channelID)
	return err
}

type PostedRepo struct{ db *sql.DB }

func NewPostedRepo(db *sql.DB) *PostedRepo { return &PostedRepo{db: db} }

func (r *PostedRepo) MarkPosted(ctx context.Context, guildID string, matchID int64) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO posted_matches (guild_id, match_id)
VALUES ($1, $2)
ON CONFLICT (guild_id, match_id) DO NOTHING
`, guildID, matchID)
	return err
}

func (r *PostedRepo) WasPosted(ctx context.Context, guildID string, matchID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
SELECT EXISTS (SELECT 1 FROM posted_matches WHERE guild_id = $1 AND match_id = $2)
`, guildID, matchID).Scan(&ok)
	return ok, err
}
