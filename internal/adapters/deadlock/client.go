package deadlock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jose-valero/deadlock-match-bot/internal/domain"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/cache"
)

var ErrEmptyMetadata = errors.New("invalid match metadata response")

// GetMatchHistory: más reciente primero.
func (c *Client) GetMatchHistory(ctx context.Context, steamID string) ([]domain.MatchHistoryEntry, error) {
	var dto matchHistoryDTO
	if err := c.doJSON(ctx, c.apiURL, fmt.Sprintf("/players/%s/match-history", url.PathEscape(steamID)), nil, &dto); err != nil {
		return nil, err
	}
	return dto, nil
}

func (c *Client) GetMatchMetadata(ctx context.Context, matchID int64) (*domain.MatchMetadata, error) {
	q := url.Values{}
	q.Set("include_player_info", "true")
	q.Set("include_player_stats", "true")
	q.Set("match_ids", strconv.FormatInt(matchID, 10))

	var dto []domain.MatchMetadata
	if err := c.doJSON(ctx, c.apiURL, "/matches/metadata", q, &dto); err != nil {
		return nil, err
	}
	if len(dto) == 0 {
		return nil, ErrEmptyMetadata
	}
	return &dto[0], nil
}

func (c *Client) GetSteamProfile(ctx context.Context, steamID string) (domain.SteamProfile, error) {
	q := url.Values{}
	q.Set("account_ids", steamID)

	var dto []steamProfileDTO
	if err := c.doJSON(ctx, c.apiURL, "/players/steam", q, &dto); err != nil {
		return domain.SteamProfile{}, err
	}
	p := domain.SteamProfile{Nickname: "Steam User " + steamID}
	if len(dto) > 0 {
		if dto[0].PersonaName != "" {
			p.Nickname = dto[0].PersonaName
		}
		p.Avatar = dto[0].AvatarFull
	}
	return p, nil
}

func (c *Client) GetHeroInfo(ctx context.Context, heroID int) (domain.HeroInfo, error) {
	var dto heroDTO
	key := "hero:" + strconv.Itoa(heroID)
	err := c.cached(ctx, key, cache.MetadataTTL, &dto, func() error {
		return c.doJSON(ctx, c.assetsURL, "/heroes/"+strconv.Itoa(heroID), nil, &dto)
	})
	if err != nil {
		return domain.HeroInfo{}, err
	}
	h := domain.HeroInfo{Name: dto.Name, Image: dto.Images.IconHeroCardWebp}
	if h.Name == "" {
		h.Name = fmt.Sprintf("Hero %d", heroID)
	}
	return h, nil
}

func (c *Client) GetRanks(ctx context.Context, language string) ([]domain.Rank, error) {
	if language == "" {
		language = "english"
	}
	q := url.Values{}
	q.Set("language", language)

	var ranks []domain.Rank
	err := c.cached(ctx, "ranks:"+language, cache.MetadataTTL, &ranks, func() error {
		return c.doJSON(ctx, c.assetsURL, "/ranks", q, &ranks)
	})
	return ranks, err
}

// GetPlayerCard devuelve el JSON tal cual; /deadlockstats lo muestra crudo.
func (c *Client) GetPlayerCard(ctx context.Context, steamID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, c.apiURL, fmt.Sprintf("/players/%s/card", url.PathEscape(steamID)), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
