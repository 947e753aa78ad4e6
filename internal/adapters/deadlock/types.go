package deadlock

import (
	"encoding/json"

	"github.com/jose-valero/deadlock-match-bot/internal/domain"
)

// match-history puede venir como array pelado o envuelto en {matches: [...]}.
type matchHistoryDTO []domain.MatchHistoryEntry

func (m *matchHistoryDTO) UnmarshalJSON(b []byte) error {
	var arr []domain.MatchHistoryEntry
	if err := json.Unmarshal(b, &arr); err == nil {
		*m = arr
		return nil
	}
	var wrapped struct {
		Matches []domain.MatchHistoryEntry `json:"matches"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	*m = wrapped.Matches
	return nil
}

type steamProfileDTO struct {
	AccountID   int64  `json:"account_id"`
	PersonaName string `json:"personaname"`
	AvatarFull  string `json:"avatarfull"`
}

type heroDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Images struct {
		IconHeroCardWebp string `json:"icon_hero_card_webp"`
	} `json:"images"`
}
