package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// discord corta en 2000; dejamos aire para el encabezado y el bloque de código
const maxCardChars = 1800

type StatsService struct {
	api DeadlockAPI
}

func NewStatsService(api DeadlockAPI) *StatsService {
	return &StatsService{api: api}
}

func (s *StatsService) Describe(ctx context.Context, steamID string) (string, error) {
	if !validSteamID(steamID) {
		return "❌ `" + steamID + "` no es un Steam ID válido (solo números).", nil
	}
	raw, err := s.api.GetPlayerCard(ctx, steamID)
	if err != nil {
		return fmt.Sprintf("❌ Failed to fetch stats: %v", err), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(raw)
	}
	body := buf.String()
	if r := []rune(body); len(r) > maxCardChars {
		body = string(r[:maxCardChars]) + "\n…"
	}
	return fmt.Sprintf("Stats for Steam ID %s:\n```json\n%s\n```", steamID, body), nil
}
