package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Describe(t *testing.T) {
	t.Parallel()

	s := NewStatsService(&fakeAPI{card: json.RawMessage(`{"account_id":7,"badge":45}`)})
	msg, err := s.Describe(context.Background(), "7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(msg, "Stats for Steam ID 7:\n```json\n"))
	assert.Contains(t, msg, "\"account_id\": 7")
	assert.True(t, strings.HasSuffix(msg, "```"))
}

func TestStatsService_Describe_When_Huge(t *testing.T) {
	t.Parallel()

	big := `{"blob":"` + strings.Repeat("x", 5000) + `"}`
	s := NewStatsService(&fakeAPI{card: json.RawMessage(big)})
	msg, err := s.Describe(context.Background(), "7")
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(msg)), 2000)
}

func TestStatsService_Describe_When_Fails(t *testing.T) {
	t.Parallel()

	s := NewStatsService(&fakeAPI{cardErr: errors.New("status 500")})
	msg, err := s.Describe(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "❌ Failed to fetch stats: status 500", msg)
}

func TestStatsService_Describe_When_InvalidID(t *testing.T) {
	t.Parallel()

	s := NewStatsService(&fakeAPI{})
	msg, err := s.Describe(context.Background(), "nope")
	require.NoError(t, err)
	assert.Contains(t, msg, "❌")
}
