package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/deadlock-match-bot/internal/domain"
	"github.com/jose-valero/deadlock-match-bot/internal/infra/storage"
)

type notifierFixture struct {
	api      *fakeAPI
	roster   *fakeRoster
	settings *fakeSettings
	posted   *fakePosted
	sb       *fakeScoreboard
	pub      *fakePub
	n        *Notifier
}

func newNotifierFixture(steamIDs ...string) *notifierFixture {
	f := &notifierFixture{
		api:      &fakeAPI{history: map[string][]domain.MatchHistoryEntry{}, historyErr: map[string]error{}},
		roster:   &fakeRoster{},
		settings: &fakeSettings{channel: "chan-1", set: true},
		posted:   &fakePosted{},
		sb:       &fakeScoreboard{},
		pub:      &fakePub{},
	}
	for _, id := range steamIDs {
		f.roster.players = append(f.roster.players, storage.TrackedPlayer{GuildID: "g", SteamID: id})
	}
	f.n = NewNotifier("g", f.api, f.roster, f.settings, f.posted, f.sb, f.pub, 0, nil)
	return f
}

func latest(matchIDs ...int64) []domain.MatchHistoryEntry {
	out := make([]domain.MatchHistoryEntry, len(matchIDs))
	for i, id := range matchIDs {
		out[i] = domain.MatchHistoryEntry{MatchID: id}
	}
	return out
}

func TestPollOnce_GroupsByMatch(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1", "2", "3")
	f.api.history["1"] = latest(100, 90)
	f.api.history["2"] = latest(200)
	f.api.history["3"] = latest(100)

	require.NoError(t, f.n.PollOnce(context.Background()))

	assert.Equal(t, []int64{100, 200}, f.sb.calls)
	require.Len(t, f.pub.images, 2)
	assert.Equal(t, "match_100.png", f.pub.images[0].name)
	assert.Equal(t, "chan-1", f.pub.images[0].channel)
	assert.Equal(t, []byte("png:100"), f.pub.images[0].png)
	assert.Equal(t, "match_200.png", f.pub.images[1].name)

	assert.Equal(t, map[string]int64{"1": 100, "2": 200, "3": 100}, f.roster.last)
	assert.True(t, f.posted.ids[100])
	assert.True(t, f.posted.ids[200])
}

func TestPollOnce_When_AlreadyNotified(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1")
	f.api.history["1"] = latest(100)

	require.NoError(t, f.n.PollOnce(context.Background()))
	require.NoError(t, f.n.PollOnce(context.Background()))

	assert.Len(t, f.pub.images, 1)
	assert.Len(t, f.sb.calls, 1)
}

func TestPollOnce_When_PostedForAnotherPlayer(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1")
	f.api.history["1"] = latest(100)
	f.posted.ids = map[int64]bool{100: true}

	require.NoError(t, f.n.PollOnce(context.Background()))

	assert.Empty(t, f.pub.images)
	assert.Empty(t, f.sb.calls)
	assert.Equal(t, int64(100), f.roster.last["1"])
}

func TestPollOnce_When_NoChannel(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1")
	f.settings.set = false
	f.api.history["1"] = latest(100)

	require.NoError(t, f.n.PollOnce(context.Background()))
	assert.Empty(t, f.sb.calls)

	f.settings.set, f.settings.channel = true, ""
	require.NoError(t, f.n.PollOnce(context.Background()))
	assert.Empty(t, f.sb.calls)
}

func TestPollOnce_When_NoTrackedPlayers(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture()
	require.NoError(t, f.n.PollOnce(context.Background()))
	assert.Empty(t, f.pub.texts)
	assert.Empty(t, f.pub.images)
}

func TestPollOnce_When_HistoryFails(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1", "2")
	f.api.historyErr["1"] = errors.New("boom")
	f.api.history["2"] = latest(300)

	require.NoError(t, f.n.PollOnce(context.Background()))

	require.Len(t, f.pub.texts, 1)
	assert.Equal(t, "Failed to fetch match for Steam ID 1: boom", f.pub.texts[0])
	require.Len(t, f.pub.images, 1)
	assert.Equal(t, "match_300.png", f.pub.images[0].name)
}

func TestPollOnce_When_EmptyHistory(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1")
	require.NoError(t, f.n.PollOnce(context.Background()))
	assert.Empty(t, f.sb.calls)
	assert.Empty(t, f.pub.texts)
}

func TestPollOnce_When_RenderFails_RetriesNextCycle(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1")
	f.api.history["1"] = latest(100)
	f.sb.err = errors.New("metadata not ready")

	require.NoError(t, f.n.PollOnce(context.Background()))
	assert.Empty(t, f.pub.images)
	assert.Empty(t, f.roster.last)

	f.sb.err = nil
	require.NoError(t, f.n.PollOnce(context.Background()))
	assert.Len(t, f.pub.images, 1)
	assert.Equal(t, int64(100), f.roster.last["1"])
}

func TestPollOnce_When_SendFails(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1")
	f.api.history["1"] = latest(100)
	f.pub.sendErr = errors.New("missing access")

	require.NoError(t, f.n.PollOnce(context.Background()))
	assert.Empty(t, f.roster.last)
	assert.False(t, f.posted.ids[100])
}

func TestPollOnce_When_RosterFails(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1")
	f.roster.listErr = errors.New("db down")
	assert.Error(t, f.n.PollOnce(context.Background()))
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Parallel()

	f := newNotifierFixture("1")
	f.api.history["1"] = latest(100)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.n.Run(ctx)
		close(done)
	}()
	cancel()
	<-done
}
