package player_test

import (
	"math"
	"testing"

	"github.com/saulo-duarte/eternal-quest/internal/player"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	p := player.New()
	require.Equal(t, 0, p.Score())
	require.Equal(t, 1, p.Level())
	require.Empty(t, p.Badges())
}

func TestAddPoints_Level(t *testing.T) {
	t.Parallel()

	t.Run("crossing the level boundary", func(t *testing.T) {
		t.Parallel()

		p := player.New()
		require.Empty(t, filter(p.AddPoints(999), player.EventLevelUp))
		require.Equal(t, 1, p.Level())

		events := p.AddPoints(1)
		require.Equal(t, 2, p.Level())
		require.Equal(t, []player.Event{
			{Kind: player.EventLevelUp, Level: 2},
		}, filter(events, player.EventLevelUp))
	})

	t.Run("zero is a no-op", func(t *testing.T) {
		t.Parallel()

		p := player.New()
		require.Nil(t, p.AddPoints(0))
		require.Equal(t, 0, p.Score())
	})

	t.Run("skipping levels notifies once with the new level", func(t *testing.T) {
		t.Parallel()

		p := player.New()
		events := filter(p.AddPoints(3500), player.EventLevelUp)
		require.Equal(t, []player.Event{{Kind: player.EventLevelUp, Level: 4}}, events)
	})

	t.Run("score never goes below zero", func(t *testing.T) {
		t.Parallel()

		p := player.New()
		p.AddPoints(100)
		require.Empty(t, p.AddPoints(-500))
		require.Equal(t, 0, p.Score())
		require.Equal(t, 1, p.Level())
	})
}

func TestAddPoints_Badges(t *testing.T) {
	t.Parallel()

	t.Run("getting started in one call", func(t *testing.T) {
		t.Parallel()

		p := player.New()
		events := p.AddPoints(500)
		require.Equal(t, []string{"Getting Started"}, p.Badges())
		require.Equal(t, []player.Event{
			{Kind: player.EventBadgeEarned, Badge: "Getting Started", Threshold: 500},
		}, events)
	})

	t.Run("all four badges exactly once", func(t *testing.T) {
		t.Parallel()

		p := player.New()
		events := p.AddPoints(10000)
		require.Equal(t, []string{"Getting Started", "Committed", "Dedicated", "Legend"}, p.Badges())
		require.Len(t, filter(events, player.EventBadgeEarned), 4)
		require.Equal(t, 11, p.Level())

		require.Empty(t, filter(p.AddPoints(10000), player.EventBadgeEarned))
		require.Len(t, p.Badges(), 4)
	})

	t.Run("badges survive a score drop", func(t *testing.T) {
		t.Parallel()

		p := player.New()
		p.AddPoints(2500)
		p.AddPoints(-2000)
		require.Equal(t, []string{"Getting Started", "Committed"}, p.Badges())
		require.Empty(t, filter(p.AddPoints(1600), player.EventBadgeEarned))
		require.True(t, p.HasBadge("Committed"))
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		t.Parallel()

		p := player.New()
		p.AddPoints(600)
		badges := p.Badges()
		badges[0] = "Hacked"
		require.Equal(t, []string{"Getting Started"}, p.Badges())
	})
}

func TestRestore(t *testing.T) {
	t.Parallel()

	p := player.Restore(5200)
	require.Equal(t, 5200, p.Score())
	require.Equal(t, 6, p.Level())
	require.Equal(t, []string{"Getting Started", "Committed", "Dedicated"}, p.Badges())

	require.Empty(t, p.AddPoints(100))
}

func TestAddPoints_Saturates(t *testing.T) {
	t.Parallel()

	p := player.Restore(math.MaxInt - 10)
	events := p.AddPoints(100)
	require.Empty(t, filter(events, player.EventBadgeEarned))
	require.Equal(t, math.MaxInt, p.Score())
	require.Equal(t, math.MaxInt/player.PointsPerLevel+1, p.Level())
	require.True(t, p.HasBadge("Legend"))

	require.Empty(t, p.AddPoints(math.MaxInt))
	require.Equal(t, math.MaxInt, p.Score())
}

func TestFromScore(t *testing.T) {
	t.Parallel()

	p, events := player.FromScore(2000)
	require.Equal(t, 2000, p.Score())
	require.Equal(t, 3, p.Level())
	require.Equal(t, []player.Event{
		{Kind: player.EventLevelUp, Level: 3},
		{Kind: player.EventBadgeEarned, Badge: "Getting Started", Threshold: 500},
		{Kind: player.EventBadgeEarned, Badge: "Committed", Threshold: 2000},
	}, events)

	p, events = player.FromScore(0)
	require.Equal(t, 0, p.Score())
	require.Empty(t, events)
}

func TestEvent_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Level Up! You reached level 3.", player.Event{Kind: player.EventLevelUp, Level: 3}.String())
	require.Equal(t, "Badge earned: Legend (score >= 10000)",
		player.Event{Kind: player.EventBadgeEarned, Badge: "Legend", Threshold: 10000}.String())
}

func filter(events []player.Event, kind player.EventKind) []player.Event {
	var out []player.Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
