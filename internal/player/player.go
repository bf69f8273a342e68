// Package player keeps the score of the quest and derives the level and the
// badges from it. The Player never prints; it returns events.
package player

import (
	"fmt"
	"math"
)

const PointsPerLevel = 1000

type Player struct {
	score  int
	level  int
	badges map[string]struct{}
}

func New() *Player {
	return &Player{level: 1, badges: map[string]struct{}{}}
}

// Restore rebuilds a player from a persisted score without producing events.
func Restore(score int) *Player {
	p := New()
	p.apply(score)
	return p
}

// FromScore rebuilds a player by adding the persisted score to a fresh player
// in one call, returning the notifications that add produced.
func FromScore(score int) (*Player, []Event) {
	p := New()
	events := p.AddPoints(score)
	return p, events
}

func (p *Player) Score() int { return p.score }
func (p *Player) Level() int { return p.level }

// Badges returns a copy of the earned badges in threshold order.
func (p *Player) Badges() []string {
	out := make([]string, 0, len(p.badges))
	for _, t := range thresholds {
		if _, ok := p.badges[t.label]; ok {
			out = append(out, t.label)
		}
	}
	return out
}

func (p *Player) HasBadge(label string) bool {
	_, ok := p.badges[label]
	return ok
}

// AddPoints adds amount to the score and recomputes level and badges from
// the new score. Score never drops below zero, saturates at math.MaxInt and
// badges are never revoked.
func (p *Player) AddPoints(amount int) []Event {
	if amount == 0 {
		return nil
	}
	score := p.score + amount
	if amount > 0 && p.score > math.MaxInt-amount {
		score = math.MaxInt
	}
	return p.apply(score)
}

func (p *Player) apply(score int) []Event {
	if score < 0 {
		score = 0
	}
	p.score = score

	var events []Event
	level := levelFor(score)
	if level > p.level {
		events = append(events, Event{Kind: EventLevelUp, Level: level})
	}
	p.level = level

	for _, t := range thresholds {
		if score < t.score {
			break
		}
		if _, ok := p.badges[t.label]; ok {
			continue
		}
		p.badges[t.label] = struct{}{}
		events = append(events, Event{Kind: EventBadgeEarned, Badge: t.label, Threshold: t.score})
	}
	return events
}

func levelFor(score int) int {
	return score/PointsPerLevel + 1
}

func (e Event) String() string {
	switch e.Kind {
	case EventLevelUp:
		return fmt.Sprintf("Level Up! You reached level %d.", e.Level)
	case EventBadgeEarned:
		return fmt.Sprintf("Badge earned: %s (score >= %d)", e.Badge, e.Threshold)
	default:
		return string(e.Kind)
	}
}
