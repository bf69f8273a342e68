package player

type EventKind string

const (
	EventLevelUp     EventKind = "LEVEL_UP"
	EventBadgeEarned EventKind = "BADGE_EARNED"
)

// Event is a notification produced by AddPoints. Level is set for level ups,
// Badge and Threshold for earned badges.
type Event struct {
	Kind      EventKind
	Level     int
	Badge     string
	Threshold int
}

type badgeThreshold struct {
	score int
	label string
}

// Thresholds are kept in ascending score order.
var thresholds = []badgeThreshold{
	{score: 500, label: "Getting Started"},
	{score: 2000, label: "Committed"},
	{score: 5000, label: "Dedicated"},
	{score: 10000, label: "Legend"},
}
