package goal

import (
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separates the fields of a persisted goal line. Fields are not
// escaped, so names and descriptions must not contain it.
const Delimiter = "|"

// Goal is the contract shared by every goal variant. Name, Description and
// Points are fixed at construction; only RecordEvent mutates progress.
type Goal interface {
	Kind() Kind
	Name() string
	Description() string
	Points() int

	// RecordEvent registers one event and returns the points it earned.
	// It returns 0 once the goal can no longer award points.
	RecordEvent() int
	IsComplete() bool
	StatusText() string
	Serialize() string
}

type base struct {
	name        string
	description string
	points      int
}

func (b base) Name() string        { return b.name }
func (b base) Description() string { return b.description }
func (b base) Points() int         { return b.points }

func (b base) fields(kind Kind, extra ...string) string {
	parts := append([]string{string(kind), b.name, b.description, strconv.Itoa(b.points)}, extra...)
	return strings.Join(parts, Delimiter)
}

// SimpleGoal is completed once and pays its points once.
type SimpleGoal struct {
	base
	completed bool
}

func NewSimple(name, description string, points int) *SimpleGoal {
	return RestoreSimple(name, description, points, false)
}

func RestoreSimple(name, description string, points int, completed bool) *SimpleGoal {
	return &SimpleGoal{
		base:      base{name: name, description: description, points: points},
		completed: completed,
	}
}

func (g *SimpleGoal) Kind() Kind { return KindSimple }

func (g *SimpleGoal) RecordEvent() int {
	if g.completed {
		return 0
	}
	g.completed = true
	return g.points
}

func (g *SimpleGoal) IsComplete() bool { return g.completed }

func (g *SimpleGoal) StatusText() string {
	if g.completed {
		return "[X]"
	}
	return "[ ]"
}

func (g *SimpleGoal) Serialize() string {
	return g.fields(KindSimple, formatBool(g.completed))
}

// EternalGoal never completes and pays on every event.
type EternalGoal struct {
	base
	timesRecorded int
}

func NewEternal(name, description string, points int) *EternalGoal {
	return RestoreEternal(name, description, points, 0)
}

func RestoreEternal(name, description string, points, timesRecorded int) *EternalGoal {
	return &EternalGoal{
		base:          base{name: name, description: description, points: points},
		timesRecorded: timesRecorded,
	}
}

func (g *EternalGoal) Kind() Kind { return KindEternal }

func (g *EternalGoal) TimesRecorded() int { return g.timesRecorded }

func (g *EternalGoal) RecordEvent() int {
	g.timesRecorded++
	return g.points
}

func (g *EternalGoal) IsComplete() bool { return false }

func (g *EternalGoal) StatusText() string {
	return fmt.Sprintf("(Eternal) Recorded %d times", g.timesRecorded)
}

func (g *EternalGoal) Serialize() string {
	return g.fields(KindEternal, strconv.Itoa(g.timesRecorded))
}

// ChecklistGoal needs Target events. Each event pays Points and the event
// reaching Target also pays Bonus.
type ChecklistGoal struct {
	base
	timesCompleted int
	target         int
	bonus          int
}

func NewChecklist(name, description string, points, target, bonus int) *ChecklistGoal {
	return RestoreChecklist(name, description, points, target, bonus, 0)
}

func RestoreChecklist(name, description string, points, target, bonus, timesCompleted int) *ChecklistGoal {
	return &ChecklistGoal{
		base:           base{name: name, description: description, points: points},
		timesCompleted: timesCompleted,
		target:         target,
		bonus:          bonus,
	}
}

func (g *ChecklistGoal) Kind() Kind { return KindChecklist }

func (g *ChecklistGoal) TimesCompleted() int { return g.timesCompleted }
func (g *ChecklistGoal) Target() int         { return g.target }
func (g *ChecklistGoal) Bonus() int          { return g.bonus }

func (g *ChecklistGoal) RecordEvent() int {
	if g.IsComplete() {
		return 0
	}

	g.timesCompleted++
	earned := g.points
	if g.timesCompleted == g.target {
		earned += g.bonus
	}
	return earned
}

func (g *ChecklistGoal) IsComplete() bool { return g.timesCompleted >= g.target }

func (g *ChecklistGoal) StatusText() string {
	status := fmt.Sprintf("Completed %d/%d", g.timesCompleted, g.target)
	if g.IsComplete() {
		status += " (Complete)"
	}
	return status
}

func (g *ChecklistGoal) Serialize() string {
	return g.fields(KindChecklist,
		strconv.Itoa(g.target),
		strconv.Itoa(g.bonus),
		strconv.Itoa(g.timesCompleted),
	)
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
