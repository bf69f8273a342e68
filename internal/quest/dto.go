package quest

import (
	"github.com/saulo-duarte/eternal-quest/internal/goal"
	"github.com/saulo-duarte/eternal-quest/internal/player"
)

type CreateGoalDTO struct {
	Kind        goal.Kind `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Target      int       `json:"target,omitempty"`
	Bonus       int       `json:"bonus,omitempty"`
}

type GoalResponse struct {
	Index       int       `json:"index"`
	Kind        goal.Kind `json:"kind"`
	Status      string    `json:"status"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Points      int       `json:"points"`
	Complete    bool      `json:"complete"`
}

type RecordEventResponse struct {
	Goal   GoalResponse   `json:"goal"`
	Earned int            `json:"earned"`
	Events []player.Event `json:"events,omitempty"`
}

type ScoreResponse struct {
	Score  int      `json:"score"`
	Level  int      `json:"level"`
	Badges []string `json:"badges"`
}
