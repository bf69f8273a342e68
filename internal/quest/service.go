package quest

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/eternal-quest/internal/codec"
	"github.com/saulo-duarte/eternal-quest/internal/config"
	"github.com/saulo-duarte/eternal-quest/internal/goal"
	"github.com/saulo-duarte/eternal-quest/internal/player"
	"github.com/sirupsen/logrus"
)

// Service is the quest engine: one player and an ordered goal list. Goals
// are addressed by their 1-based position in the list.
type Service interface {
	CreateGoal(ctx context.Context, dto CreateGoalDTO) (*GoalResponse, error)
	ListGoals(ctx context.Context) []GoalResponse
	RecordEvent(ctx context.Context, index int) (*RecordEventResponse, error)
	ScoreSummary(ctx context.Context) ScoreResponse
	SeedExamples(ctx context.Context)
	Save(ctx context.Context, location string) error
	Load(ctx context.Context, location string) error
}

type service struct {
	repo         Repository
	replayOnLoad bool

	player *player.Player
	goals  []goal.Goal
}

// NewService returns an engine with a fresh player and no goals. When
// replayOnLoad is set, Load rebuilds the player by adding the saved score
// and logs the level ups and badges that produces; otherwise the player is
// restored silently.
func NewService(repo Repository, replayOnLoad bool) Service {
	return &service{
		repo:         repo,
		replayOnLoad: replayOnLoad,
		player:       player.New(),
	}
}

func (s *service) CreateGoal(ctx context.Context, dto CreateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx).WithField("kind", dto.Kind)

	if err := validateGoal(dto); err != nil {
		log.WithError(err).Warn("Rejected goal")
		return nil, err
	}

	var g goal.Goal
	switch dto.Kind {
	case goal.KindSimple:
		g = goal.NewSimple(dto.Name, dto.Description, dto.Points)
	case goal.KindEternal:
		g = goal.NewEternal(dto.Name, dto.Description, dto.Points)
	case goal.KindChecklist:
		g = goal.NewChecklist(dto.Name, dto.Description, dto.Points, dto.Target, dto.Bonus)
	}

	s.goals = append(s.goals, g)
	response := toResponse(len(s.goals), g)

	log.WithFields(logrus.Fields{
		"index": response.Index,
		"name":  response.Name,
	}).Info("Goal created")
	return &response, nil
}

// maxTextSize leaves room in a codec line for the tag, delimiters and the
// integer fields.
const maxTextSize = codec.MaxLineSize - 128

func validateGoal(dto CreateGoalDTO) error {
	if !dto.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidGoal, dto.Kind)
	}
	if strings.TrimSpace(dto.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidGoal)
	}
	if !safeField(dto.Name) || !safeField(dto.Description) {
		return fmt.Errorf("%w: name and description must not contain %q or line breaks", ErrInvalidGoal, goal.Delimiter)
	}
	if len(dto.Name)+len(dto.Description) > maxTextSize {
		return fmt.Errorf("%w: name and description exceed %d bytes", ErrInvalidGoal, maxTextSize)
	}
	if dto.Kind == goal.KindChecklist && dto.Target < 1 {
		return fmt.Errorf("%w: checklist target must be at least 1", ErrInvalidGoal)
	}
	return nil
}

func safeField(s string) bool {
	return !strings.Contains(s, goal.Delimiter) && !strings.ContainsAny(s, "\r\n")
}

func (s *service) ListGoals(_ context.Context) []GoalResponse {
	responses := make([]GoalResponse, 0, len(s.goals))
	for i, g := range s.goals {
		responses = append(responses, toResponse(i+1, g))
	}
	return responses
}

func (s *service) RecordEvent(ctx context.Context, index int) (*RecordEventResponse, error) {
	log := config.WithContext(ctx).WithField("index", index)

	if index < 1 || index > len(s.goals) {
		log.Warn("Record event on invalid goal index")
		return nil, fmt.Errorf("%w: %d (have %d goals)", ErrInvalidIndex, index, len(s.goals))
	}

	g := s.goals[index-1]
	earned := g.RecordEvent()

	var events []player.Event
	if earned > 0 {
		events = s.player.AddPoints(earned)
	}
	logEvents(log, events)

	log.WithFields(logrus.Fields{
		"name":   g.Name(),
		"earned": earned,
		"score":  s.player.Score(),
	}).Info("Event recorded")

	return &RecordEventResponse{
		Goal:   toResponse(index, g),
		Earned: earned,
		Events: events,
	}, nil
}

func (s *service) ScoreSummary(_ context.Context) ScoreResponse {
	return ScoreResponse{
		Score:  s.player.Score(),
		Level:  s.player.Level(),
		Badges: s.player.Badges(),
	}
}

// SeedExamples appends the three sample goals shown to new players.
func (s *service) SeedExamples(ctx context.Context) {
	s.goals = append(s.goals,
		goal.NewSimple("Run a marathon", "Complete a full marathon", 1000),
		goal.NewEternal("Read scriptures", "Daily scripture study", 100),
		goal.NewChecklist("Temple visits", "Go to the temple", 50, 10, 500),
	)
	config.WithContext(ctx).WithField("goals", len(s.goals)).Info("Seeded example goals")
}

func (s *service) Save(ctx context.Context, location string) error {
	log := config.WithContext(ctx).WithField("location", location)

	snap := codec.Snapshot{
		HasPlayer: true,
		Score:     s.player.Score(),
		Goals:     s.goals,
	}
	if err := s.repo.Save(ctx, location, snap); err != nil {
		log.WithError(err).Error("Failed to save quest")
		return err
	}

	log.WithField("goals", len(s.goals)).Info("Quest saved")
	return nil
}

// Load replaces the goal list with the saved one. The player is replaced
// only when the save holds a player record. On error nothing changes.
func (s *service) Load(ctx context.Context, location string) error {
	log := config.WithContext(ctx).WithField("location", location)

	snap, err := s.repo.Load(ctx, location)
	if err != nil {
		log.WithError(err).Warn("Failed to load quest")
		return err
	}

	s.goals = append([]goal.Goal(nil), snap.Goals...)
	if snap.HasPlayer {
		if s.replayOnLoad {
			var events []player.Event
			s.player, events = player.FromScore(snap.Score)
			logEvents(log, events)
		} else {
			s.player = player.Restore(snap.Score)
		}
	}

	log.WithFields(logrus.Fields{
		"goals":   len(s.goals),
		"skipped": snap.Skipped,
		"score":   s.player.Score(),
	}).Info("Quest loaded")
	return nil
}

func logEvents(log logrus.FieldLogger, events []player.Event) {
	for _, e := range events {
		log.WithField("event", e.Kind).Info(e.String())
	}
}

func toResponse(index int, g goal.Goal) GoalResponse {
	return GoalResponse{
		Index:       index,
		Kind:        g.Kind(),
		Status:      g.StatusText(),
		Name:        g.Name(),
		Description: g.Description(),
		Points:      g.Points(),
		Complete:    g.IsComplete(),
	}
}
