package application

import (
	"sync"
	"time"

	"github.com/funnelbot/leadintake/internal/domain/action"
	"github.com/funnelbot/leadintake/internal/repository"
	"github.com/google/uuid"
)

// ActionStart opens a new tracking session for the user.
const ActionStart = "start"

type trackSession struct {
	id        string
	startedAt time.Time
}

// TrackerService records user interactions for funnel analytics. The
// in-memory session map is only a grouping cache for ids and offsets;
// every tracked fact lands in the user_actions table, and form state
// never lives here.
type TrackerService struct {
	repos *repository.Repos

	mu       sync.Mutex
	sessions map[int64]trackSession
}

func NewTrackerService(repos *repository.Repos) *TrackerService {
	return &TrackerService{
		repos:    repos,
		sessions: make(map[int64]trackSession),
	}
}

// Track writes one action row. A "start" action (or the first action
// seen for a user) opens a new session id; later actions carry the
// seconds elapsed since that session began.
func (s *TrackerService) Track(userID int64, actionType string, value, step *string) error {
	s.mu.Lock()
	ts, ok := s.sessions[userID]
	if !ok || actionType == ActionStart {
		ts = trackSession{id: uuid.NewString(), startedAt: time.Now().UTC()}
		s.sessions[userID] = ts
	}
	s.mu.Unlock()

	elapsed := 0
	if actionType != ActionStart {
		elapsed = int(time.Since(ts.startedAt).Seconds())
	}
	return s.repos.Action.Create(&action.UserAction{
		UserID:         userID,
		ActionType:     actionType,
		ActionValue:    value,
		StepName:       step,
		SessionID:      ts.id,
		TimeSinceStart: elapsed,
	})
}

// SessionID returns the user's current tracking session id, if any.
func (s *TrackerService) SessionID(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, ok := s.sessions[userID]
	return ts.id, ok
}
