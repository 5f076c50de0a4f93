package scheduler

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/funnelbot/leadintake/internal/domain/session"
	"github.com/funnelbot/leadintake/internal/repository"
)

// Notifier delivers a nudge to a user. Delivery may fail (blocked user,
// network); failures are per-item and never abort a run.
type Notifier interface {
	Send(userID int64, text string) error
}

// NudgeFunc renders the step-aware reminder text.
type NudgeFunc func(step session.Step, fields map[string]string) string

// ReminderScheduler periodically scans for stale unreminded sessions and
// nudges each one once. It reads and writes only the session store.
type ReminderScheduler struct {
	sessions  repository.SessionRepo
	notifier  Notifier
	nudge     NudgeFunc
	interval  time.Duration
	threshold time.Duration
	running   atomic.Bool
}

func NewReminderScheduler(sessions repository.SessionRepo, notifier Notifier, nudge NudgeFunc, interval, threshold time.Duration) *ReminderScheduler {
	return &ReminderScheduler{
		sessions:  sessions,
		notifier:  notifier,
		nudge:     nudge,
		interval:  interval,
		threshold: threshold,
	}
}

// Start runs the scheduler until ctx is cancelled. Runs never overlap:
// the next tick is only consumed after RunOnce returns.
func (s *ReminderScheduler) Start(ctx context.Context) error {
	s.running.Store(true)
	log.Println("Reminder scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.running.Store(false)
			log.Println("Reminder scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			if n, err := s.RunOnce(); err != nil {
				log.Printf("Reminder run failed: %v", err)
			} else if n > 0 {
				log.Printf("Sent %d reminders", n)
			}
		}
	}
}

// RunOnce scans once and returns how many reminders went out. The
// reminder flag is only set after a successful dispatch, so a session is
// nudged at most once ever and a failed delivery is retried next run.
func (s *ReminderScheduler) RunOnce() (int, error) {
	stale, err := s.sessions.ListStale(time.Now().UTC().Add(-s.threshold))
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range stale {
		sess := &stale[i]
		text := s.nudge(sess.CurrentStep, sess.FieldMap())
		if err := s.notifier.Send(sess.UserID, text); err != nil {
			log.Printf("Reminder delivery to user %d failed: %v", sess.UserID, err)
			continue
		}
		if err := s.sessions.MarkReminderSent(sess.UserID); err != nil {
			log.Printf("Failed to mark reminder for user %d: %v", sess.UserID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

// IsRunning returns if active. Safe to call from any goroutine.
func (s *ReminderScheduler) IsRunning() bool {
	return s.running.Load()
}
