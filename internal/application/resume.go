package application

import (
	"errors"

	"github.com/funnelbot/leadintake/internal/repository"
	"gorm.io/gorm"
)

// ResumeService rebuilds the in-flight view of a checkpointed session so
// the transport can re-enter the flow at the right step.
type ResumeService struct {
	repos *repository.Repos
}

func NewResumeService(repos *repository.Repos) *ResumeService {
	return &ResumeService{repos: repos}
}

// Resume is a pure read: calling it any number of times returns the same
// step and fields and never mutates the session. ErrNoSession means
// "start fresh"; any other error is a storage failure the caller should
// retry.
func (s *ResumeService) Resume(userID int64) (*StepResult, error) {
	sess, err := s.repos.Session.Get(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return &StepResult{
		Step:    sess.CurrentStep,
		Fields:  sess.FieldMap(),
		Prompt:  resumePrompt(sess),
		Resumed: true,
	}, nil
}
