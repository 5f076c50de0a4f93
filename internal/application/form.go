package application

import (
	"errors"

	"github.com/funnelbot/leadintake/internal/domain/session"
	"github.com/funnelbot/leadintake/internal/domain/submission"
	"github.com/funnelbot/leadintake/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAlreadySubmitted = errors.New("user already has a completed submission")
	ErrNoSession        = errors.New("no form session in progress")
)

// StepResult tells the transport what the user should see next.
type StepResult struct {
	Step      session.Step      `json:"step,omitempty"`
	Fields    map[string]string `json:"fields"`
	Prompt    string            `json:"prompt"`
	Completed bool              `json:"completed"`
	Resumed   bool              `json:"resumed"`
}

// FormService drives the intake flow: one validated reply per call,
// checkpointed to the session store after every accepted step.
type FormService struct {
	repos       *repository.Repos
	attribution *AttributionService
}

func NewFormService(repos *repository.Repos, attribution *AttributionService) *FormService {
	return &FormService{repos: repos, attribution: attribution}
}

// Start opens (or re-opens) the flow for a user. A completed submission
// rejects re-entry with ErrAlreadySubmitted; a live session is rehydrated
// as-is, keeping its original attribution no matter what token the new
// entry carried.
func (s *FormService) Start(userID int64, username, startParam string) (*StepResult, error) {
	exists, err := s.repos.Submission.Exists(userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubmitted
	}

	existing, err := s.repos.Session.Get(userID)
	if err == nil {
		return &StepResult{
			Step:    existing.CurrentStep,
			Fields:  existing.FieldMap(),
			Prompt:  resumePrompt(existing),
			Resumed: true,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attr := s.attribution.Resolve(startParam, userID)
	var uname *string
	if username != "" {
		uname = &username
	}
	sess := session.New(userID, uname, attr)
	if err := s.repos.Session.Upsert(sess); err != nil {
		return nil, err
	}
	return &StepResult{
		Step:   sess.CurrentStep,
		Fields: map[string]string{},
		Prompt: PromptFor(sess.CurrentStep),
	}, nil
}

// Advance validates the reply for the session's current step. Accepted
// input merges the field, moves the step forward and checkpoints; the
// final step instead converts the session into a submission inside one
// transaction. Any failure leaves the stored session exactly where it
// was, so the same input can be retried.
func (s *FormService) Advance(userID int64, in session.Input) (*StepResult, error) {
	sess, err := s.repos.Session.Get(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	step := sess.CurrentStep
	value, err := step.Validate(in)
	if err != nil {
		return nil, err
	}

	next, ok := step.Next()
	if !ok {
		return s.complete(sess, value)
	}

	sess.SetField(step.FieldKey(), value)
	sess.CurrentStep = next
	if err := s.repos.Session.Upsert(sess); err != nil {
		// checkpoint failed: undo the in-memory advance so the
		// caller sees the session unchanged and can retry
		sess.CurrentStep = step
		delete(sess.Fields, step.FieldKey())
		return nil, err
	}
	return &StepResult{
		Step:   next,
		Fields: sess.FieldMap(),
		Prompt: PromptFor(next),
	}, nil
}

// complete swaps the session for a submission: delete + insert in one
// transaction. The unique index on submissions.user_id backs the
// exactly-once guarantee even if a duplicate event slips through.
func (s *FormService) complete(sess *session.FormSession, contactTime string) (*StepResult, error) {
	sub := &submission.CompletedSubmission{
		UserID:      sess.UserID,
		Username:    sess.Username,
		Name:        sess.Field("name"),
		Country:     sess.Field("country"),
		Phone:       sess.Field("phone"),
		ContactTime: contactTime,
		Attribution: sess.Attribution,
	}
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Session.Delete(sess.UserID); err != nil {
			return err
		}
		return tx.Submission.Insert(sub)
	})
	if err != nil {
		return nil, err
	}

	fields := sess.FieldMap()
	fields[sess.CurrentStep.FieldKey()] = contactTime
	return &StepResult{
		Fields:    fields,
		Prompt:    completedPrompt,
		Completed: true,
	}, nil
}

// Cancel destroys the session without producing a submission. Cancelling
// with nothing in progress is a no-op.
func (s *FormService) Cancel(userID int64) error {
	return s.repos.Session.Delete(userID)
}
