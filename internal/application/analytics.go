package application

import (
	"time"

	"github.com/funnelbot/leadintake/internal/domain/action"
	"github.com/funnelbot/leadintake/internal/domain/attribution"
	"github.com/funnelbot/leadintake/internal/domain/session"
	"github.com/funnelbot/leadintake/internal/domain/submission"
	"github.com/funnelbot/leadintake/internal/repository"
)

// FunnelStats is a live snapshot of in-progress sessions. Counts come
// from true step tracking on the session store, nothing is estimated.
type FunnelStats struct {
	ByStep          map[session.Step]int64 `json:"by_step"`
	Filling         int64                  `json:"filling"`
	ActiveLast5Min  int64                  `json:"active_last_5min"`
	StaleUnreminded int64                  `json:"stale_unreminded"`
}

type SubmissionStats struct {
	Total             int64                      `json:"total"`
	Today             int64                      `json:"today"`
	ByAttributionType map[attribution.Type]int64 `json:"by_attribution_type"`
	ByBuyerCode       map[string]int64           `json:"by_buyer_code"`
}

// AnalyticsService answers the read-only dashboard queries.
type AnalyticsService struct {
	repos          *repository.Repos
	staleThreshold time.Duration
}

func NewAnalyticsService(repos *repository.Repos, staleThreshold time.Duration) *AnalyticsService {
	return &AnalyticsService{repos: repos, staleThreshold: staleThreshold}
}

func (s *AnalyticsService) Funnel() (*FunnelStats, error) {
	byStep, err := s.repos.Session.CountByStep()
	if err != nil {
		return nil, err
	}
	var filling int64
	for _, n := range byStep {
		filling += n
	}
	now := time.Now().UTC()
	active, err := s.repos.Session.CountCreatedSince(now.Add(-5 * time.Minute))
	if err != nil {
		return nil, err
	}
	stale, err := s.repos.Session.CountStaleUnreminded(now.Add(-s.staleThreshold))
	if err != nil {
		return nil, err
	}
	return &FunnelStats{
		ByStep:          byStep,
		Filling:         filling,
		ActiveLast5Min:  active,
		StaleUnreminded: stale,
	}, nil
}

func (s *AnalyticsService) SubmissionStats() (*SubmissionStats, error) {
	total, err := s.repos.Submission.Count()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := s.repos.Submission.CountSince(todayStart)
	if err != nil {
		return nil, err
	}
	byType, err := s.repos.Submission.CountByAttributionType()
	if err != nil {
		return nil, err
	}
	byBuyer, err := s.repos.Submission.CountByBuyerCode()
	if err != nil {
		return nil, err
	}
	return &SubmissionStats{
		Total:             total,
		Today:             today,
		ByAttributionType: byType,
		ByBuyerCode:       byBuyer,
	}, nil
}

func (s *AnalyticsService) RecentSubmissions(params repository.SubmissionQueryParams) ([]submission.CompletedSubmission, error) {
	return s.repos.Submission.List(params)
}

func (s *AnalyticsService) MarkProcessed(userID int64) error {
	return s.repos.Submission.MarkProcessed(userID)
}

// ReferralCount counts completed submissions credited to this user's
// referral link.
func (s *AnalyticsService) ReferralCount(userID int64) (int64, error) {
	return s.repos.Submission.CountReferredBy(userID)
}

func (s *AnalyticsService) Actions(params repository.ActionQueryParams) ([]action.UserAction, error) {
	return s.repos.Action.List(params)
}
