package repository_test

import (
	"os"
	"testing"
	"time"

	"github.com/funnelbot/leadintake/internal/domain/attribution"
	"github.com/funnelbot/leadintake/internal/domain/buyer"
	"github.com/funnelbot/leadintake/internal/domain/session"
	"github.com/funnelbot/leadintake/internal/domain/submission"
	"github.com/funnelbot/leadintake/internal/repository"
	"github.com/funnelbot/leadintake/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var repos *repository.Repos

func TestMain(m *testing.M) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	repos = repository.NewRepositories(db)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func newSession(userID int64, step session.Step, fields map[string]string) *session.FormSession {
	s := session.New(userID, nil, attribution.Attribution{})
	s.CurrentStep = step
	for k, v := range fields {
		s.SetField(k, v)
	}
	return s
}

// --------------------- Sessions ---------------------
func TestSessionUpsertRoundtrip(t *testing.T) {
	s := newSession(1001, session.StepPhone, map[string]string{
		"name":    "Anna",
		"country": "Germany",
	})
	s.Attribution = attribution.Attribution{Type: attribution.TypeReferral, Value: "7"}
	require.NoError(t, repos.Session.Upsert(s))

	got, err := repos.Session.Get(1001)
	require.NoError(t, err)
	assert.Equal(t, session.StepPhone, got.CurrentStep)
	assert.Equal(t, "Anna", got.Field("name"))
	assert.Equal(t, "Germany", got.Field("country"))
	assert.Equal(t, attribution.TypeReferral, got.Attribution.Type)
	assert.Equal(t, "7", got.Attribution.Value)
}

func TestSessionUpsertReplaces(t *testing.T) {
	require.NoError(t, repos.Session.Upsert(newSession(1002, session.StepName, nil)))

	updated := newSession(1002, session.StepCountry, map[string]string{"name": "Anna"})
	require.NoError(t, repos.Session.Upsert(updated))

	got, err := repos.Session.Get(1002)
	require.NoError(t, err)
	assert.Equal(t, session.StepCountry, got.CurrentStep)
	assert.Equal(t, "Anna", got.Field("name"))

	// still one row per user
	stale, err := repos.Session.ListStale(time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	seen := 0
	for _, s := range stale {
		if s.UserID == 1002 {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestSessionDelete(t *testing.T) {
	require.NoError(t, repos.Session.Upsert(newSession(1003, session.StepName, nil)))
	require.NoError(t, repos.Session.Delete(1003))

	_, err := repos.Session.Get(1003)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// deleting again is a no-op
	assert.NoError(t, repos.Session.Delete(1003))
}

func TestListStaleAndMarkReminderSent(t *testing.T) {
	old := newSession(1004, session.StepCountry, map[string]string{"name": "Anna"})
	old.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repos.Session.Upsert(old))

	fresh := newSession(1005, session.StepName, nil)
	require.NoError(t, repos.Session.Upsert(fresh))

	cutoff := time.Now().UTC().Add(-30 * time.Minute)
	stale, err := repos.Session.ListStale(cutoff)
	require.NoError(t, err)

	ids := make(map[int64]bool)
	for _, s := range stale {
		ids[s.UserID] = true
	}
	assert.True(t, ids[1004])
	assert.False(t, ids[1005])

	require.NoError(t, repos.Session.MarkReminderSent(1004))

	stale, err = repos.Session.ListStale(cutoff)
	require.NoError(t, err)
	for _, s := range stale {
		assert.NotEqual(t, int64(1004), s.UserID)
	}

}

func TestCountByStep(t *testing.T) {
	require.NoError(t, repos.Session.Upsert(newSession(1010, session.StepName, nil)))
	require.NoError(t, repos.Session.Upsert(newSession(1011, session.StepName, nil)))
	require.NoError(t, repos.Session.Upsert(newSession(1012, session.StepPhone, map[string]string{
		"name": "Anna", "country": "Germany",
	})))

	counts, err := repos.Session.CountByStep()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, counts[session.StepName], int64(2))
	assert.GreaterOrEqual(t, counts[session.StepPhone], int64(1))
}

// --------------------- Submissions ---------------------
func TestSubmissionInsertAndUniqueUser(t *testing.T) {
	sub := &submission.CompletedSubmission{
		UserID:      2001,
		Name:        "Anna",
		Country:     "Germany",
		Phone:       "+4915112345678",
		ContactTime: "evening",
		Attribution: attribution.Attribution{Type: attribution.TypeBuyer, Value: "buyer_fb_x7k2"},
		CompletedAt: time.Now().UTC(),
	}
	require.NoError(t, repos.Submission.Insert(sub))

	exists, err := repos.Submission.Exists(2001)
	require.NoError(t, err)
	assert.True(t, exists)

	dup := &submission.CompletedSubmission{
		UserID:      2001,
		Name:        "Anna Again",
		Country:     "Germany",
		Phone:       "+4915112345678",
		ContactTime: "morning",
		CompletedAt: time.Now().UTC(),
	}
	assert.Error(t, repos.Submission.Insert(dup))
}

func TestSubmissionListFilters(t *testing.T) {
	require.NoError(t, repos.Submission.Insert(&submission.CompletedSubmission{
		UserID:      2002,
		Name:        "Boris",
		Country:     "Poland",
		Phone:       "+48501234567",
		ContactTime: "morning",
		Attribution: attribution.Attribution{Type: attribution.TypeReferral, Value: "2001"},
		CompletedAt: time.Now().UTC(),
	}))

	attrType := string(attribution.TypeReferral)
	out, err := repos.Submission.List(repository.SubmissionQueryParams{AttributionType: &attrType})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	for _, s := range out {
		assert.Equal(t, attribution.TypeReferral, s.Attribution.Type)
	}

	processed := true
	out, err = repos.Submission.List(repository.SubmissionQueryParams{Processed: &processed})
	require.NoError(t, err)
	for _, s := range out {
		assert.True(t, s.Processed)
	}
}

func TestSubmissionMarkProcessed(t *testing.T) {
	require.NoError(t, repos.Submission.Insert(&submission.CompletedSubmission{
		UserID:      2003,
		Name:        "Carla",
		Country:     "Spain",
		Phone:       "+34612345678",
		ContactTime: "anytime",
		CompletedAt: time.Now().UTC(),
	}))

	require.NoError(t, repos.Submission.MarkProcessed(2003))

	got, err := repos.Submission.GetByUserID(2003)
	require.NoError(t, err)
	assert.True(t, got.Processed)
}

func TestCountReferredBy(t *testing.T) {
	for _, uid := range []int64{2010, 2011} {
		require.NoError(t, repos.Submission.Insert(&submission.CompletedSubmission{
			UserID:      uid,
			Name:        "Ref",
			Country:     "Germany",
			Phone:       "+4915100000000",
			ContactTime: "evening",
			Attribution: attribution.Attribution{Type: attribution.TypeReferral, Value: "555"},
			CompletedAt: time.Now().UTC(),
		}))
	}

	n, err := repos.Submission.CountReferredBy(555)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repos.Submission.CountReferredBy(556)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

// --------------------- Transactions ---------------------
func TestExecTxRollsBackOnError(t *testing.T) {
	require.NoError(t, repos.Session.Upsert(newSession(3001, session.StepContactTime, map[string]string{
		"name": "Dana", "country": "France", "phone": "+33612345678",
	})))
	// occupy the user_id so the insert inside the tx fails
	require.NoError(t, repos.Submission.Insert(&submission.CompletedSubmission{
		UserID:      3001,
		Name:        "Dana",
		Country:     "France",
		Phone:       "+33612345678",
		ContactTime: "morning",
		CompletedAt: time.Now().UTC(),
	}))

	err := repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Session.Delete(3001); err != nil {
			return err
		}
		return tx.Submission.Insert(&submission.CompletedSubmission{
			UserID:      3001,
			Name:        "Dana",
			Country:     "France",
			Phone:       "+33612345678",
			ContactTime: "evening",
			CompletedAt: time.Now().UTC(),
		})
	})
	require.Error(t, err)

	// the delete inside the failed tx must have been rolled back
	_, err = repos.Session.Get(3001)
	assert.NoError(t, err)
}

// --------------------- Buyers ---------------------
func TestBuyerLifecycle(t *testing.T) {
	require.NoError(t, repos.Buyer.Create(&buyer.Buyer{
		Code:   "buyer_tt_9m1p",
		Name:   "TikTok campaign",
		Active: true,
	}))

	got, err := repos.Buyer.GetByCode("buyer_tt_9m1p")
	require.NoError(t, err)
	assert.True(t, got.Active)

	require.NoError(t, repos.Buyer.SetActive("buyer_tt_9m1p", false))

	got, err = repos.Buyer.GetByCode("buyer_tt_9m1p")
	require.NoError(t, err)
	assert.False(t, got.Active)

	// duplicate code violates the unique index
	assert.Error(t, repos.Buyer.Create(&buyer.Buyer{Code: "buyer_tt_9m1p", Name: "dup"}))
}
