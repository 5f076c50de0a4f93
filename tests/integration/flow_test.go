package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/funnelbot/leadintake/internal/application"
	"github.com/funnelbot/leadintake/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullIntakeFlow walks one user through the whole form and checks
// the submission surfaces on the admin API.
func TestFullIntakeFlow(t *testing.T) {
	const userID int64 = 9001

	res, err := services.Form.Start(userID, "anna_k", "ref_500")
	require.NoError(t, err)
	assert.Equal(t, session.StepName, res.Step)

	for _, text := range []string{"Anna", "Germany", "+4915112345678"} {
		res, err = services.Form.Advance(userID, session.Input{Text: text})
		require.NoError(t, err)
		assert.False(t, res.Completed)
	}
	assert.Equal(t, session.StepContactTime, res.Step)

	res, err = services.Form.Advance(userID, session.Input{Text: "evening"})
	require.NoError(t, err)
	assert.True(t, res.Completed)

	// the session is gone, the submission exists
	_, err = services.Resume.Resume(userID)
	assert.Equal(t, application.ErrNoSession, err)

	_, err = services.Form.Start(userID, "anna_k", "")
	assert.Equal(t, application.ErrAlreadySubmitted, err)

	token := adminToken(t)
	w := doRequest(t, "GET", "/admin/submissions?attribution_type=referral&attribution_value=500", token, nil, http.StatusOK)

	var subs []struct {
		UserID int64  `json:"user_id"`
		Name   string `json:"name"`
		Phone  string `json:"phone"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, userID, subs[0].UserID)
	assert.Equal(t, "Anna", subs[0].Name)
	assert.Equal(t, "+4915112345678", subs[0].Phone)

	// the referrer gets credited
	w = doRequest(t, "GET", "/admin/referrals/500/count", token, nil, http.StatusOK)
	var count struct {
		ReferralCount int64 `json:"referral_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &count))
	assert.Equal(t, int64(1), count.ReferralCount)
}

// TestResumeMidFlow abandons a session mid-way and re-enters.
func TestResumeMidFlow(t *testing.T) {
	const userID int64 = 9002

	_, err := services.Form.Start(userID, "", "")
	require.NoError(t, err)
	_, err = services.Form.Advance(userID, session.Input{Text: "Boris"})
	require.NoError(t, err)

	// re-entry with a token must not restart or re-attribute
	res, err := services.Form.Start(userID, "", "buyer_late")
	require.NoError(t, err)
	assert.True(t, res.Resumed)
	assert.Equal(t, session.StepCountry, res.Step)
	assert.Equal(t, "Boris", res.Fields["name"])

	got, err := repos.Session.Get(userID)
	require.NoError(t, err)
	assert.True(t, got.Attribution.None())
}

func TestCancelMidFlow(t *testing.T) {
	const userID int64 = 9003

	_, err := services.Form.Start(userID, "", "")
	require.NoError(t, err)
	require.NoError(t, services.Form.Cancel(userID))

	_, err = services.Resume.Resume(userID)
	assert.Equal(t, application.ErrNoSession, err)

	// cancelled users can start over
	res, err := services.Form.Start(userID, "", "")
	require.NoError(t, err)
	assert.Equal(t, session.StepName, res.Step)
}

func TestTrackedActionsVisibleOnAdminAPI(t *testing.T) {
	const userID int64 = 9004

	require.NoError(t, services.Tracker.Track(userID, application.ActionStart, nil, nil))
	step := "name"
	value := "Dana"
	require.NoError(t, services.Tracker.Track(userID, "step_completed", &value, &step))

	token := adminToken(t)
	w := doRequest(t, "GET", "/admin/actions?user_id=9004", token, nil, http.StatusOK)

	var actions []struct {
		ActionType string `json:"action_type"`
		SessionID  string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actions))
	require.Len(t, actions, 2)
	assert.Equal(t, actions[0].SessionID, actions[1].SessionID)
}
