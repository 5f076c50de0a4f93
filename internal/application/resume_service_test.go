package application

import (
	"errors"
	"testing"

	"github.com/funnelbot/leadintake/internal/domain/attribution"
	"github.com/funnelbot/leadintake/internal/domain/session"
	"github.com/funnelbot/leadintake/internal/repository"
	"github.com/funnelbot/leadintake/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupResumeServiceMocks(t *testing.T) (*ResumeService, *mock.MockSessionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSession := mock.NewMockSessionRepo(ctrl)
	svc := NewResumeService(&repository.Repos{Session: mockSession})
	return svc, mockSession
}

func TestResume_ReturnsCurrentStep(t *testing.T) {
	svc, mockSession := setupResumeServiceMocks(t)

	sess := inProgressSession(42, session.StepPhone,
		map[string]string{"name": "Anna", "country": "Germany"},
		attribution.Attribution{})
	mockSession.EXPECT().Get(int64(42)).Return(sess, nil)

	res, err := svc.Resume(42)
	assert.NoError(t, err)
	assert.True(t, res.Resumed)
	assert.Equal(t, session.StepPhone, res.Step)
	assert.Equal(t, "Germany", res.Fields["country"])
}

func TestResume_Idempotent(t *testing.T) {
	svc, mockSession := setupResumeServiceMocks(t)

	sess := inProgressSession(42, session.StepCountry,
		map[string]string{"name": "Anna"}, attribution.Attribution{})
	mockSession.EXPECT().Get(int64(42)).Return(sess, nil).Times(3)

	first, err := svc.Resume(42)
	assert.NoError(t, err)
	for i := 0; i < 2; i++ {
		res, err := svc.Resume(42)
		assert.NoError(t, err)
		assert.Equal(t, first, res)
	}
	// reads never move the step
	assert.Equal(t, session.StepCountry, sess.CurrentStep)
}

func TestResume_NoSession(t *testing.T) {
	svc, mockSession := setupResumeServiceMocks(t)

	mockSession.EXPECT().Get(int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Resume(42)
	assert.Equal(t, ErrNoSession, err)
}

func TestResume_StorageErrorPassesThrough(t *testing.T) {
	svc, mockSession := setupResumeServiceMocks(t)

	storageErr := errors.New("connection refused")
	mockSession.EXPECT().Get(int64(42)).Return(nil, storageErr)

	_, err := svc.Resume(42)
	assert.Equal(t, storageErr, err)
	assert.NotEqual(t, ErrNoSession, err)
}
