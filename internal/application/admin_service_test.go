package application

import (
	"testing"
	"time"

	"github.com/funnelbot/leadintake/internal/api/middleware"
	adminuser "github.com/funnelbot/leadintake/internal/domain/admin"
	"github.com/funnelbot/leadintake/internal/repository"
	"github.com/funnelbot/leadintake/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAdminServiceMocks(t *testing.T) (*AdminService, *mock.MockAdminRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAdmin := mock.NewMockAdminRepo(ctrl)
	svc := NewAdminService(&repository.Repos{Admin: mockAdmin})
	return svc, mockAdmin
}

func stubToken(t *testing.T, token string) {
	orig := middleware.GenerateToken
	middleware.GenerateToken = func(username string, expire time.Duration) (string, error) {
		return token, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = orig })
}

func hashFor(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)
	stubToken(t, "test-token")

	mockAdmin.EXPECT().GetByUsername("admin").Return(&adminuser.AdminUser{
		Username:     "admin",
		PasswordHash: hashFor(t, "secret"),
	}, nil)

	token, err := svc.Login("admin", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "test-token", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)

	mockAdmin.EXPECT().GetByUsername("admin").Return(&adminuser.AdminUser{
		Username:     "admin",
		PasswordHash: hashFor(t, "secret"),
	}, nil)

	_, err := svc.Login("admin", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)

	mockAdmin.EXPECT().GetByUsername("nobody").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login("nobody", "secret")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- Bootstrap ---------------------
func TestBootstrap_CreatesAccount(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)

	mockAdmin.EXPECT().GetByUsername("admin").Return(nil, gorm.ErrRecordNotFound)

	var saved *adminuser.AdminUser
	mockAdmin.EXPECT().Save(gomock.Any()).DoAndReturn(func(a *adminuser.AdminUser) error {
		saved = a
		return nil
	})

	assert.NoError(t, svc.Bootstrap("admin", "secret"))
	assert.Equal(t, "admin", saved.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("secret")))
}

func TestBootstrap_SkipsExistingAccount(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)

	mockAdmin.EXPECT().GetByUsername("admin").Return(&adminuser.AdminUser{Username: "admin"}, nil)

	assert.NoError(t, svc.Bootstrap("admin", "secret"))
}

func TestBootstrap_SkipsEmptyPassword(t *testing.T) {
	svc, _ := setupAdminServiceMocks(t)

	assert.NoError(t, svc.Bootstrap("admin", ""))
}
