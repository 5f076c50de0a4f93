package application

import (
	"errors"
	"time"

	"github.com/funnelbot/leadintake/internal/api/middleware"
	adminuser "github.com/funnelbot/leadintake/internal/domain/admin"
	"github.com/funnelbot/leadintake/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AdminService struct {
	repos *repository.Repos
}

func NewAdminService(repos *repository.Repos) *AdminService {
	return &AdminService{repos: repos}
}

func (s *AdminService) Login(username, password string) (string, error) {
	a, err := s.repos.Admin.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return middleware.GenerateToken(a.Username, 24*time.Hour)
}

// Bootstrap creates the initial admin account if it does not exist yet.
// An empty password skips bootstrapping entirely.
func (s *AdminService) Bootstrap(username, password string) error {
	if password == "" {
		return nil
	}
	_, err := s.repos.Admin.GetByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repos.Admin.Save(&adminuser.AdminUser{
		Username:     username,
		PasswordHash: string(hashed),
	})
}
