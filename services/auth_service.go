package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SallesND3V/Doceiria-Mockup-Site/models"
	"github.com/SallesND3V/Doceiria-Mockup-Site/utils"
)

// AuthService owns the admin accounts and the session token lifecycle.
type AuthService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{db: db, secret: []byte(secret), ttl: ttl}
}

// Register creates an admin account and returns a fresh session token.
// Fails with ErrEmailTaken when the email already has an account.
func (s *AuthService) Register(email, password, name string) (string, *models.AdminUser, error) {
	var existing models.AdminUser
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return "", nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	admin := models.AdminUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return "", nil, err
	}

	token, err := s.IssueToken(admin.ID, admin.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// Login verifies the credentials and returns a fresh session token.
func (s *AuthService) Login(email, password string) (string, *models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(admin.ID, admin.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// IssueToken signs a token for the given admin, expiring after the
// configured TTL.
func (s *AuthService) IssueToken(adminID, email string) (string, error) {
	return utils.GenerateJWT(s.secret, adminID, email, s.ttl)
}

// VerifyToken resolves a bearer token to its admin account. It fails when
// the signature is invalid, the token expired, or the account no longer
// exists. Every protected route goes through here.
func (s *AuthService) VerifyToken(token string) (*models.AdminUser, error) {
	adminID, err := utils.ParseJWT(s.secret, token)
	if err != nil {
		return nil, err
	}

	var admin models.AdminUser
	if err := s.db.Where("id = ?", adminID).First(&admin).Error; err != nil {
		return nil, utils.ErrInvalidToken
	}
	return &admin, nil
}

// EnsureDefaultAdmin seeds the bootstrap admin account on first startup.
// The fixed credentials are a development convenience, not a security
// boundary: deployments must override them via ADMIN_EMAIL/ADMIN_PASSWORD.
func (s *AuthService) EnsureDefaultAdmin(email, password, name string) error {
	var existing models.AdminUser
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.AdminUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	return s.db.Create(&admin).Error
}
