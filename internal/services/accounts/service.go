package accounts

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"invoice-service-backend/internal/models"
	"invoice-service-backend/internal/repository"
	"invoice-service-backend/internal/utils"
)

const minPasswordLength = 6

var (
	// ErrInvalidInput covers missing fields and too-short passwords.
	// Detected before any store access.
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the account persistence surface. Insert must return
// repository.ErrDuplicateEmail on an email unique-index violation; the
// application-level pre-check alone cannot close the race between two
// concurrent signups.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	Insert(user *models.User) error
}

type Service struct {
	users            UserStore
	log              *zap.Logger
	jwtSecret        string
	jwtAccessMinutes int
}

func NewService(users UserStore, log *zap.Logger, jwtSecret string, jwtAccessMinutes int) *Service {
	return &Service{
		users:            users,
		log:              log,
		jwtSecret:        jwtSecret,
		jwtAccessMinutes: jwtAccessMinutes,
	}
}

// Signup validates the payload, checks email uniqueness, hashes the
// password and inserts the account. The plaintext password is never
// persisted or logged.
func (s *Service) Signup(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || len(password) < minPasswordLength {
		return nil, ErrInvalidInput
	}

	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, repository.ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.log.Error("signup email lookup failed", zap.Error(err))
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("password hash failed", zap.Error(err))
		return nil, err
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Insert(&user); err != nil {
		if !errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.Error("user insert failed", zap.Error(err))
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies credentials and issues an access token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		s.log.Error("login email lookup failed", zap.Error(err))
		return "", nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(user.ID.String(), user.Email, s.jwtSecret, s.jwtAccessMinutes)
	if err != nil {
		s.log.Error("access token generation failed", zap.Error(err))
		return "", nil, err
	}

	return token, user, nil
}
