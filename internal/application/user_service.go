package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/picbay/config"
	"github.com/oksasatya/picbay/internal/domain/entity"
	"github.com/oksasatya/picbay/internal/domain/repository"
	"github.com/oksasatya/picbay/pkg/helpers"
	"github.com/oksasatya/picbay/pkg/mailer"
	tpl "github.com/oksasatya/picbay/pkg/mailer/templates"
)

var (
	// ErrUserNotFound and ErrWrongPassword drive control flow inside the
	// login path; handlers collapse both into one generic message so the
	// response does not reveal which check failed.
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("password was wrong")
	// ErrInvalidLink covers every email verification failure mode.
	ErrInvalidLink = errors.New("validation link is not valid")
)

// EmailPublisher enqueues outgoing email jobs.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// UserService orchestrates registration, authentication and email
// verification on top of the user repository.
type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Pub    EmailPublisher
	Logger *logrus.Logger
	Cfg    *config.Config
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, pub EmailPublisher, logger *logrus.Logger, cfg *config.Config) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Pub: pub, Logger: logger, Cfg: cfg}
}

// RegisterInput is the allow-listed field set persisted for a new user.
// Anything else in the request payload is dropped at the binding layer.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Name     string
}

// NormalizeEmail lowercases and trims an email address. Applied before any
// lookup or insert so the unique index never sees case variants.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register hashes the password, issues a fresh validation token, persists
// the record unverified, and dispatches the verification email without
// waiting for the send to finish.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	token, err := helpers.GenValidationToken()
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:           NormalizeEmail(in.Email),
		Username:        in.Username,
		Password:        hash,
		Name:            in.Name,
		TokenValidation: token,
		IsValidated:     false,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.dispatchVerificationEmail(u)
	return u, nil
}

// dispatchVerificationEmail enqueues the verification email in the
// background. A publish failure is logged and never rolls back the
// registration.
func (s *UserService) dispatchVerificationEmail(u *entity.User) {
	if s.Pub == nil || (s.Cfg != nil && !s.Cfg.MailSendEnabled) {
		return
	}
	link := s.Cfg.VerifyEmailURL + "?token=" + u.TokenValidation + "&email=" + u.Email
	job := mailer.EmailJob{
		To:       u.Email,
		Template: tpl.VerifyEmail,
		Data: map[string]any{
			"Name":             u.Name,
			"CompanyName":      s.Cfg.CompanyName,
			"VerificationLink": link,
			"Year":             time.Now().Year(),
		},
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("failed to enqueue verification email")
		}
	}()
}

// Login checks the credentials and mints an auth token carrying
// {id, username, email, is_validated}.
func (s *UserService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrUserNotFound
		}
		return "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, ErrWrongPassword
	}
	return s.JWT.GenerateToken(u.ID, u.Username, u.Email, u.IsValidated)
}

// VerifyEmail consumes a validation token. The token is single-use: the
// first successful call clears it and flips is_validated, so replaying the
// same link can never match again. Every failure mode returns ErrInvalidLink
// so callers cannot distinguish a wrong token from an unknown email.
func (s *UserService) VerifyEmail(ctx context.Context, email, token string) error {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return ErrInvalidLink
	}
	if token == "" || u.TokenValidation != token {
		return ErrInvalidLink
	}

	u.TokenValidation = ""
	u.IsValidated = true
	if err := s.Repo.Update(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Error("failed to persist email verification")
		}
		return ErrInvalidLink
	}
	return nil
}

// GetProfile returns the user behind an authenticated request.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
