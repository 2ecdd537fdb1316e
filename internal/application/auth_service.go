package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/pkg/helpers"
)

// AuthService authenticates the single coach account configured for the deployment.
type AuthService struct {
	CoachEmail        string
	CoachPasswordHash string
	JWT               *helpers.JWTManager
	Sessions          SessionStore
	Logger            *logrus.Logger
}

func NewAuthService(coachEmail, coachPasswordHash string, jwt *helpers.JWTManager, sessions SessionStore, logger *logrus.Logger) *AuthService {
	return &AuthService{
		CoachEmail:        strings.TrimSpace(coachEmail),
		CoachPasswordHash: coachPasswordHash,
		JWT:               jwt,
		Sessions:          sessions,
		Logger:            logger,
	}
}

type TokenPair struct {
	Subject            string
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func (s *AuthService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	if s.CoachEmail == "" || s.CoachPasswordHash == "" {
		return TokenPair{}, ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(email), s.CoachEmail) ||
		!helpers.CompareHashAndPassword(s.CoachPasswordHash, password) {
		return TokenPair{}, ErrInvalidCredentials
	}
	return s.issue(ctx, s.CoachEmail)
}

// Refresh rotates both tokens. The refresh token must belong to the current session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if err := s.checkSession(ctx, claims); err != nil {
		return TokenPair{}, err
	}
	return s.issue(ctx, claims.Subject)
}

// Authorize validates an access token and returns its subject.
func (s *AuthService) Authorize(ctx context.Context, accessToken string) (string, error) {
	claims, err := s.JWT.ParseAccessToken(accessToken)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := s.checkSession(ctx, claims); err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *AuthService) Logout(ctx context.Context, subject string) error {
	if s.Sessions == nil || subject == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, subject)
}

func (s *AuthService) issue(ctx context.Context, subject string) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(subject, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(subject, sid)
	if err != nil {
		return TokenPair{}, err
	}
	if s.Sessions != nil {
		if err := s.Sessions.Save(ctx, subject, sid, s.JWT.RefreshTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("subject", subject).Warn("session save failed")
		}
	}
	return TokenPair{
		Subject:            subject,
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
	}, nil
}

func (s *AuthService) checkSession(ctx context.Context, claims *helpers.Claims) error {
	if s.Sessions == nil {
		return nil
	}
	sid, err := s.Sessions.Get(ctx, claims.Subject)
	if err != nil || sid == "" || sid != claims.SessionID {
		return ErrInvalidCredentials
	}
	return nil
}
