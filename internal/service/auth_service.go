package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sgkim-dev/contract-desk/internal/ratelimit"
	"github.com/sgkim-dev/contract-desk/internal/repository"
)

type AuthService struct {
	creds   *repository.AuthRepository
	limiter ratelimit.Limiter
	log     zerolog.Logger
}

func NewAuthService(creds *repository.AuthRepository, limiter ratelimit.Limiter, log zerolog.Logger) *AuthService {
	return &AuthService{creds: creds, limiter: limiter, log: log}
}

// IsSetup reports whether a PIN has been registered.
func (s *AuthService) IsSetup(ctx context.Context) (bool, error) {
	_, err := s.creds.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Setup registers the PIN once; a second attempt conflicts.
func (s *AuthService) Setup(ctx context.Context, pin string) error {
	if !validPIN(pin) {
		return fmt.Errorf("%w: PIN은 4자리 숫자여야 합니다", ErrInvalidInput)
	}

	exists, err := s.IsSetup(ctx)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: PIN이 이미 설정되어 있습니다", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.creds.Create(ctx, string(hash)); err != nil {
		return err
	}

	s.log.Info().Msg("PIN registered")
	return nil
}

// Verify checks the PIN for the given client key. Lockout applies per key;
// a success clears the key's failure count.
func (s *AuthService) Verify(ctx context.Context, key, pin string) error {
	retryAfter, ok := s.limiter.Allow(key)
	if !ok {
		minutes := int(math.Ceil(retryAfter.Minutes()))
		return fmt.Errorf("%w: %d분 후 다시 시도하세요", ErrTooManyAttempts, minutes)
	}

	if !validPIN(pin) {
		remaining := s.limiter.Fail(key)
		return &PINMismatchError{Remaining: remaining}
	}

	cred, err := s.creds.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: PIN이 설정되어 있지 않습니다", ErrNotFound)
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PINHash), []byte(pin)) != nil {
		remaining := s.limiter.Fail(key)
		s.log.Warn().Str("client", key).Int("remaining", remaining).Msg("PIN mismatch")
		return &PINMismatchError{Remaining: remaining}
	}

	s.limiter.Reset(key)
	return nil
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
