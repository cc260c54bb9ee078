package otp

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/smilepoint/dental-clinic/internal/kv"
)

// DemoCode is issued for every phone number. There is no SMS gateway
// in this deployment; the code is fixed so the flow stays testable.
const DemoCode = "123456"

const (
	keyPrefix = "otp:"
	codeTTL   = 5 * time.Minute
)

var ErrInvalidCode = errors.New("otp: invalid or expired code")

// Service issues and verifies one-time codes. Codes are bcrypt-hashed
// before they reach the store.
type Service struct {
	store kv.Store
}

func NewService(store kv.Store) *Service {
	return &Service{store: store}
}

// Send stores a fresh code for the phone number and returns the code
// that would be delivered by SMS.
func (s *Service) Send(ctx context.Context, phoneNumber string) (string, error) {
	code := DemoCode

	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	if err := s.store.Set(ctx, keyPrefix+phoneNumber, hashed, codeTTL); err != nil {
		return "", err
	}

	return code, nil
}

// Verify consumes the stored code on a successful match. A wrong guess
// leaves the code in place so the real one can still be used.
func (s *Service) Verify(ctx context.Context, phoneNumber, code string) error {
	hashed, err := s.store.Get(ctx, keyPrefix+phoneNumber)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return ErrInvalidCode
		}
		return err
	}

	if bcrypt.CompareHashAndPassword(hashed, []byte(code)) != nil {
		return ErrInvalidCode
	}

	return s.store.Delete(ctx, keyPrefix+phoneNumber)
}
