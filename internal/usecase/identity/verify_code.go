package identity

import (
	"context"
	"errors"

	domain "github.com/smilepoint/dental-clinic/internal/domain/identity"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/models"
	"github.com/smilepoint/dental-clinic/internal/otp"
	"github.com/smilepoint/dental-clinic/internal/session"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

const (
	ModeSignin = "signin"
	ModeSignup = "signup"
)

type VerifyCodeResult struct {
	// User is set in signin mode.
	User *models.User

	// NeedsDetails signals the signup flow should continue with
	// complete-signup.
	NeedsDetails bool

	// Cookie is the signed session cookie value for the new session.
	Cookie string
}

// ======================================================
// USE CASE
// ======================================================

type VerifyCode struct {
	codes    *otp.Service
	users    domain.Repository
	sessions *session.Manager
}

func NewVerifyCode(
	codes *otp.Service,
	users domain.Repository,
	sessions *session.Manager,
) *VerifyCode {
	return &VerifyCode{
		codes:    codes,
		users:    users,
		sessions: sessions,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *VerifyCode) Execute(
	ctx context.Context,
	phoneNumber string,
	code string,
	mode string,
) (*VerifyCodeResult, error) {

	if mode != ModeSignin && mode != ModeSignup {
		return nil, httperr.ErrBusiness("invalid_mode")
	}

	if err := uc.codes.Verify(ctx, phoneNumber, code); err != nil {
		if errors.Is(err, otp.ErrInvalidCode) {
			return nil, httperr.ErrBusiness("invalid_code")
		}
		return nil, err
	}

	user, err := uc.users.GetUserByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	if mode == ModeSignin {
		if user == nil {
			return nil, httperr.ErrBusiness("no_account")
		}

		cookie, err := uc.sessions.Create(
			ctx,
			session.Authenticated(user.ID, user.PhoneNumber),
		)
		if err != nil {
			return nil, err
		}

		return &VerifyCodeResult{User: user, Cookie: cookie}, nil
	}

	// Signup: the phone number must be unclaimed.
	if user != nil {
		return nil, httperr.ErrBusiness("account_exists")
	}

	cookie, err := uc.sessions.Create(ctx, session.PendingSignup(phoneNumber))
	if err != nil {
		return nil, err
	}

	return &VerifyCodeResult{NeedsDetails: true, Cookie: cookie}, nil
}
