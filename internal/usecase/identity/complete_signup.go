package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/smilepoint/dental-clinic/internal/audit"
	domain "github.com/smilepoint/dental-clinic/internal/domain/identity"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/models"
	"github.com/smilepoint/dental-clinic/internal/session"
	"github.com/smilepoint/dental-clinic/internal/validators"
)

type CompleteSignupInput struct {
	PhoneNumber string
	FirstName   string
	LastName    string
	Email       string
}

type CompleteSignup struct {
	users    domain.Repository
	sessions *session.Manager
	audit    *audit.Dispatcher
}

func NewCompleteSignup(
	users domain.Repository,
	sessions *session.Manager,
	audit *audit.Dispatcher,
) *CompleteSignup {
	return &CompleteSignup{
		users:    users,
		sessions: sessions,
		audit:    audit,
	}
}

// Execute turns a pending-signup session into an authenticated one by
// creating the user. The session cookie stays the same; only the
// server-side state changes.
func (uc *CompleteSignup) Execute(
	ctx context.Context,
	cookie string,
	in CompleteSignupInput,
) (*models.User, error) {

	sid, state, err := uc.sessions.Load(ctx, cookie)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, httperr.ErrBusiness("invalid_signup_session")
		}
		return nil, err
	}

	if state.Kind != session.KindPendingSignup || state.PendingPhone != in.PhoneNumber {
		return nil, httperr.ErrBusiness("invalid_signup_session")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	user := &models.User{
		PhoneNumber: in.PhoneNumber,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       email,
	}

	if err := uc.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.sessions.Update(
		ctx,
		sid,
		session.Authenticated(user.ID, user.PhoneNumber),
	); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_signed_up",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
