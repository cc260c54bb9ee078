package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/smilepoint/dental-clinic/internal/audit"
	domain "github.com/smilepoint/dental-clinic/internal/domain/identity"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/kv"
	"github.com/smilepoint/dental-clinic/internal/models"
	"github.com/smilepoint/dental-clinic/internal/otp"
	"github.com/smilepoint/dental-clinic/internal/session"
)

const testPhone = "+85512345678"

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	users  []models.User
	nextID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetUserByPhone(_ context.Context, phoneNumber string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].PhoneNumber == phoneNumber {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) CreateUser(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.PhoneNumber == user.PhoneNumber {
			return httperr.ErrBusiness(domain.ErrCodeDuplicateUser)
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeRepo) UpdateProfileImage(_ context.Context, userID uint, url string) error {
	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].ProfileImageURL = url
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ======================================================
// HELPERS
// ======================================================

type fixture struct {
	users    *fakeRepo
	codes    *otp.Service
	sessions *session.Manager
	verify   *VerifyCode
}

func newFixture() *fixture {
	users := &fakeRepo{}
	codes := otp.NewService(kv.NewMemoryStore())
	sessions := session.NewManager(kv.NewMemoryStore(), "test-secret")

	return &fixture{
		users:    users,
		codes:    codes,
		sessions: sessions,
		verify:   NewVerifyCode(codes, users, sessions),
	}
}

func (f *fixture) sendCode(t *testing.T) {
	t.Helper()
	_, err := f.codes.Send(context.Background(), testPhone)
	require.NoError(t, err)
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// ======================================================
// VERIFY CODE
// ======================================================

func TestVerifyCodeSignin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.users.users = []models.User{{ID: 1, PhoneNumber: testPhone, FirstName: "Dara"}}
	f.sendCode(t)

	res, err := f.verify.Execute(ctx, testPhone, otp.DemoCode, ModeSignin)
	require.NoError(t, err)
	require.NotNil(t, res.User)
	assert.Equal(t, uint(1), res.User.ID)
	assert.False(t, res.NeedsDetails)

	_, state, err := f.sessions.Load(ctx, res.Cookie)
	require.NoError(t, err)
	assert.Equal(t, session.KindAuthenticated, state.Kind)
	assert.Equal(t, uint(1), state.UserID)
}

func TestVerifyCodeSigninNoAccount(t *testing.T) {
	f := newFixture()
	f.sendCode(t)

	_, err := f.verify.Execute(context.Background(), testPhone, otp.DemoCode, ModeSignin)
	assert.True(t, httperr.IsBusiness(err, "no_account"))
}

func TestVerifyCodeSignup(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.sendCode(t)

	res, err := f.verify.Execute(ctx, testPhone, otp.DemoCode, ModeSignup)
	require.NoError(t, err)
	assert.Nil(t, res.User)
	assert.True(t, res.NeedsDetails)

	_, state, err := f.sessions.Load(ctx, res.Cookie)
	require.NoError(t, err)
	assert.Equal(t, session.KindPendingSignup, state.Kind)
	assert.Equal(t, testPhone, state.PendingPhone)
}

func TestVerifyCodeSignupAccountExists(t *testing.T) {
	f := newFixture()
	f.users.users = []models.User{{ID: 1, PhoneNumber: testPhone}}
	f.sendCode(t)

	_, err := f.verify.Execute(context.Background(), testPhone, otp.DemoCode, ModeSignup)
	assert.True(t, httperr.IsBusiness(err, "account_exists"))
}

func TestVerifyCodeWrongGuessThenRight(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.users.users = []models.User{{ID: 1, PhoneNumber: testPhone}}
	f.sendCode(t)

	_, err := f.verify.Execute(ctx, testPhone, "000000", ModeSignin)
	assert.True(t, httperr.IsBusiness(err, "invalid_code"))

	// The wrong guess did not consume the real code.
	_, err = f.verify.Execute(ctx, testPhone, otp.DemoCode, ModeSignin)
	require.NoError(t, err)

	// A successful verify did.
	_, err = f.verify.Execute(ctx, testPhone, otp.DemoCode, ModeSignin)
	assert.True(t, httperr.IsBusiness(err, "invalid_code"))
}

func TestVerifyCodeInvalidMode(t *testing.T) {
	f := newFixture()
	f.sendCode(t)

	_, err := f.verify.Execute(context.Background(), testPhone, otp.DemoCode, "register")
	assert.True(t, httperr.IsBusiness(err, "invalid_mode"))
}

// ======================================================
// COMPLETE SIGNUP
// ======================================================

func TestCompleteSignupWithoutSession(t *testing.T) {
	f := newFixture()
	uc := NewCompleteSignup(f.users, f.sessions, testDispatcher())

	_, err := uc.Execute(context.Background(), "garbage", CompleteSignupInput{
		PhoneNumber: testPhone,
		FirstName:   "Dara",
		LastName:    "Sok",
		Email:       "dara@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_signup_session"))
	assert.Empty(t, f.users.users)
}

func TestCompleteSignupPhoneMismatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.sendCode(t)

	res, err := f.verify.Execute(ctx, testPhone, otp.DemoCode, ModeSignup)
	require.NoError(t, err)

	uc := NewCompleteSignup(f.users, f.sessions, testDispatcher())
	_, err = uc.Execute(ctx, res.Cookie, CompleteSignupInput{
		PhoneNumber: "+85599999999",
		FirstName:   "Dara",
		LastName:    "Sok",
		Email:       "dara@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_signup_session"))
	assert.Empty(t, f.users.users)
}

func TestCompleteSignupAuthenticatedSessionRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	cookie, err := f.sessions.Create(ctx, session.Authenticated(1, testPhone))
	require.NoError(t, err)

	uc := NewCompleteSignup(f.users, f.sessions, testDispatcher())
	_, err = uc.Execute(ctx, cookie, CompleteSignupInput{
		PhoneNumber: testPhone,
		FirstName:   "Dara",
		LastName:    "Sok",
		Email:       "dara@example.com",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_signup_session"))
}
