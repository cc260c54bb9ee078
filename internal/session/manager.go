package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/smilepoint/dental-clinic/internal/kv"
)

const (
	// CookieName carries the signed session ID.
	CookieName = "dc_session"

	keyPrefix  = "sess:"
	sessionTTL = 7 * 24 * time.Hour
)

var ErrNoSession = errors.New("session: not found")

// Manager keeps session state server-side in the kv store. The browser
// only ever sees an opaque signed session ID.
type Manager struct {
	store  kv.Store
	secret []byte
}

func NewManager(store kv.Store, secret string) *Manager {
	return &Manager{store: store, secret: []byte(secret)}
}

// Create opens a new session with the given state and returns the
// signed cookie value.
func (m *Manager) Create(ctx context.Context, state State) (string, error) {
	sid := uuid.NewString()
	if err := m.save(ctx, sid, state); err != nil {
		return "", err
	}
	return m.sign(sid)
}

// Load resolves a cookie value to its state. A missing, tampered or
// expired session comes back as ErrNoSession.
func (m *Manager) Load(ctx context.Context, cookie string) (string, State, error) {
	sid, err := m.verify(cookie)
	if err != nil {
		return "", State{}, ErrNoSession
	}

	raw, err := m.store.Get(ctx, keyPrefix+sid)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", State{}, ErrNoSession
		}
		return "", State{}, err
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return "", State{}, ErrNoSession
	}

	return sid, state, nil
}

// Update replaces the state of an existing session, refreshing its TTL.
func (m *Manager) Update(ctx context.Context, sid string, state State) error {
	return m.save(ctx, sid, state)
}

// Destroy removes the server-side record; the cookie becomes useless.
func (m *Manager) Destroy(ctx context.Context, sid string) error {
	return m.store.Delete(ctx, keyPrefix+sid)
}

func (m *Manager) save(ctx context.Context, sid string, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, keyPrefix+sid, raw, sessionTTL)
}

func (m *Manager) sign(sid string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
	})
	return token.SignedString(m.secret)
}

func (m *Manager) verify(cookie string) (string, error) {
	token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}

	return sid, nil
}
