package otp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilepoint/dental-clinic/internal/kv"
)

const testPhone = "+85512345678"

func TestSendAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewMemoryStore())

	code, err := svc.Send(ctx, testPhone)
	require.NoError(t, err)
	assert.Equal(t, DemoCode, code)

	assert.NoError(t, svc.Verify(ctx, testPhone, code))
}

func TestWrongCodeIsNotConsumed(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewMemoryStore())

	code, err := svc.Send(ctx, testPhone)
	require.NoError(t, err)

	// Wrong guess fails but leaves the real code usable.
	assert.ErrorIs(t, svc.Verify(ctx, testPhone, "000000"), ErrInvalidCode)
	assert.NoError(t, svc.Verify(ctx, testPhone, code))
}

func TestReplayRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewMemoryStore())

	code, err := svc.Send(ctx, testPhone)
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, testPhone, code))
	assert.ErrorIs(t, svc.Verify(ctx, testPhone, code), ErrInvalidCode)
}

func TestVerifyWithoutSend(t *testing.T) {
	svc := NewService(kv.NewMemoryStore())

	err := svc.Verify(context.Background(), testPhone, DemoCode)
	assert.ErrorIs(t, err, ErrInvalidCode)
}
