package auth

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-tracker/internal/model/customerr"
	"max.ks1230/finance-tracker/internal/model/storage"
)

type testConfig struct {
	secret string
	ttl    time.Duration
}

func (c testConfig) SessionSecret() string {
	return c.secret
}

func (c testConfig) SessionTTL() time.Duration {
	return c.ttl
}

func newGate(t *testing.T, cfg testConfig) (*Service, *storage.InMemStorage) {
	store := storage.NewInMemStorage()
	hash, err := HashPin("1234")
	require.NoError(t, err)
	_, err = store.CreateUser(context.Background(), hash)
	require.NoError(t, err)

	svc, err := New(cfg, store)
	require.NoError(t, err)
	return svc, store
}

func isAuthError(err error) bool {
	var ae *customerr.AuthError
	return errors.As(err, &ae)
}

func Test_OnValidPin_ShouldAcceptOnlyFourDigits(t *testing.T) {
	assert.True(t, ValidPin("0000"))
	assert.True(t, ValidPin("1234"))
	for _, pin := range []string{"", "123", "12345", "12a4", " 123", "١٢٣٤"} {
		assert.False(t, ValidPin(pin), pin)
	}
}

func Test_OnLogin_ShouldIssueVerifiableSession(t *testing.T) {
	svc, store := newGate(t, testConfig{secret: "secret"})

	token, err := svc.Login(context.Background(), "1234")
	require.NoError(t, err)

	session, err := svc.Verify(token)
	require.NoError(t, err)
	rec, err := store.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rec.ID, session.UserID)
}

func Test_OnLogin_ShouldRejectWrongPin(t *testing.T) {
	svc, _ := newGate(t, testConfig{secret: "secret"})

	_, err := svc.Login(context.Background(), "9999")
	assert.True(t, isAuthError(err))
	assert.EqualError(t, err, "Invalid PIN")
}

func Test_OnVerify_ShouldRejectForeignAndExpiredTokens(t *testing.T) {
	svc, store := newGate(t, testConfig{secret: "secret", ttl: time.Hour})

	other, err := New(testConfig{secret: "another"}, store)
	require.NoError(t, err)
	foreign, err := other.Login(context.Background(), "1234")
	require.NoError(t, err)
	_, err = svc.Verify(foreign)
	assert.True(t, isAuthError(err))

	token, err := svc.Login(context.Background(), "1234")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	assert.True(t, isAuthError(err))

	_, err = svc.Verify("")
	assert.True(t, isAuthError(err))
	_, err = svc.Verify("not-a-token")
	assert.True(t, isAuthError(err))
}

func Test_OnVerify_ShouldNeverExpireWithoutTTL(t *testing.T) {
	svc, _ := newGate(t, testConfig{secret: "secret"})

	token, err := svc.Login(context.Background(), "1234")
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().AddDate(5, 0, 0) }

	_, err = svc.Verify(token)
	assert.NoError(t, err)
}

func Test_OnNew_ShouldGenerateSecretWhenMissing(t *testing.T) {
	svc, _ := newGate(t, testConfig{})
	assert.NotEmpty(t, svc.secret)

	token, err := svc.Login(context.Background(), "1234")
	require.NoError(t, err)
	_, err = svc.Verify(token)
	assert.NoError(t, err)
}

func Test_OnChangePin_ShouldReplacePin(t *testing.T) {
	ctx := context.Background()
	svc, store := newGate(t, testConfig{secret: "secret"})
	rec, err := store.GetUser(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.ChangePin(ctx, Session{UserID: rec.ID}, "1234", "5678"))

	_, err = svc.Login(ctx, "1234")
	assert.True(t, isAuthError(err))
	_, err = svc.Login(ctx, "5678")
	assert.NoError(t, err)
}

func Test_OnChangePin_ShouldKeepOldPinOnFailure(t *testing.T) {
	ctx := context.Background()
	svc, store := newGate(t, testConfig{secret: "secret"})
	rec, err := store.GetUser(ctx)
	require.NoError(t, err)
	session := Session{UserID: rec.ID}

	err = svc.ChangePin(ctx, session, "0000", "5678")
	assert.True(t, isAuthError(err))

	for _, bad := range []string{"12345", "12a4", ""} {
		err = svc.ChangePin(ctx, session, "1234", bad)
		var ve *customerr.ValidationError
		assert.True(t, errors.As(err, &ve), bad)
	}

	_, err = svc.Login(ctx, "1234")
	assert.NoError(t, err)
}

func Test_OnSessionContext_ShouldRoundTrip(t *testing.T) {
	_, ok := SessionFrom(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), Session{UserID: 3})
	s, ok := SessionFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(3), s.UserID)
}
