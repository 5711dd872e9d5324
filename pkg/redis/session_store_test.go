package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0000000000000000000000000000000000000000000000000000000000000000"

func useMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	SetClient(cli)
	t.Cleanup(func() {
		_ = cli.Close()
		srv.Close()
	})
	return srv
}

func TestNewSessionStoreValidation(t *testing.T) {
	_, err := NewSessionStore("zz")
	assert.Error(t, err)

	_, err = NewSessionStore("0011")
	assert.Error(t, err)

	store, err := NewSessionStore(testKey)
	assert.NoError(t, err)
	assert.NotNil(t, store)
}

func TestSessionStoreEncryptDecrypt(t *testing.T) {
	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	enc, err := store.encrypt([]byte(`{"x":1}`))
	assert.NoError(t, err)
	assert.NotEmpty(t, enc)

	dec, err := store.decrypt(enc)
	assert.NoError(t, err)
	assert.Contains(t, string(dec), `"x":1`)

	_, err = store.decrypt("00") // too short ciphertext
	assert.Error(t, err)

	_, err = store.decrypt("zz-not-hex")
	assert.Error(t, err)
}

func TestSessionStoreEncryptDecrypt_InvalidKeyMaterial(t *testing.T) {
	store := &SessionStore{encryptionKey: []byte("short-key")}
	_, err := store.encrypt([]byte("x"))
	assert.Error(t, err)

	_, err = store.decrypt("00")
	assert.Error(t, err)
}

func TestSessionStoreCreateGetDeleteSuccess(t *testing.T) {
	srv := useMiniRedis(t)

	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	ctx := context.Background()
	created := time.Now().UTC().Truncate(time.Second)
	err = store.CreateSession(ctx, "sid-ok", &SessionData{UserID: "u-1", Role: "cp", CreatedAt: created}, time.Minute)
	require.NoError(t, err)

	// stored value is encrypted, never the raw user id
	raw, err := srv.Get("session:sid-ok")
	require.NoError(t, err)
	assert.NotContains(t, raw, "u-1")
	assert.True(t, srv.TTL("session:sid-ok") > 0)

	data, err := store.GetSession(ctx, "sid-ok")
	require.NoError(t, err)
	assert.Equal(t, "u-1", data.UserID)
	assert.Equal(t, "cp", data.Role)
	assert.True(t, created.Equal(data.CreatedAt))

	require.NoError(t, store.DeleteSession(ctx, "sid-ok"))

	_, err = store.GetSession(ctx, "sid-ok")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_GetSessionInvalidJSONPayload(t *testing.T) {
	useMiniRedis(t)

	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	enc, err := store.encrypt([]byte("plain-text"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, Set(ctx, "session:sid-bad-json", enc, time.Minute))

	_, err = store.GetSession(ctx, "sid-bad-json")
	assert.Error(t, err)
}

func TestSessionStore_OperationHooks(t *testing.T) {
	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	origSet := setSessionValue
	origGet := getSessionValue
	origDel := delSessionValue
	t.Cleanup(func() {
		setSessionValue = origSet
		getSessionValue = origGet
		delSessionValue = origDel
	})

	setSessionValue = func(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
		return errors.New("set failed")
	}
	err = store.CreateSession(context.Background(), "sid-hook", &SessionData{UserID: "u"}, time.Minute)
	assert.Error(t, err)

	getSessionValue = func(_ context.Context, _ string) (string, error) {
		return "", errors.New("connection reset")
	}
	_, err = store.GetSession(context.Background(), "sid-hook")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)

	enc, err := store.encrypt([]byte(`{"userId":"ok","role":"developer"}`))
	require.NoError(t, err)
	getSessionValue = func(_ context.Context, _ string) (string, error) {
		return enc, nil
	}
	data, err := store.GetSession(context.Background(), "sid-hook")
	assert.NoError(t, err)
	assert.Equal(t, "ok", data.UserID)
	assert.Equal(t, "developer", data.Role)

	delSessionValue = func(_ context.Context, _ string) error { return errors.New("delete failed") }
	assert.Error(t, store.DeleteSession(context.Background(), "sid-hook"))
}

func TestSessionStore_CreateSession_MarshalErrorBranch(t *testing.T) {
	store, err := NewSessionStore(testKey)
	require.NoError(t, err)

	origMarshal := marshalSessionJSON
	t.Cleanup(func() { marshalSessionJSON = origMarshal })

	marshalSessionJSON = func(v interface{}) ([]byte, error) {
		return nil, errors.New("marshal failed")
	}

	err = store.CreateSession(context.Background(), "sid-marshal", &SessionData{UserID: "u"}, time.Minute)
	assert.Error(t, err)
}
