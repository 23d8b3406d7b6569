package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/u-share/sortflow/internal/api"
	"github.com/u-share/sortflow/internal/auth"
	"github.com/u-share/sortflow/internal/model"
)

// testBackend is a minimal user service: one valid credential pair, one valid
// token.
type testBackend struct {
	validToken   string
	profileCalls int
	failProfile  int // status to return from /users/me/, 0 means success
}

func (b *testBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("username") != "alice" || r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"` + b.validToken + `","token_type":"bearer"}`))
	})
	mux.HandleFunc("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		b.profileCalls++
		if b.failProfile != 0 {
			w.WriteHeader(b.failProfile)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+b.validToken {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"username":"alice"}`))
	})
	return mux
}

func newTestStore(t *testing.T, backend *testBackend) (*Store, *FileTokenStore) {
	t.Helper()

	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	tokens, err := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	var store *Store
	apiClient := api.New(server.URL, api.WithAuthToken(func() string { return store.Token() }))
	store = NewStore(auth.NewClient(apiClient), tokens)
	return store, tokens
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	backend := &testBackend{validToken: "tok-1"}
	store, tokens := newTestStore(t, backend)

	require.False(t, store.IsLoggedIn())
	require.Nil(t, store.User())

	err := store.Login(context.Background(), model.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, "tok-1", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, "alice", store.User().Username)
	assert.False(t, store.Loading())

	persisted, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", persisted)

	store.Logout()

	// Back to the pre-login state, including persisted storage.
	assert.False(t, store.IsLoggedIn())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
	persisted, err = tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestLoginFailureClearsLoading(t *testing.T) {
	backend := &testBackend{validToken: "tok-1"}
	store, _ := newTestStore(t, backend)

	err := store.Login(context.Background(), model.Credentials{Username: "alice", Password: "wrong"})

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindServer, apiErr.Kind)
	assert.False(t, store.Loading())
	assert.False(t, store.IsLoggedIn())
}

func TestLogoutIdempotent(t *testing.T) {
	backend := &testBackend{validToken: "tok-1"}
	store, tokens := newTestStore(t, backend)

	require.NoError(t, store.Login(context.Background(), model.Credentials{Username: "alice", Password: "secret"}))

	store.Logout()
	store.Logout()

	assert.False(t, store.IsLoggedIn())
	assert.Nil(t, store.User())
	persisted, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestRefreshProfileNoTokenIsNoOp(t *testing.T) {
	backend := &testBackend{validToken: "tok-1"}
	store, _ := newTestStore(t, backend)

	require.NoError(t, store.RefreshProfile(context.Background()))
	assert.Equal(t, 0, backend.profileCalls)
}

func TestRefreshProfile401ClearsSession(t *testing.T) {
	backend := &testBackend{validToken: "tok-1"}
	store, tokens := newTestStore(t, backend)

	require.NoError(t, store.Login(context.Background(), model.Credentials{Username: "alice", Password: "secret"}))

	backend.failProfile = http.StatusUnauthorized
	err := store.RefreshProfile(context.Background())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	// The whole session is cleared: token, profile, persisted copy.
	assert.False(t, store.IsLoggedIn())
	assert.Nil(t, store.User())
	persisted, loadErr := tokens.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, persisted)
}

func TestInitializeSwallowsStaleToken(t *testing.T) {
	backend := &testBackend{validToken: "tok-1", failProfile: http.StatusUnauthorized}

	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	tokens, err := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	require.NoError(t, tokens.Save("stale-token"))

	var store *Store
	apiClient := api.New(server.URL, api.WithAuthToken(func() string { return store.Token() }))
	store = NewStore(auth.NewClient(apiClient), tokens)

	// Hydrated from disk before validation.
	require.True(t, store.IsLoggedIn())

	store.Initialize(context.Background())

	// The failed refresh logged the session out; Initialize itself never fails.
	assert.False(t, store.IsLoggedIn())
	persisted, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestInitializeValidToken(t *testing.T) {
	backend := &testBackend{validToken: "tok-1"}

	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	tokens, err := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	require.NoError(t, tokens.Save("tok-1"))

	var store *Store
	apiClient := api.New(server.URL, api.WithAuthToken(func() string { return store.Token() }))
	store = NewStore(auth.NewClient(apiClient), tokens)

	store.Initialize(context.Background())

	assert.True(t, store.IsLoggedIn())
	require.NotNil(t, store.User())
	assert.Equal(t, "alice", store.User().Username)
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store, err := NewFileTokenStore(path)
	require.NoError(t, err)

	// Absent file means logged out, not an error.
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("tok-xyz"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing an absent token must not fail")

	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
