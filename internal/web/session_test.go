package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justestif/go-music-vibe-assistant/internal/history"
	"github.com/justestif/go-music-vibe-assistant/internal/mood"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(SessionConfig{HistoryLimit: 3})

	session, err := store.Create()
	require.NoError(t, err)
	assert.Len(t, session.ID, 64)
	assert.Equal(t, 3, session.History.Limit())
	assert.False(t, session.Spotify.Connected())

	assert.Same(t, session, store.Get(session.ID))
	assert.Nil(t, store.Get("unknown"))

	store.Delete(session.ID)
	assert.Nil(t, store.Get(session.ID))
}

func TestSessionStore_DefaultHistoryLimit(t *testing.T) {
	store := NewSessionStore(SessionConfig{})

	session, err := store.Create()
	require.NoError(t, err)
	assert.Equal(t, history.DefaultLimit, session.History.Limit())
}

func TestSessionStore_Expiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	store := NewSessionStore(SessionConfig{TTL: time.Hour})
	store.now = func() time.Time { return now }

	idle, err := store.Create()
	require.NoError(t, err)
	active, err := store.Create()
	require.NoError(t, err)

	now = now.Add(45 * time.Minute)
	require.NotNil(t, store.Get(active.ID))

	now = now.Add(30 * time.Minute)
	assert.Equal(t, 1, store.DeleteExpired())
	assert.Equal(t, 1, store.Len())
	assert.NotNil(t, store.Get(active.ID))
	assert.Nil(t, store.Get(idle.ID))
}

func TestSessionStore_GetOrCreate(t *testing.T) {
	store := NewSessionStore(SessionConfig{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	created, err := store.GetOrCreate(rec, req)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, created.ID, cookies[0].Value)
	assert.Equal(t, int(DefaultSessionTTL.Seconds()), cookies[0].MaxAge)

	// A request carrying the cookie gets the same session and no new cookie.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	got, err := store.GetOrCreate(rec, req)
	require.NoError(t, err)
	assert.Same(t, created, got)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSession_CurrentAndFlash(t *testing.T) {
	store := NewSessionStore(SessionConfig{})
	session, err := store.Create()
	require.NoError(t, err)

	_, ok := session.Current()
	assert.False(t, ok)

	r := mood.Classify("feeling cozy")
	session.SetCurrent(r)
	got, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, r.ID, got.ID)

	assert.Nil(t, session.PopFlash())
	session.SetFlash("success", "done")
	assert.Equal(t, &FlashMessage{Type: "success", Message: "done"}, session.PopFlash())
	assert.Nil(t, session.PopFlash())
}
