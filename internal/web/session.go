// Package web provides the HTTP server and web UI for the Music Vibe Assistant.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/justestif/go-music-vibe-assistant/internal/history"
	"github.com/justestif/go-music-vibe-assistant/internal/mood"
	"github.com/justestif/go-music-vibe-assistant/internal/spotify"
)

const (
	sessionCookieName = "session_id"

	// DefaultSessionTTL is how long an idle session is kept.
	DefaultSessionTTL = 24 * time.Hour
)

// Session is one browser's state: its mood history, the result being
// shown, the demo Spotify panel and a pending notification.
type Session struct {
	ID      string
	History *history.Store
	Spotify *spotify.Integration

	mu       sync.Mutex
	current  *mood.Result
	flash    *FlashMessage
	lastSeen time.Time
}

// Current returns the result being shown, if any.
func (s *Session) Current() (mood.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return mood.Result{}, false
	}
	return *s.current, true
}

// SetCurrent makes r the result being shown.
func (s *Session) SetCurrent(r mood.Result) {
	s.mu.Lock()
	s.current = &r
	s.mu.Unlock()
}

// SetFlash queues a notification for the next render.
func (s *Session) SetFlash(kind, message string) {
	s.mu.Lock()
	s.flash = &FlashMessage{Type: kind, Message: message}
	s.mu.Unlock()
}

// PopFlash returns and clears the pending notification.
func (s *Session) PopFlash() *FlashMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.flash
	s.flash = nil
	return f
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

// SessionConfig configures new sessions.
type SessionConfig struct {
	HistoryLimit int
	ConnectDelay time.Duration
	TTL          time.Duration
}

// SessionStore manages sessions in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      SessionConfig
	now      func() time.Time
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore(cfg SessionConfig) *SessionStore {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		now:      time.Now,
	}
}

// Create starts a new session with an empty history.
func (s *SessionStore) Create() (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:       id,
		History:  history.New(s.cfg.HistoryLimit),
		Spotify:  spotify.New(s.cfg.ConnectDelay),
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return session, nil
}

// Get retrieves a live session by ID and refreshes its idle timer.
func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	now := s.now()
	if session.expired(now, s.cfg.TTL) {
		s.Delete(id)
		return nil
	}

	session.touch(now)
	return session
}

// Delete removes a session by ID.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of stored sessions, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// DeleteExpired removes all expired sessions and returns how many were removed.
func (s *SessionStore) DeleteExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.expired(now, s.cfg.TTL) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// GetFromRequest extracts the session from the request cookie.
func (s *SessionStore) GetFromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	return s.Get(cookie.Value)
}

// GetOrCreate returns the request's session, starting a new one and
// setting its cookie if there is none.
func (s *SessionStore) GetOrCreate(w http.ResponseWriter, r *http.Request) (*Session, error) {
	if session := s.GetFromRequest(r); session != nil {
		return session, nil
	}

	session, err := s.Create()
	if err != nil {
		return nil, err
	}
	s.SetCookie(w, session)
	return session, nil
}

// SetCookie sets the session cookie on the response.
func (s *SessionStore) SetCookie(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.cfg.TTL.Seconds()),
	})
}

// generateSessionID creates a cryptographically random session ID.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
