// Package spotify provides the demo Spotify panel: a simulated account
// connection and playlist action. Nothing here talks to Spotify.
package spotify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/justestif/go-music-vibe-assistant/internal/search"
)

// DefaultConnectDelay is how long the simulated connection takes.
const DefaultConnectDelay = 1500 * time.Millisecond

// Notices shown to the user.
const (
	ConnectedNotice = "Spotify integration demo activated! 🎵"
	PlaylistNotice  = "Feature coming soon: Auto-create Spotify playlist from your mood!"
)

// ErrNotConnected is returned by actions that need a connected account.
var ErrNotConnected = errors.New("spotify is not connected")

// Integration is the per-session state of the demo Spotify panel.
type Integration struct {
	mu           sync.Mutex
	connected    bool
	connectDelay time.Duration
}

// New creates a disconnected Integration.
func New(connectDelay time.Duration) *Integration {
	return &Integration{connectDelay: max(connectDelay, 0)}
}

// Connected reports whether the demo connection is active.
func (i *Integration) Connected() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.connected
}

// Connect simulates connecting an account. It waits the connect delay,
// or returns ctx.Err() if ctx is done first. Connecting twice is a no-op.
func (i *Integration) Connect(ctx context.Context) (string, error) {
	if i.Connected() {
		return ConnectedNotice, nil
	}

	if i.connectDelay > 0 {
		timer := time.NewTimer(i.connectDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	i.mu.Lock()
	i.connected = true
	i.mu.Unlock()

	return ConnectedNotice, nil
}

// Disconnect resets the panel.
func (i *Integration) Disconnect() {
	i.mu.Lock()
	i.connected = false
	i.mu.Unlock()
}

// CreatePlaylist returns the "coming soon" notice once connected.
func (i *Integration) CreatePlaylist() (string, error) {
	if !i.Connected() {
		return "", ErrNotConnected
	}
	return PlaylistNotice, nil
}

// EmbedURL returns the Spotify embed search URL for query.
func (i *Integration) EmbedURL(query string) string {
	return search.SpotifyEmbedURL(query)
}
