package spotify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	i := New(0)
	require.False(t, i.Connected())

	notice, err := i.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ConnectedNotice, notice)
	assert.True(t, i.Connected())

	// Second connect is a no-op.
	notice, err = i.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ConnectedNotice, notice)
}

func TestConnect_Canceled(t *testing.T) {
	i := New(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := i.Connect(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, i.Connected())
}

func TestCreatePlaylist(t *testing.T) {
	tests := []struct {
		name       string
		connect    bool
		wantNotice string
		wantErr    error
	}{
		{name: "not connected", connect: false, wantErr: ErrNotConnected},
		{name: "connected", connect: true, wantNotice: PlaylistNotice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := New(0)
			if tt.connect {
				_, err := i.Connect(context.Background())
				require.NoError(t, err)
			}

			notice, err := i.CreatePlaylist()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNotice, notice)
		})
	}
}

func TestDisconnect(t *testing.T) {
	i := New(0)
	_, err := i.Connect(context.Background())
	require.NoError(t, err)

	i.Disconnect()

	assert.False(t, i.Connected())
	_, err = i.CreatePlaylist()
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestEmbedURL(t *testing.T) {
	i := New(0)
	assert.Equal(t, "https://open.spotify.com/embed/search/chill%20ambient%20stress%20relief",
		i.EmbedURL("chill ambient stress relief"))
}
