// Package search builds external music-platform search URLs.
package search

import (
	"net/url"
	"strings"

	"github.com/justestif/go-music-vibe-assistant/internal/mood"
)

const (
	youTubeBase      = "https://www.youtube.com/results?search_query="
	spotifyBase      = "https://open.spotify.com/search/"
	spotifyEmbedBase = "https://open.spotify.com/embed/search/"
	appleMusicBase   = "https://music.apple.com/search?term="
)

// Link is a ready-to-open search on one platform.
type Link struct {
	Platform mood.Platform
	Label    string
	Query    string
	URL      string
}

// YouTubeURL returns the YouTube search URL for query.
func YouTubeURL(query string) string {
	return youTubeBase + EncodeComponent(query)
}

// SpotifyURL returns the Spotify web search URL for query.
func SpotifyURL(query string) string {
	return spotifyBase + EncodeComponent(query)
}

// SpotifyEmbedURL returns the Spotify embed search URL for query.
func SpotifyEmbedURL(query string) string {
	return spotifyEmbedBase + EncodeComponent(query)
}

// AppleMusicURL returns the Apple Music search URL for query.
func AppleMusicURL(query string) string {
	return appleMusicBase + EncodeComponent(query)
}

// URL returns the search URL for query on platform, or "" if the
// platform is unknown.
func URL(platform mood.Platform, query string) string {
	switch platform {
	case mood.YouTube:
		return YouTubeURL(query)
	case mood.Spotify:
		return SpotifyURL(query)
	case mood.AppleMusic:
		return AppleMusicURL(query)
	default:
		return ""
	}
}

// ForProfile returns one link per platform in display order.
// Platforms without a query are skipped.
func ForProfile(p mood.Profile) []Link {
	links := make([]Link, 0, len(mood.Platforms))
	for _, platform := range mood.Platforms {
		q := p.Query(platform)
		if q == "" {
			continue
		}
		links = append(links, Link{
			Platform: platform,
			Label:    platform.Label(),
			Query:    q,
			URL:      URL(platform, q),
		})
	}
	return links
}

// componentUnescaper restores the characters encodeURIComponent leaves
// as-is but url.QueryEscape escapes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent escapes s the way browsers' encodeURIComponent does.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
