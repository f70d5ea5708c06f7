// Package mood maps free-text mood descriptions to music recommendations.
package mood

import (
	"maps"
	"slices"
	"strings"
)

// Platform identifies a music platform that has a search query per profile.
type Platform string

// Supported platforms.
const (
	YouTube    Platform = "youtube"
	Spotify    Platform = "spotify"
	AppleMusic Platform = "appleMusic"
)

// Platforms lists the supported platforms in display order.
var Platforms = []Platform{YouTube, Spotify, AppleMusic}

// Profile is a fixed record pairing trigger keywords with display strings.
type Profile struct {
	Keywords      []string            `json:"keywords,omitempty"`
	Summary       string              `json:"summary"`
	Vibe          string              `json:"vibe"`
	SearchQueries map[Platform]string `json:"searchQueries"`
	Suggestions   []string            `json:"suggestions"`
}

// Query returns the search string for a platform, or "" if none is defined.
func (p Profile) Query(platform Platform) string {
	return p.SearchQueries[platform]
}

// Matches reports whether any keyword occurs in the lowercased input.
func (p Profile) Matches(lowered string) bool {
	return slices.ContainsFunc(p.Keywords, func(k string) bool {
		return strings.Contains(lowered, k)
	})
}

// profiles is scanned in order; the first match wins, so order matters.
var profiles = []Profile{
	{
		Keywords: []string{"stressed", "overwhelmed", "anxious", "worried", "pressure"},
		Summary:  "Stressed and overwhelmed",
		Vibe:     "Calming ambient & nature sounds",
		SearchQueries: map[Platform]string{
			YouTube:    "stress relief ambient music meditation",
			Spotify:    "chill ambient stress relief",
			AppleMusic: "relaxation meditation music",
		},
		Suggestions: []string{"Rain sounds with piano", "Forest ambience", "Deep breathing meditation music"},
	},
	{
		Keywords: []string{"sad", "depressed", "down", "melancholy", "heartbroken"},
		Summary:  "Sad and reflective",
		Vibe:     "Melancholic indie folk & acoustic",
		SearchQueries: map[Platform]string{
			YouTube:    "sad indie folk emotional acoustic",
			Spotify:    "melancholic indie folk",
			AppleMusic: "sad acoustic songs",
		},
		Suggestions: []string{"Bon Iver type artists", "Acoustic covers of popular songs", "Emotional indie playlists"},
	},
	{
		Keywords: []string{"happy", "excited", "joyful", "energetic", "celebration"},
		Summary:  "Happy and energetic",
		Vibe:     "Upbeat pop hits & dance music",
		SearchQueries: map[Platform]string{
			YouTube:    "upbeat happy pop dance music",
			Spotify:    "feel good pop hits",
			AppleMusic: "happy dance music",
		},
		Suggestions: []string{"Current pop chart toppers", "Feel-good throwbacks", "High-energy workout music"},
	},
	{
		Keywords: []string{"focused", "concentrated", "working", "studying", "productive"},
		Summary:  "Focused and determined",
		Vibe:     "Lo-fi study beats & instrumental",
		SearchQueries: map[Platform]string{
			YouTube:    "lofi hip hop study focus beats",
			Spotify:    "lofi study instrumental",
			AppleMusic: "focus music instrumental",
		},
		Suggestions: []string{"ChilledCow style beats", "Classical music for focus", "Video game soundtracks"},
	},
	{
		Keywords: []string{"romantic", "love", "intimate", "cozy", "date"},
		Summary:  "Romantic and warm",
		Vibe:     "Smooth jazz, R&B & soul",
		SearchQueries: map[Platform]string{
			YouTube:    "romantic jazz r&b love songs",
			Spotify:    "romantic soul r&b",
			AppleMusic: "love songs jazz",
		},
		Suggestions: []string{"Classic soul artists", "Modern R&B slow jams", "Jazz standards for romance"},
	},
	{
		Keywords: []string{"angry", "frustrated", "mad", "irritated", "furious"},
		Summary:  "Frustrated and intense",
		Vibe:     "Rock, metal & alternative",
		SearchQueries: map[Platform]string{
			YouTube:    "rock metal angry music playlist",
			Spotify:    "rock metal alternative angry",
			AppleMusic: "hard rock metal music",
		},
		Suggestions: []string{"Heavy metal classics", "Punk rock energy", "Alternative rock anthems"},
	},
	{
		Keywords: []string{"nostalgic", "memories", "past", "reminiscing", "throwback"},
		Summary:  "Nostalgic and wistful",
		Vibe:     "Classic throwback hits",
		SearchQueries: map[Platform]string{
			YouTube:    "nostalgic throwback hits 90s 2000s",
			Spotify:    "throwback classics nostalgic",
			AppleMusic: "retro hits nostalgia",
		},
		Suggestions: []string{"90s/2000s hits", "Childhood movie soundtracks", "Classic rock ballads"},
	},
	{
		Keywords: []string{"motivated", "determined", "driven", "ambitious", "workout"},
		Summary:  "Motivated and driven",
		Vibe:     "Uplifting electronic & workout beats",
		SearchQueries: map[Platform]string{
			YouTube:    "motivational electronic workout music",
			Spotify:    "workout motivation electronic",
			AppleMusic: "gym motivation music",
		},
		Suggestions: []string{"High-energy EDM", "Motivational hip-hop", "Workout pump-up songs"},
	},
}

var fallback = Profile{
	Summary: "Mixed emotions",
	Vibe:    "Eclectic mix & discovery",
	SearchQueries: map[Platform]string{
		YouTube:    "chill music mixed emotions playlist",
		Spotify:    "chill mixed mood music",
		AppleMusic: "mood music playlist",
	},
	Suggestions: []string{"Genre-blending playlists", "Artist radio stations", "Mood-based discoveries"},
}

// Profiles returns a copy of the profile table in match order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = p.clone()
	}
	return out
}

// Fallback returns the profile used when no keyword matches.
func Fallback() Profile {
	return fallback.clone()
}

// clone copies the slices and map so callers cannot mutate the table.
func (p Profile) clone() Profile {
	c := p
	c.Keywords = slices.Clone(p.Keywords)
	c.Suggestions = slices.Clone(p.Suggestions)
	c.SearchQueries = maps.Clone(p.SearchQueries)
	return c
}
