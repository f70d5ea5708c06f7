package mood

import (
	"fmt"
	"strings"
	"time"
)

var platformLabels = map[Platform]string{
	YouTube:    "YouTube",
	Spotify:    "Spotify",
	AppleMusic: "Apple Music",
}

// Label returns the display name of a platform.
func (p Platform) Label() string {
	if label, ok := platformLabels[p]; ok {
		return label
	}
	return string(p)
}

// FormatResult returns a human-readable summary of a classification.
func FormatResult(r Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Mood:  %s\n", r.Profile.Summary))
	sb.WriteString(fmt.Sprintf("Vibe:  %s\n", r.Profile.Vibe))

	sb.WriteString("\nSearch:\n")
	for _, p := range Platforms {
		if q := r.Profile.Query(p); q != "" {
			sb.WriteString(fmt.Sprintf("  %-12s %s\n", p.Label()+":", q))
		}
	}

	if len(r.Profile.Suggestions) > 0 {
		sb.WriteString("\nTry:\n")
		for _, s := range r.Profile.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	return sb.String()
}

// FormatProfiles lists the profile table in match order, fallback last.
func FormatProfiles(ps []Profile) string {
	var sb strings.Builder

	for i, p := range ps {
		sb.WriteString(fmt.Sprintf("%d. %s → %s\n", i+1, p.Summary, p.Vibe))
		sb.WriteString(fmt.Sprintf("   keywords: %s\n", strings.Join(p.Keywords, ", ")))
	}

	fb := Fallback()
	sb.WriteString(fmt.Sprintf("*. %s → %s (no keyword matched)\n", fb.Summary, fb.Vibe))

	return sb.String()
}

// TimeAgo formats the time elapsed since t as "Just now", "5m ago",
// "3h ago" or "2d ago".
func TimeAgo(t, now time.Time) string {
	mins := int(now.Sub(t) / time.Minute)

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case mins < 24*60:
		return fmt.Sprintf("%dh ago", mins/60)
	default:
		return fmt.Sprintf("%dd ago", mins/(24*60))
	}
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
