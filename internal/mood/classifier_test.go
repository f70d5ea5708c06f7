package mood

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSummary string
	}{
		{name: "stressed keyword", input: "so anxious", wantSummary: "Stressed and overwhelmed"},
		{name: "sad keyword", input: "heartbroken", wantSummary: "Sad and reflective"},
		{name: "happy keyword", input: "joyful", wantSummary: "Happy and energetic"},
		{name: "focused keyword", input: "studying hard", wantSummary: "Focused and determined"},
		{name: "romantic keyword", input: "cozy evening", wantSummary: "Romantic and warm"},
		{name: "angry keyword", input: "furious", wantSummary: "Frustrated and intense"},
		{name: "nostalgic keyword", input: "reminiscing", wantSummary: "Nostalgic and wistful"},
		{name: "motivated keyword", input: "ambitious", wantSummary: "Motivated and driven"},
		{
			name:        "earlier profile wins over later",
			input:       "I'm feeling overwhelmed but motivated",
			wantSummary: "Stressed and overwhelmed",
		},
		{
			name:        "sad declared before happy",
			input:       "happy but heartbroken",
			wantSummary: "Sad and reflective",
		},
		{name: "upper case", input: "STRESSED", wantSummary: "Stressed and overwhelmed"},
		{name: "mixed case", input: "FeElInG JoYfUl", wantSummary: "Happy and energetic"},
		{name: "substring inside a word", input: "waiting for an update", wantSummary: "Romantic and warm"},
		{name: "no keyword", input: "nothing in particular", wantSummary: "Mixed emotions"},
		{name: "empty", input: "", wantSummary: "Mixed emotions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			assert.Equal(t, tt.wantSummary, got.Profile.Summary)
			assert.Equal(t, tt.input, got.RawInput)
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Match("stressed"), Match("STRESSED"))
}

func TestClassify_Fallback(t *testing.T) {
	got := Classify("nothing in particular")

	assert.True(t, got.IsFallback())
	assert.Equal(t, "Eclectic mix & discovery", got.Profile.Vibe)
	assert.Equal(t, "chill music mixed emotions playlist", got.Profile.Query(YouTube))
	assert.False(t, Classify("stressed").IsFallback())
}

func TestClassifier_Options(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewClassifier(
		WithClock(func() time.Time { return fixed }),
		WithIDGenerator(func() string { return "result-1" }),
	)

	got := c.Classify("  Feeling Nostalgic  ")

	assert.Equal(t, "result-1", got.ID)
	assert.Equal(t, fixed, got.CreatedAt)
	assert.Equal(t, "  Feeling Nostalgic  ", got.RawInput)
	assert.Equal(t, "Nostalgic and wistful", got.Profile.Summary)
}

func TestClassify_IDs(t *testing.T) {
	first := Classify("happy")
	second := Classify("happy")

	require.NotEqual(t, first.ID, second.ID)

	id, err := uuid.Parse(first.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.False(t, first.CreatedAt.IsZero())
}

func TestProfiles_ReturnsCopy(t *testing.T) {
	ps := Profiles()
	require.Len(t, ps, 8)

	ps[0].Summary = "changed"
	ps[0].Keywords[0] = "changed"
	ps[0].SearchQueries[YouTube] = "changed"

	fresh := Profiles()
	assert.Equal(t, "Stressed and overwhelmed", fresh[0].Summary)
	assert.Equal(t, "stressed", fresh[0].Keywords[0])
	assert.Equal(t, "stress relief ambient music meditation", fresh[0].Query(YouTube))
}

func TestProfiles_Complete(t *testing.T) {
	for _, p := range append(Profiles(), Fallback()) {
		t.Run(p.Summary, func(t *testing.T) {
			assert.NotEmpty(t, p.Vibe)
			assert.Len(t, p.Suggestions, 3)
			for _, platform := range Platforms {
				assert.NotEmpty(t, p.Query(platform), "missing %s query", platform)
			}
		})
	}
}
