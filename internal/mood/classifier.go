package mood

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of classifying one submission.
type Result struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	RawInput  string    `json:"rawInput"`
	Profile   Profile   `json:"profile"`
}

// IsFallback reports whether no profile matched the input.
func (r Result) IsFallback() bool {
	return r.Profile.Summary == fallback.Summary && len(r.Profile.Keywords) == 0
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClock sets the time source used for Result.CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		c.now = now
	}
}

// WithIDGenerator sets the function used for Result.ID.
func WithIDGenerator(newID func() string) Option {
	return func(c *Classifier) {
		c.newID = newID
	}
}

// Classifier matches input text against the profile table.
type Classifier struct {
	now   func() time.Time
	newID func() string
}

// NewClassifier creates a Classifier with time-ordered UUIDv7 identifiers.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		now:   time.Now,
		newID: newResultID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClassifier = NewClassifier()

// Classify classifies input with the default Classifier.
func Classify(rawInput string) Result {
	return defaultClassifier.Classify(rawInput)
}

// Classify selects the first profile in table order with a keyword that
// occurs in the input (case-insensitive), or the fallback if none does.
// Callers are expected to reject blank input beforehand.
func (c *Classifier) Classify(rawInput string) Result {
	return Result{
		ID:        c.newID(),
		CreatedAt: c.now(),
		RawInput:  rawInput,
		Profile:   Match(rawInput),
	}
}

// Match returns the profile selected for input without building a Result.
func Match(input string) Profile {
	lowered := strings.ToLower(input)
	for _, p := range profiles {
		if p.Matches(lowered) {
			return p.clone()
		}
	}
	return fallback.clone()
}

func newResultID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		return uuid.NewString()
	}
	return id.String()
}
