// Package analyzer runs the simulated mood analysis: a fixed delay
// followed by a keyword classification.
package analyzer

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/justestif/go-music-vibe-assistant/internal/mood"
)

// ErrEmptyInput is returned when the input is blank after trimming.
var ErrEmptyInput = errors.New("mood description is empty")

// DefaultDelay is how long an analysis takes.
const DefaultDelay = 2 * time.Second

// Service classifies mood descriptions after the analysis delay.
type Service struct {
	classifier *mood.Classifier
	delay      time.Duration
	logger     *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDelay sets the artificial analysis delay. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		s.delay = max(d, 0)
	}
}

// WithClassifier replaces the default classifier.
func WithClassifier(c *mood.Classifier) Option {
	return func(s *Service) {
		s.classifier = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// New creates an analysis service.
func New(opts ...Option) *Service {
	s := &Service{
		classifier: mood.NewClassifier(),
		delay:      DefaultDelay,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the configured analysis delay.
func (s *Service) Delay() time.Duration {
	return s.delay
}

// Analyze waits the analysis delay and classifies rawInput.
// It returns ErrEmptyInput for blank input and ctx.Err() if ctx is done
// before the delay elapses; nothing is classified in either case.
func (s *Service) Analyze(ctx context.Context, rawInput string) (mood.Result, error) {
	if strings.TrimSpace(rawInput) == "" {
		return mood.Result{}, ErrEmptyInput
	}

	if err := wait(ctx, s.delay); err != nil {
		s.logger.Debug("analysis canceled", zap.Error(err))
		return mood.Result{}, err
	}

	result := s.classifier.Classify(rawInput)

	s.logger.Info("mood analyzed",
		zap.String("result_id", result.ID),
		zap.String("summary", result.Profile.Summary),
		zap.Bool("fallback", result.IsFallback()),
		zap.Int("input_length", utf8.RuneCountInString(rawInput)),
	)

	return result, nil
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
