package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/middleware"
	"github.com/SscSPs/retail_pos_app/internal/utils"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock     func() time.Time
	location  *time.Location
	analytics *utils.PosthogClientWrapper
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithLocation sets the store's time zone. Calendar dates typed by the operator are read in it.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.location = loc
	}
}

// WithAnalytics enables product analytics events.
func WithAnalytics(client *utils.PosthogClientWrapper) ServiceOption {
	return func(s *BaseService) {
		s.analytics = client
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{
		clock:    time.Now,
		location: time.Local,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now is the current time in the store's time zone.
func (s *BaseService) Now() time.Time {
	clock, loc := s.clock, s.location
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return clock().In(loc)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Track sends an analytics event when analytics is enabled.
func (s *BaseService) Track(distinctID, event string, properties map[string]any) {
	if s.analytics.IsInitialized() {
		s.analytics.Enqueue(distinctID, event, properties)
	}
}

// parsePeriod turns optional YYYY-MM-DD bounds into an inclusive period covering whole days.
func (s *BaseService) parsePeriod(from, to string) (domain.ReportPeriod, error) {
	var period domain.ReportPeriod
	loc := s.Now().Location()
	if from != "" {
		d, err := utils.ParseISODate(from, loc)
		if err != nil {
			return period, fmt.Errorf("%w: from: %v", apperrors.ErrValidation, err)
		}
		period.From = d
	}
	if to != "" {
		d, err := utils.ParseISODate(to, loc)
		if err != nil {
			return period, fmt.Errorf("%w: to: %v", apperrors.ErrValidation, err)
		}
		period.To = utils.EndOfDay(d)
	}
	if !period.From.IsZero() && !period.To.IsZero() && period.To.Before(period.From) {
		return period, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	return period, nil
}

// validationError wraps msg as an apperrors.ErrValidation.
func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}
