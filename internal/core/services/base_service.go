package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BaseService provides common functionality for all services
type BaseService struct{}

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
	logger.ErrorContext(ctx, msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

type selfValidator interface {
	Validate() error
}

// ValidateInput runs the struct tag rules and then the input's own Validate
// method, if any. Failures match apperrors.ErrValidation.
func (s *BaseService) ValidateInput(ctx context.Context, input any) error {
	if err := validate.Struct(input); err != nil {
		s.LogDebug(ctx, "Input failed validation", slog.String("error", err.Error()))
		return apperrors.NewValidationError("invalid input", err)
	}
	if v, ok := input.(selfValidator); ok {
		if err := v.Validate(); err != nil {
			s.LogDebug(ctx, "Input failed validation", slog.String("error", err.Error()))
			return apperrors.NewValidationError("invalid input", err)
		}
	}
	return nil
}

// NewID returns a time-ordered unique id prefixed with kind, e.g. "asset_0190...".
func (s *BaseService) NewID(kind string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s id: %w", kind, err)
	}
	return kind + "_" + id.String(), nil
}
