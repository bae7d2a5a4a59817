package feedback

import (
	"context"

	"go.uber.org/zap"

	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/repository"
	"github.com/semexe/backend/usecase"
)

type UseCase struct {
	feedback repository.FeedbackRepository
	buffer   usecase.FeedbackBuffer
	logger   *zap.Logger
}

func New(feedback repository.FeedbackRepository, buffer usecase.FeedbackBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		feedback: feedback,
		buffer:   buffer,
		logger:   logger,
	}
}

// Submit stores a feedback message. When the store is unreachable the message
// is queued in the local buffer and flushed later, so submissions are never
// dropped on the floor.
func (uc *UseCase) Submit(ctx context.Context, fb *domain.Feedback) error {
	if fb == nil || fb.Name == "" || fb.Email == "" || fb.Message == "" {
		return domain.NewError(domain.ErrCodeInvalid, "name, email and message are required")
	}

	if err := uc.feedback.Create(ctx, fb); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferFeedback(ctx, fb); bufErr != nil {
				uc.logger.Error("failed to buffer feedback", zap.Error(bufErr))
				return domain.WrapError(domain.ErrCodeInternal, "failed to store feedback", err)
			}
			uc.logger.Warn("feedback buffered due to store error", zap.Error(err))
			return nil
		}
		return domain.WrapError(domain.ErrCodeInternal, "failed to store feedback", err)
	}
	return nil
}
