package service

import (
	"context"
	"errors"

	"github.com/hashicorp/go-hclog"

	"wellness/internal/modules/comment/domain"
	commentout "wellness/internal/modules/comment/port/out"
	apperrors "wellness/internal/platform/errors"
	"wellness/internal/platform/logging"
	"wellness/internal/platform/notice"
)

const noticeTitle = "Comment unavailable"

type CommentService struct {
	generator commentout.Generator
	notifier  notice.Notifier
	logger    hclog.Logger
}

func NewCommentService(generator commentout.Generator, notifier notice.Notifier, logger hclog.Logger) *CommentService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CommentService{generator: generator, notifier: notifier, logger: logger}
}

func (s *CommentService) Sleep(ctx context.Context, req domain.SleepRequest) domain.Comment {
	if s.generator == nil {
		return s.fallback("sleep", apperrors.ErrServiceUnavailable)
	}
	text, err := s.generator.SleepComment(ctx, req)
	if err != nil {
		return s.fallback("sleep", err)
	}
	return domain.Comment{Text: text}
}

func (s *CommentService) Exercise(ctx context.Context, req domain.ExerciseRequest) domain.Comment {
	if s.generator == nil {
		return s.fallback("exercise", apperrors.ErrServiceUnavailable)
	}
	text, err := s.generator.ExerciseComment(ctx, req)
	if err != nil {
		return s.fallback("exercise", err)
	}
	return domain.Comment{Text: text}
}

func (s *CommentService) fallback(kind string, err error) domain.Comment {
	if errors.Is(err, apperrors.ErrServiceUnavailable) {
		s.logger.Warn("comment service unavailable", "kind", kind, "error", err)
	} else {
		s.logger.Error("comment generation failed", "kind", kind, "error", err)
	}
	if s.notifier != nil {
		if nerr := s.notifier.Notify(noticeTitle, "The "+kind+" comment could not be generated. Your entry was saved."); nerr != nil {
			s.logger.Debug("notice delivery failed", "error", nerr)
		}
	}
	return domain.Comment{Text: domain.FallbackText, Fallback: true}
}
