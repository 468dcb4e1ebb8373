package service_test

import (
	"context"
	"fmt"
	"testing"

	"wellness/internal/modules/comment/domain"
	"wellness/internal/modules/comment/service"
	apperrors "wellness/internal/platform/errors"
	"wellness/internal/platform/logging"
	"wellness/internal/platform/notice"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f fakeGenerator) SleepComment(context.Context, domain.SleepRequest) (string, error) {
	return f.text, f.err
}

func (f fakeGenerator) ExerciseComment(context.Context, domain.ExerciseRequest) (string, error) {
	return f.text, f.err
}

func TestCommentServicePassesThroughGeneratedText(t *testing.T) {
	t.Parallel()
	rec := &notice.Recorder{}
	svc := service.NewCommentService(fakeGenerator{text: "Well rested."}, rec, logging.Discard())
	got := svc.Sleep(context.Background(), domain.SleepRequest{SleepHours: 8})
	if got.Fallback || got.Text != "Well rested." {
		t.Fatalf("unexpected comment %+v", got)
	}
	if len(rec.Notices()) != 0 {
		t.Fatalf("no notice expected on success, got %v", rec.Notices())
	}
}

func TestCommentServiceFallsBackWithNotice(t *testing.T) {
	t.Parallel()
	rec := &notice.Recorder{}
	gen := fakeGenerator{err: fmt.Errorf("%w: connection refused", apperrors.ErrServiceUnavailable)}
	svc := service.NewCommentService(gen, rec, nil)
	got := svc.Exercise(context.Background(), domain.ExerciseRequest{ActivityType: "Yoga"})
	if !got.Fallback || got.Text != domain.FallbackText {
		t.Fatalf("expected fallback, got %+v", got)
	}
	if len(rec.Notices()) != 1 {
		t.Fatalf("expected one notice, got %v", rec.Notices())
	}
}

func TestCommentServiceWithoutGeneratorFallsBack(t *testing.T) {
	t.Parallel()
	svc := service.NewCommentService(nil, nil, nil)
	if got := svc.Sleep(context.Background(), domain.SleepRequest{}); got.Text != "Unable to generate a comment at this time." {
		t.Fatalf("unexpected fallback %q", got.Text)
	}
}
