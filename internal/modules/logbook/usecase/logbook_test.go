package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	commentdto "wellness/internal/modules/comment/dto"
	commentin "wellness/internal/modules/comment/port/in"
	logbookout "wellness/internal/modules/logbook/adapter/out"
	"wellness/internal/modules/logbook/dto"
	logbookin "wellness/internal/modules/logbook/port/in"
	"wellness/internal/modules/logbook/service"
	"wellness/internal/modules/logbook/usecase"
	"wellness/internal/platform/clock"
	apperrors "wellness/internal/platform/errors"
)

type seqID struct {
	n int
}

func (s *seqID) New() string {
	s.n++
	return "doc-" + string(rune('a'+s.n-1))
}

type fakeComments struct {
	sleep    []commentdto.SleepCommentInput
	exercise []commentdto.ExerciseCommentInput
}

func (f *fakeComments) SleepComment(_ context.Context, input commentdto.SleepCommentInput) (commentdto.CommentOutput, error) {
	f.sleep = append(f.sleep, input)
	return commentdto.CommentOutput{Text: "Rested."}, nil
}

func (f *fakeComments) ExerciseComment(_ context.Context, input commentdto.ExerciseCommentInput) (commentdto.CommentOutput, error) {
	f.exercise = append(f.exercise, input)
	return commentdto.CommentOutput{Text: "Unable to generate a comment at this time.", Fallback: true}, nil
}

var now = time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)

func newInteractor(t *testing.T, comments commentin.Usecase) (logbookin.Usecase, string) {
	t.Helper()
	home := t.TempDir()
	store, err := logbookout.NewSQLiteDocumentStore(filepath.Join(home, "wellness.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	svc := service.NewLogbookService(clock.Fixed{At: now}, &seqID{}, store)
	return usecase.NewInteractor(svc, logbookout.NewYAMLDocumentSource(), comments), home
}

func TestLogWritesStoreFieldsAndRequestComments(t *testing.T) {
	t.Parallel()
	comments := &fakeComments{}
	uc, _ := newInteractor(t, comments)
	ctx := context.Background()

	mood, err := uc.LogMood(ctx, dto.LogMoodInput{UserID: "u-1", Score: 8, Label: "Happy"})
	if err != nil {
		t.Fatalf("log mood: %v", err)
	}
	if mood.Fields["date"] != "2026-10-15" || mood.Fields["mood_score"] != 8 {
		t.Fatalf("unexpected mood fields %v", mood.Fields)
	}

	sleep, err := uc.LogSleep(ctx, dto.LogSleepInput{UserID: "u-1", DurationMinutes: 450})
	if err != nil {
		t.Fatalf("log sleep: %v", err)
	}
	if sleep.Fields["quality"] != "Good" || sleep.Comment != "Rested." || sleep.CommentFallback {
		t.Fatalf("unexpected sleep entry %+v", sleep)
	}
	if len(comments.sleep) != 1 || comments.sleep[0].SleepHours != 7.5 || !comments.sleep[0].Date.Equal(now) {
		t.Fatalf("unexpected sleep comment request %+v", comments.sleep)
	}

	exercise, err := uc.LogExercise(ctx, dto.LogExerciseInput{UserID: "u-1", ActivityType: " Yoga ", DurationMinutes: 20, Note: "morning flow"})
	if err != nil {
		t.Fatalf("log exercise: %v", err)
	}
	if !exercise.CommentFallback || exercise.Comment != "Unable to generate a comment at this time." {
		t.Fatalf("fallback comment must be passed through: %+v", exercise)
	}
	if len(comments.exercise) != 1 || comments.exercise[0].ActivityType != "Yoga" {
		t.Fatalf("unexpected exercise comment request %+v", comments.exercise)
	}

	recent, err := uc.Recent(ctx, dto.RecentInput{UserID: "u-1", Category: "exercise"})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].Fields["activity_type"] != "Yoga" || recent[0].Fields["duration_minutes"] != float64(20) {
		t.Fatalf("unexpected recent exercise %+v", recent)
	}
}

func TestLogRejectsInvalidFormsAndMissingUser(t *testing.T) {
	t.Parallel()
	comments := &fakeComments{}
	uc, _ := newInteractor(t, comments)
	ctx := context.Background()

	if _, err := uc.LogMood(ctx, dto.LogMoodInput{UserID: "u-1", Score: 11}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := uc.LogSleep(ctx, dto.LogSleepInput{UserID: "u-1", DurationMinutes: 0}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := uc.LogExercise(ctx, dto.LogExerciseInput{UserID: "", ActivityType: "Yoga", DurationMinutes: 10, Note: "x"}); !errors.Is(err, apperrors.ErrNoActiveUser) {
		t.Fatalf("expected no active user, got %v", err)
	}
	if _, err := uc.Recent(ctx, dto.RecentInput{UserID: "u-1", Category: "journal"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid category, got %v", err)
	}
	if len(comments.sleep)+len(comments.exercise) != 0 {
		t.Fatalf("no comment may be requested for a rejected write")
	}
}

func TestImportKeepsLooselyTypedDocuments(t *testing.T) {
	t.Parallel()
	uc, home := newInteractor(t, nil)
	path := filepath.Join(home, "legacy.yaml")
	legacy := `mood:
  - date: "2026-10-14"
    mood_score: 7
    mood_label: Calm
  - date: "2026-10-13"
    mood_score: "seven"
  - {}
sleep:
  - timestamp:
      seconds: 1791961200
      nanoseconds: 0
    duration_minutes: 420
    quality: Fair
exercise:
  - activity_type: Running
    duration_minutes: "25"
`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	out, err := uc.Import(context.Background(), dto.ImportInput{UserID: "u-1", Path: path})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if out.Mood != 2 || out.Sleep != 1 || out.Exercise != 1 || out.Total() != 4 {
		t.Fatalf("unexpected import counts %+v", out)
	}

	mood, err := uc.Recent(context.Background(), dto.RecentInput{UserID: "u-1", Category: "mood", Limit: 10})
	if err != nil {
		t.Fatalf("recent mood: %v", err)
	}
	if len(mood) != 2 || mood[0].Fields["mood_label"] != "Calm" || mood[1].Fields["mood_score"] != "seven" {
		t.Fatalf("unexpected imported mood %+v", mood)
	}

	if _, err := uc.Import(context.Background(), dto.ImportInput{UserID: "u-1", Path: filepath.Join(home, "missing.yaml")}); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}

func TestImportMissingFileIsNotFound(t *testing.T) {
	t.Parallel()
	uc, home := newInteractor(t, &fakeComments{})
	_, err := uc.Import(context.Background(), dto.ImportInput{UserID: "u-1", Path: filepath.Join(home, "missing.yaml")})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFormOptionsListSuggestionsAndQualities(t *testing.T) {
	t.Parallel()
	uc, _ := newInteractor(t, &fakeComments{})
	opts := uc.FormOptions()
	if len(opts.Activities) == 0 || opts.Activities[0] != "Running" {
		t.Fatalf("unexpected activities %v", opts.Activities)
	}
	if len(opts.SleepQualities) != 4 || opts.SleepQualities[1] != "Good" {
		t.Fatalf("unexpected sleep qualities %v", opts.SleepQualities)
	}
	opts.Activities[0] = "changed"
	if uc.FormOptions().Activities[0] != "Running" {
		t.Fatalf("options must be copies")
	}
}
