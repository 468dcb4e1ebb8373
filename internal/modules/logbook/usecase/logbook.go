package usecase

import (
	"context"

	commentdto "wellness/internal/modules/comment/dto"
	commentin "wellness/internal/modules/comment/port/in"
	"wellness/internal/modules/logbook/domain"
	"wellness/internal/modules/logbook/dto"
	logbookin "wellness/internal/modules/logbook/port/in"
	logbookout "wellness/internal/modules/logbook/port/out"
	"wellness/internal/modules/logbook/service"
)

type Interactor struct {
	svc      *service.LogbookService
	source   logbookout.ImportSource
	comments commentin.Usecase
}

func NewInteractor(svc *service.LogbookService, source logbookout.ImportSource, comments commentin.Usecase) logbookin.Usecase {
	return &Interactor{svc: svc, source: source, comments: comments}
}

func (i *Interactor) LogMood(ctx context.Context, input dto.LogMoodInput) (dto.EntryOutput, error) {
	doc, err := i.svc.WriteMood(ctx, input.UserID, domain.MoodForm{Date: input.Date, Score: input.Score, Label: input.Label})
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toEntry(doc), nil
}

func (i *Interactor) LogSleep(ctx context.Context, input dto.LogSleepInput) (dto.EntryOutput, error) {
	doc, err := i.svc.WriteSleep(ctx, input.UserID, domain.SleepForm{DurationMinutes: input.DurationMinutes, Quality: input.Quality})
	if err != nil {
		return dto.EntryOutput{}, err
	}
	out := toEntry(doc)
	if i.comments != nil {
		comment, err := i.comments.SleepComment(ctx, commentdto.SleepCommentInput{
			Date:       doc.CreatedAt,
			SleepHours: float64(input.DurationMinutes) / 60,
		})
		if err == nil {
			out.Comment, out.CommentFallback = comment.Text, comment.Fallback
		}
	}
	return out, nil
}

func (i *Interactor) LogExercise(ctx context.Context, input dto.LogExerciseInput) (dto.EntryOutput, error) {
	doc, err := i.svc.WriteExercise(ctx, input.UserID, domain.ExerciseForm{
		ActivityType:    input.ActivityType,
		DurationMinutes: input.DurationMinutes,
		Note:            input.Note,
	})
	if err != nil {
		return dto.EntryOutput{}, err
	}
	out := toEntry(doc)
	if i.comments != nil {
		comment, err := i.comments.ExerciseComment(ctx, commentdto.ExerciseCommentInput{
			Timestamp:       doc.CreatedAt,
			ActivityType:    doc.Fields[domain.FieldActivityType].(string),
			DurationMinutes: input.DurationMinutes,
			Note:            doc.Fields[domain.FieldQuickNote].(string),
		})
		if err == nil {
			out.Comment, out.CommentFallback = comment.Text, comment.Fallback
		}
	}
	return out, nil
}

func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error) {
	batch, err := i.source.Read(ctx, input.Path)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	counts, err := i.svc.Import(ctx, input.UserID, batch)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{
		Mood:     counts[domain.CategoryMood],
		Sleep:    counts[domain.CategorySleep],
		Exercise: counts[domain.CategoryExercise],
	}, nil
}

func (i *Interactor) Recent(ctx context.Context, input dto.RecentInput) ([]dto.DocumentOutput, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}
	docs, err := i.svc.Recent(ctx, input.UserID, category, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentOutput, 0, len(docs))
	for _, doc := range docs {
		out = append(out, dto.DocumentOutput{
			ID:        doc.ID,
			Category:  string(doc.Category),
			Fields:    doc.Fields,
			CreatedAt: doc.CreatedAt,
		})
	}
	return out, nil
}

func (i *Interactor) FormOptions() dto.FormOptionsOutput {
	return dto.FormOptionsOutput{
		Activities:     append([]string(nil), domain.SuggestedActivities...),
		SleepQualities: append([]string(nil), domain.SleepQualities...),
	}
}

func toEntry(doc domain.Document) dto.EntryOutput {
	return dto.EntryOutput{ID: doc.ID, Category: string(doc.Category), Fields: doc.Fields}
}
