package out

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wellness/internal/modules/logbook/domain"
	logbookout "wellness/internal/modules/logbook/port/out"
	apperrors "wellness/internal/platform/errors"
)

type legacyExport struct {
	Mood     []map[string]any `yaml:"mood"`
	Sleep    []map[string]any `yaml:"sleep"`
	Exercise []map[string]any `yaml:"exercise"`
}

// YAMLDocumentSource reads a legacy export with mood, sleep and exercise lists.
// Documents are passed through untouched so partially-written records survive.
type YAMLDocumentSource struct{}

func NewYAMLDocumentSource() logbookout.ImportSource {
	return YAMLDocumentSource{}
}

func (YAMLDocumentSource) Read(_ context.Context, path string) (map[domain.Category][]map[string]any, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: import file %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read import file: %w", err)
	}
	export := legacyExport{}
	if err := yaml.Unmarshal(payload, &export); err != nil {
		return nil, fmt.Errorf("decode import file: %w", err)
	}
	return map[domain.Category][]map[string]any{
		domain.CategoryMood:     export.Mood,
		domain.CategorySleep:    export.Sleep,
		domain.CategoryExercise: export.Exercise,
	}, nil
}
