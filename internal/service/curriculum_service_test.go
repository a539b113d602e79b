package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mentorai/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubLLM routes generation calls by prompt content; stage-1 and stage-2
// prompts are distinguishable by their trailing instruction.
type stubLLM struct {
	generate func(ctx context.Context, prompt string) (string, error)
}

func (s *stubLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt)
}

const validModuleDetail = `{
	"description": "A short module description.",
	"learning_objectives": ["understand the basics", "apply the basics"],
	"topics": [{"title": "First Topic", "description": "What it covers."}],
	"keywords": ["basics", "introduction"]
}`

func isOutlinePrompt(prompt string) bool {
	return strings.Contains(prompt, "Module title list (JSON):")
}

func TestGenerateBuildsModulesInOutlineOrder(t *testing.T) {
	llm := &stubLLM{
		generate: func(_ context.Context, prompt string) (string, error) {
			if isOutlinePrompt(prompt) {
				return "```json\n[\"Intro to Cooking\", \"Knife Techniques\"]\n```", nil
			}
			return validModuleDetail, nil
		},
	}
	svc := NewCurriculumService(llm, zap.NewNop())

	curriculum, err := svc.Generate(context.Background(), "Learn basic cooking")
	require.NoError(t, err)

	require.Len(t, curriculum.Modules, 2)
	assert.Equal(t, "Intro to Cooking", curriculum.Modules[0].Title)
	assert.Equal(t, "Knife Techniques", curriculum.Modules[1].Title)
	assert.Empty(t, curriculum.SkippedModules)
	assert.Equal(t, "Learn basic cooking", curriculum.Goal)
	assert.Contains(t, curriculum.Title, "Learn basic cooking")
}

func TestGenerateSkipsModuleWithMalformedDetail(t *testing.T) {
	llm := &stubLLM{
		generate: func(_ context.Context, prompt string) (string, error) {
			if isOutlinePrompt(prompt) {
				return `["Module One", "Module Two", "Module Three"]`, nil
			}
			if strings.Contains(prompt, "Module Two") {
				return "Sorry, I cannot produce JSON for that.", nil
			}
			return validModuleDetail, nil
		},
	}
	svc := NewCurriculumService(llm, zap.NewNop())

	curriculum, err := svc.Generate(context.Background(), "Learn something")
	require.NoError(t, err)

	require.Len(t, curriculum.Modules, 2)
	assert.Equal(t, "Module One", curriculum.Modules[0].Title)
	assert.Equal(t, "Module Three", curriculum.Modules[1].Title)
	assert.Equal(t, []string{"Module Two"}, curriculum.SkippedModules)
}

func TestGenerateEmptyOutlineYieldsEmptyCurriculum(t *testing.T) {
	llm := &stubLLM{
		generate: func(_ context.Context, prompt string) (string, error) {
			require.True(t, isOutlinePrompt(prompt), "stage 2 must not run without titles")
			return "I am not able to help with that request.", nil
		},
	}
	svc := NewCurriculumService(llm, zap.NewNop())

	curriculum, err := svc.Generate(context.Background(), "impossible goal")
	require.NoError(t, err)

	assert.NotNil(t, curriculum.Modules)
	assert.Empty(t, curriculum.Modules)
	assert.Contains(t, curriculum.Description, "impossible goal")
}

func TestGenerateOutlineTransportErrorIsFatal(t *testing.T) {
	llm := &stubLLM{
		generate: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("backend unreachable")
		},
	}
	svc := NewCurriculumService(llm, zap.NewNop())

	curriculum, err := svc.Generate(context.Background(), "Learn Go")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrGeneration))
	assert.Nil(t, curriculum)
}

func TestGenerateFiltersBlankOutlineTitles(t *testing.T) {
	llm := &stubLLM{
		generate: func(_ context.Context, prompt string) (string, error) {
			if isOutlinePrompt(prompt) {
				return `["Real Module", "", "   "]`, nil
			}
			return validModuleDetail, nil
		},
	}
	svc := NewCurriculumService(llm, zap.NewNop())

	curriculum, err := svc.Generate(context.Background(), "Learn Go")
	require.NoError(t, err)
	require.Len(t, curriculum.Modules, 1)
	assert.Equal(t, "Real Module", curriculum.Modules[0].Title)
}
