package service

import (
	"context"
	"fmt"
	"strings"

	"mentorai/internal/apperr"
	"mentorai/internal/llmparse"
	"mentorai/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// stage2Concurrency bounds the number of module-detail requests in
// flight. The calls are independent; each one fills a disjoint slot.
const stage2Concurrency = 4

type CurriculumService struct {
	llm    TextGenerator
	logger *zap.Logger
}

func NewCurriculumService(llm TextGenerator, logger *zap.Logger) *CurriculumService {
	return &CurriculumService{
		llm:    llm,
		logger: logger,
	}
}

// Generate turns a free-text learning goal into a structured curriculum
// via two chained generation calls: one for the ordered module title list,
// then one per title for module detail. A module whose detail response
// fails to parse or validate is dropped and recorded in SkippedModules;
// one bad model response degrades completeness, never aborts the run.
func (s *CurriculumService) Generate(ctx context.Context, goal string) (*models.Curriculum, error) {
	titles, err := s.generateOutline(ctx, goal)
	if err != nil {
		return nil, err
	}

	curriculum := &models.Curriculum{
		Goal:  goal,
		Title: fmt.Sprintf("Learning Curriculum: %s", goal),
	}

	if len(titles) == 0 {
		// Zero-title outline is a degraded result, not an error: return an
		// empty curriculum that says why.
		curriculum.Description = fmt.Sprintf(
			"No modules could be generated for the goal: %q. Try a more specific goal.", goal)
		curriculum.Modules = []models.Module{}
		return curriculum, nil
	}

	// Stage 2 fans out; results land by index so the curriculum keeps the
	// stage-1 order regardless of completion order.
	results := make([]*models.Module, len(titles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(stage2Concurrency)
	for i, title := range titles {
		g.Go(func() error {
			module, err := s.generateModule(gctx, goal, title)
			if err != nil {
				s.logger.Warn("Skipping module after detail generation failure",
					zap.String("module_title", title),
					zap.Error(err),
				)
				return nil
			}
			results[i] = module
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors; failures are skips

	modules := make([]models.Module, 0, len(titles))
	var skipped []string
	for i, module := range results {
		if module == nil {
			skipped = append(skipped, titles[i])
			continue
		}
		modules = append(modules, *module)
	}

	curriculum.Modules = modules
	curriculum.SkippedModules = skipped
	curriculum.Description = fmt.Sprintf(
		"This curriculum is designed to help you reach the goal: %q. "+
			"It covers the modules below in order, each with its own topics and objectives.", goal)
	if len(modules) == 0 {
		curriculum.Description += " Unfortunately, detail generation failed for every module."
	}

	s.logger.Info("Curriculum generated",
		zap.String("goal", goal),
		zap.Int("modules", len(modules)),
		zap.Int("skipped", len(skipped)),
	)

	return curriculum, nil
}

// generateOutline asks for the ordered module title list. A transport
// failure is fatal; a malformed or empty title list degrades to nil.
func (s *CurriculumService) generateOutline(ctx context.Context, goal string) ([]string, error) {
	prompt := fmt.Sprintf(`You are an expert curriculum designer.
Based on the following learning goal: %q,
break the goal down into a logical, ordered list of high-level learning module titles.
Each module title must be concise and clear.
Return ONLY a JSON array of strings with the module titles.

Example, if the goal were "Learn basic Italian cooking":
["Introduction to Italian Cooking and Basic Equipment", "Perfect Pasta Techniques", "Classic Tomato Sauces and Variations", "Italian Starters and Salads", "Popular Italian Desserts"]

Learning goal: %q
Module title list (JSON):`, goal, goal)

	raw, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: module outline: %v", apperr.ErrGeneration, err)
	}

	titles, err := llmparse.StringList(raw)
	if err != nil {
		s.logger.Warn("Outline response was not a title list, proceeding with empty curriculum",
			zap.String("goal", goal),
			zap.Error(err),
		)
		return nil, nil
	}

	// Drop blank entries but keep the order of the rest.
	cleaned := titles[:0]
	for _, t := range titles {
		if strings.TrimSpace(t) != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned, nil
}

// generateModule asks for the detail of a single module and validates it
// against the module schema.
func (s *CurriculumService) generateModule(ctx context.Context, goal, title string) (*models.Module, error) {
	prompt := fmt.Sprintf(`You are an expert curriculum designer.
For a learning module titled %q, part of a curriculum for the overall goal %q, produce the following detail as strict JSON:
- "title": (string) The module title (reuse the given title: %q).
- "description": (string) A short, engaging description of this module (2-3 sentences).
- "learning_objectives": (list of strings) 3-5 main learning objectives a student will reach after completing this module.
- "topics": (list of objects) The main topics covered. Each topic object must have:
    - "title": (string) A specific topic title.
    - "description": (string, optional) A 1-2 sentence description of the topic.
- "keywords": (list of strings) 3-5 keywords relevant to the module content.

The output must be a single valid JSON object matching the requested structure. Do not include any text or explanation outside the JSON object.

Current module title: %q
Overall curriculum goal: %q

JSON output for module %q:`, title, goal, title, title, goal, title)

	raw, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("module detail request: %w", err)
	}

	var module models.Module
	if err := llmparse.Decode(raw, &module); err != nil {
		return nil, err
	}
	if module.Title == "" {
		module.Title = title
	}
	if !module.Validate() {
		return nil, fmt.Errorf("module %q failed schema validation", title)
	}

	return &module, nil
}
