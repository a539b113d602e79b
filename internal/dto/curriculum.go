package dto

import "mentorai/internal/models"

type GenerateCurriculumRequest struct {
	Goal string `json:"goal" validate:"required,min=10,max=500"`
}

type CurriculumResponse struct {
	Goal           string          `json:"goal"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Modules        []models.Module `json:"modules"`
	SkippedModules []string        `json:"skipped_modules,omitempty"`
}

func NewCurriculumResponse(c *models.Curriculum) *CurriculumResponse {
	return &CurriculumResponse{
		Goal:           c.Goal,
		Title:          c.Title,
		Description:    c.Description,
		Modules:        c.Modules,
		SkippedModules: c.SkippedModules,
	}
}
