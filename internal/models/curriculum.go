package models

// Topic is a single learning topic inside a module.
type Topic struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Module is one unit of a generated curriculum. Instances are produced by
// the stage-2 generation call and validated before use.
type Module struct {
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	LearningObjectives []string `json:"learning_objectives"`
	Topics             []Topic  `json:"topics"`
	Keywords           []string `json:"keywords"`
}

// Curriculum is the structured result of the prompt chain. Modules keep
// the order of the stage-1 title list; titles whose detail generation
// failed are absent from Modules and listed in SkippedModules.
type Curriculum struct {
	Goal           string   `json:"goal"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Modules        []Module `json:"modules"`
	SkippedModules []string `json:"skipped_modules,omitempty"`
}

// Validate checks the fields the module schema requires. Generation drops
// modules that fail this instead of aborting the run.
func (m *Module) Validate() bool {
	if m.Title == "" {
		return false
	}
	for _, t := range m.Topics {
		if t.Title == "" {
			return false
		}
	}
	return true
}
