package project

import (
	"fmt"
	"os"

	"github.com/piwi3910/guillocut/internal/model"
)

// SaveProject writes a project, including its last plan, to path.
func SaveProject(path string, p model.Project) error {
	if err := writeJSON(path, p); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// LoadProject reads a project from path. Settings absent from the file
// keep their defaults.
func LoadProject(path string) (model.Project, error) {
	p := model.NewProject()
	found, err := readJSON(path, &p)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to load project: %w", err)
	}
	if !found {
		return model.Project{}, fmt.Errorf("failed to load project: %w", os.ErrNotExist)
	}
	if p.Pieces == nil {
		p.Pieces = model.Catalog{}
	}
	return p, nil
}
