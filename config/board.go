package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Board pins a project board and its date fields so they need not be
// looked up on every write.
type Board struct {
	Org           string      `yaml:"org"`
	ProjectNumber int         `yaml:"projectNumber"`
	ProjectID     string      `yaml:"projectId"`
	RequiredLabel string      `yaml:"requiredLabel,omitempty"`
	Fields        BoardFields `yaml:"fields"`
}

// BoardFields holds project field node ids.
type BoardFields struct {
	Start string `yaml:"start"`
	Due   string `yaml:"due"`
}

// LoadBoard reads a board description from a YAML file.
func LoadBoard(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board file: %w", err)
	}

	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse board file: %w", err)
	}
	return &b, nil
}
