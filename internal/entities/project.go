// Package entities contains core business entities.
package entities

import "time"

// ProjectFieldOption is an option of a single-select project field.
type ProjectFieldOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ProjectField is a field definition of a project board.
type ProjectField struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	DataType string               `json:"-"`
	Options  []ProjectFieldOption `json:"options"`
}

// ProjectItemRef links an issue to a project board.
type ProjectItemRef struct {
	ItemID        string
	ProjectID     string
	ProjectNumber int
	ProjectTitle  string
}

// DateFieldsUpdate asks to set the project start/due dates of an issue.
type DateFieldsUpdate struct {
	IssueNumber int
	StartDate   *time.Time
	EndDate     *time.Time
}

// FieldUpdateResult reports a single field written.
type FieldUpdateResult struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// DateFieldsResult is the outcome of a project date sync.
type DateFieldsResult struct {
	Updates       []FieldUpdateResult `json:"updates"`
	ProjectItemID string              `json:"projectItemId"`
}
