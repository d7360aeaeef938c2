// Package entities contains core business entities.
package entities

import "time"

// FieldValueKind tells which member of a project field value is set.
type FieldValueKind string

const (
	FieldValueDate         FieldValueKind = "date"
	FieldValueText         FieldValueKind = "text"
	FieldValueSingleSelect FieldValueKind = "single_select"
	FieldValueNumber       FieldValueKind = "number"
)

// FieldValue is a custom project field value attached to an item.
type FieldValue struct {
	FieldName string
	Kind      FieldValueKind
	Date      string
	Text      string
	Option    string
	Number    float64
}

// Milestone groups issues and may carry a due date.
type Milestone struct {
	Title string
	DueOn *time.Time
}

// TrackerItem is an issue as fetched from the project board.
type TrackerItem struct {
	ProjectItemID string
	NodeID        string
	Number        int
	Title         string
	Body          string
	State         IssueState
	URL           string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Labels        []Label
	Assignees     []Assignee
	Milestone     *Milestone
	FieldValues   []FieldValue
}

// Issue is the result of an issue write.
type Issue struct {
	ID        string     `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Status    IssueState `json:"status"`
	Body      string     `json:"body,omitempty"`
	UpdatedAt time.Time  `json:"-"`
	Warnings  []string   `json:"warnings,omitempty"`
}

// IssueDraft holds the fields of a new issue.
type IssueDraft struct {
	Title     string
	Labels    []string
	Assignees []string
	StartDate *time.Time
	EndDate   *time.Time
}

// IssueUpdate holds a partial update. Nil members are left untouched.
type IssueUpdate struct {
	Number            int
	Title             *string
	Labels            []string
	Assignees         []string
	State             *IssueState
	StartDate         *time.Time
	EndDate           *time.Time
	ExpectedUpdatedAt *time.Time
}

// IssueEdit is the upstream edit request built by the orchestrator.
type IssueEdit struct {
	Title     *string
	Body      *string
	Labels    []string
	Assignees []string
	State     *IssueState
}

// RepoLabel is a repository label as listed for the label picker.
type RepoLabel struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}
