package oapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"
)

// IssueID accepts an issue reference as a JSON number or as a string in the
// forms "123", "#123" and "issue-123".
type IssueID int

// UnmarshalJSON implements json.Unmarshaler.
func (id *IssueID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := ParseIssueID(s)
		if err != nil {
			return err
		}
		*id = IssueID(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: issue id must be a number", entities.ErrInvalidArgument)
	}
	*id = IssueID(n)
	return nil
}

// ParseIssueID extracts the issue number from "123", "#123" or "issue-123".
func ParseIssueID(s string) (int, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "#")
	raw = strings.TrimPrefix(raw, "issue-")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: invalid issue id %q", entities.ErrInvalidArgument, s)
	}
	return n, nil
}

// LabelInput is a label sent by a client, either as {"name","color"} or as a
// bare name.
type LabelInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LabelInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		*l = LabelInput{}
		return json.Unmarshal(data, &l.Name)
	}
	var obj struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: label must be a name or an object with a name", entities.ErrInvalidArgument)
	}
	*l = LabelInput{Name: obj.Name, Color: obj.Color}
	return nil
}

// AssigneeInput is an assignee sent by a client, either as a user object or as
// a bare login. Both avatarUrl and the REST spelling avatar_url are accepted.
type AssigneeInput struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AssigneeInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		*a = AssigneeInput{}
		return json.Unmarshal(data, &a.Login)
	}
	var obj struct {
		Login        string `json:"login"`
		AvatarURL    string `json:"avatarUrl"`
		AvatarURLAlt string `json:"avatar_url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: assignee must be a login or an object with a login", entities.ErrInvalidArgument)
	}
	avatar := obj.AvatarURL
	if avatar == "" {
		avatar = obj.AvatarURLAlt
	}
	*a = AssigneeInput{Login: obj.Login, AvatarURL: avatar}
	return nil
}
