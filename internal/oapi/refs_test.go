package oapi

import (
	"encoding/json"
	"testing"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestParseIssueID(t *testing.T) {
	for _, in := range []string{"123", "#123", "issue-123", " 123 "} {
		n, err := ParseIssueID(in)
		require.NoError(t, err, in)
		require.Equal(t, 123, n, in)
	}

	for _, in := range []string{"", "abc", "#", "issue-", "-4", "0", "pr-1"} {
		_, err := ParseIssueID(in)
		require.ErrorIs(t, err, entities.ErrInvalidArgument, in)
	}
}

func TestIssueIDUnmarshal(t *testing.T) {
	var req UpdateIssueRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":"#42","labels":[]}`), &req))
	require.Equal(t, IssueID(42), req.Id)
	require.NotNil(t, req.Labels)
	require.Empty(t, *req.Labels)
	require.Nil(t, req.Assignees)

	require.NoError(t, json.Unmarshal([]byte(`{"id":7}`), &req))
	require.Equal(t, IssueID(7), req.Id)

	err := json.Unmarshal([]byte(`{"id":"seven"}`), &req)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestLabelInputUnmarshal(t *testing.T) {
	var labels []LabelRef
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"bug","color":"d73a4a"},"docs"]`), &labels))
	require.Equal(t, []LabelRef{{Name: "bug", Color: "d73a4a"}, {Name: "docs"}}, labels)

	err := json.Unmarshal([]byte(`[42]`), &labels)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestAssigneeInputUnmarshal(t *testing.T) {
	var assignees []AssigneeRef
	require.NoError(t, json.Unmarshal([]byte(`[
		{"login":"alice","avatarUrl":"https://a"},
		{"login":"bob","avatar_url":"https://b"},
		"carol"
	]`), &assignees))
	require.Equal(t, []AssigneeRef{
		{Login: "alice", AvatarURL: "https://a"},
		{Login: "bob", AvatarURL: "https://b"},
		{Login: "carol"},
	}, assignees)

	err := json.Unmarshal([]byte(`[true]`), &assignees)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
