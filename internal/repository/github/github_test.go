package github

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/blackgirlbytes/github-calendar-next/config"
	"github.com/blackgirlbytes/github-calendar-next/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type graphQLHandler func(t *testing.T, query string, vars map[string]any) (int, string)

type graphQLBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newTestGitHub(t *testing.T, gql graphQLHandler, rest http.Handler) *GitHub {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req graphQLBody
		require.NoError(t, json.Unmarshal(raw, &req))

		if strings.Contains(req.Query, "viewer") {
			_, _ = io.WriteString(w, `{"data":{"viewer":{"login":"octocat"}}}`)
			return
		}
		status, body := gql(t, req.Query, req.Variables)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
	if rest != nil {
		mux.Handle("/", rest)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{GitHub: config.GitHubConfig{
		Token:         "test-token",
		APIURL:        srv.URL,
		GraphQLURL:    srv.URL + "/graphql",
		ClientTimeout: 5 * time.Second,
		Org:           "squareup",
		ProjectNumber: 333,
		Owner:         "squareup",
		Repo:          "developer-programs",
	}}
	g := New(context.Background(), zap.NewNop().Sugar(), cfg)
	require.NoError(t, g.OnStart(context.Background()))
	t.Cleanup(func() { _ = g.OnStop(context.Background()) })
	return g
}

func noGraphQL(t *testing.T, query string, _ map[string]any) (int, string) {
	t.Fatalf("unexpected graphql query: %s", query)
	return 0, ""
}

func TestListProjectItems(t *testing.T) {
	page := 0
	g := newTestGitHub(t, func(t *testing.T, query string, vars map[string]any) (int, string) {
		require.Contains(t, query, "projectV2(number: $projectNumber)")
		require.Equal(t, "squareup", vars["org"])
		require.EqualValues(t, 333, vars["projectNumber"])
		page++
		if page == 1 {
			require.Nil(t, vars["cursor"])
			return http.StatusOK, `{"data":{"organization":{"projectV2":{"id":"PVT_1","title":"DevRel","items":{
				"pageInfo":{"hasNextPage":true,"endCursor":"c1"},
				"nodes":[
					{"id":"PVTI_1","type":"ISSUE","content":{"id":"I_1","number":12,"title":"Launch post","body":"",
						"state":"OPEN","createdAt":"2025-08-02T10:00:00Z","updatedAt":"2025-08-03T10:00:00Z",
						"url":"https://github.com/squareup/developer-programs/issues/12",
						"labels":{"nodes":[{"name":"blog","color":"ff0000"}]},
						"assignees":{"nodes":[{"login":"alice","avatarUrl":"https://a"}]},
						"milestone":{"title":"Q3","dueOn":"2025-09-30T00:00:00Z"}},
					 "fieldValues":{"nodes":[
						{"__typename":"ProjectV2ItemFieldDateValue","field":{"name":"Start Date"},"date":"2025-08-05"},
						{"__typename":"ProjectV2ItemFieldSingleSelectValue","field":{"name":"Status"},"name":"In Progress"},
						{"__typename":"ProjectV2ItemFieldRepositoryValue"}
					 ]}},
					{"id":"PVTI_2","type":"DRAFT_ISSUE","content":{},"fieldValues":{"nodes":[]}}
				]}}}}}`
		}
		require.Equal(t, "c1", vars["cursor"])
		return http.StatusOK, `{"data":{"organization":{"projectV2":{"id":"PVT_1","title":"DevRel","items":{
			"pageInfo":{"hasNextPage":false,"endCursor":""},
			"nodes":[{"id":"PVTI_3","type":"ISSUE","content":{"id":"I_3","number":13,"title":"Talk","body":"",
				"state":"CLOSED","createdAt":"2025-08-04T10:00:00Z","updatedAt":"2025-08-04T10:00:00Z","url":"u",
				"labels":{"nodes":[]},"assignees":{"nodes":[]},"milestone":null},"fieldValues":{"nodes":[]}}]}}}}}`
	}, nil)

	items, err := g.ListProjectItems(context.Background(), "squareup", 333)
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	require.Equal(t, 12, first.Number)
	require.Equal(t, "PVTI_1", first.ProjectItemID)
	require.Equal(t, entities.StateOpen, first.State)
	require.Equal(t, []entities.Label{{Name: "blog", Color: "ff0000"}}, first.Labels)
	require.Equal(t, "alice", first.Assignees[0].Login)
	require.NotNil(t, first.Milestone)
	require.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), first.Milestone.DueOn.UTC())
	require.Equal(t, []entities.FieldValue{
		{FieldName: "Start Date", Kind: entities.FieldValueDate, Date: "2025-08-05"},
		{FieldName: "Status", Kind: entities.FieldValueSingleSelect, Option: "In Progress"},
	}, first.FieldValues)

	require.Equal(t, entities.StateClosed, items[1].State)
	require.Nil(t, items[1].Milestone)
}

func TestListProjectItemsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Bad credentials"}`, entities.ErrUnauthorized},
		{"missing project", http.StatusOK,
			`{"data":{"organization":{"projectV2":null}},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a ProjectV2"}]}`,
			entities.ErrProjectNotFound},
		{"null project", http.StatusOK, `{"data":{"organization":{"projectV2":null}}}`, entities.ErrProjectNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGitHub(t, func(*testing.T, string, map[string]any) (int, string) {
				return tt.status, tt.body
			}, nil)
			_, err := g.ListProjectItems(context.Background(), "squareup", 333)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestListProjectItemsUpstreamError(t *testing.T) {
	g := newTestGitHub(t, func(*testing.T, string, map[string]any) (int, string) {
		return http.StatusBadGateway, `{"message":"server exploded"}`
	}, nil)

	_, err := g.ListProjectItems(context.Background(), "squareup", 333)
	var upstream *entities.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, http.StatusBadGateway, upstream.Status)
	require.Equal(t, "server exploded", upstream.Message)
}

func TestSearchIssues(t *testing.T) {
	rest := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/issues", r.URL.Path)
		require.Equal(t, `org:squareup label:"area: devrel" type:issue created:>=2025-08-01`, r.URL.Query().Get("q"))
		require.Equal(t, "100", r.URL.Query().Get("per_page"))
		_, _ = io.WriteString(w, `{"total_count":2,"items":[
			{"number":7,"title":"Meetup","state":"open","html_url":"https://github.com/squareup/x/issues/7",
			 "created_at":"2025-08-10T00:00:00Z","labels":[{"name":"area: devrel","color":"00ff00"}],
			 "assignees":[{"login":"bob","avatar_url":"https://b"}],
			 "milestone":{"title":"M1","due_on":"2025-08-20T07:00:00Z"}},
			{"number":8,"title":"A PR","state":"open","pull_request":{"url":"https://api/pulls/8"}}
		]}`)
	})
	g := newTestGitHub(t, noGraphQL, rest)

	items, err := g.SearchIssues(context.Background(), "squareup", "area: devrel", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 7, items[0].Number)
	require.Equal(t, "bob", items[0].Assignees[0].Login)
	require.Equal(t, time.Date(2025, 8, 20, 7, 0, 0, 0, time.UTC), items[0].Milestone.DueOn.UTC())
}

func TestSearchQueryWithoutLabel(t *testing.T) {
	require.Equal(t, "org:squareup type:issue", searchQuery("squareup", "", time.Time{}))
}

func TestCreateAndEditIssue(t *testing.T) {
	rest := http.NewServeMux()
	rest.HandleFunc("/repos/squareup/developer-programs/issues", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Launch post", body["title"])
		require.Equal(t, []any{"alice"}, body["assignees"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"number":42,"title":"Launch post","state":"open","html_url":"https://github.com/i/42"}`)
	})
	rest.HandleFunc("/repos/squareup/developer-programs/issues/42", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "closed", body["state"])
		require.Equal(t, "new body", body["body"])
		_, ok := body["labels"]
		require.False(t, ok)
		_, _ = io.WriteString(w, `{"number":42,"title":"Launch post","state":"closed","html_url":"https://github.com/i/42",
			"body":"new body","updated_at":"2025-08-05T00:00:00Z"}`)
	})
	g := newTestGitHub(t, noGraphQL, rest)

	created, err := g.CreateIssue(context.Background(), "Launch post", "body", []string{"alice"})
	require.NoError(t, err)
	require.Equal(t, "42", created.ID)
	require.Equal(t, entities.StateOpen, created.Status)

	closed := entities.StateClosed
	body := "new body"
	edited, err := g.EditIssue(context.Background(), 42, entities.IssueEdit{Body: &body, State: &closed})
	require.NoError(t, err)
	require.Equal(t, entities.StateClosed, edited.Status)
	require.Equal(t, "new body", edited.Body)
}

func TestGetIssueErrors(t *testing.T) {
	rest := http.NewServeMux()
	rest.HandleFunc("/repos/squareup/developer-programs/issues/404", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Not Found"}`)
	})
	rest.HandleFunc("/repos/squareup/developer-programs/issues/401", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Bad credentials"}`)
	})
	rest.HandleFunc("/repos/squareup/developer-programs/issues/500", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"boom"}`)
	})
	g := newTestGitHub(t, noGraphQL, rest)

	_, err := g.GetIssue(context.Background(), 404)
	require.ErrorIs(t, err, entities.ErrIssueNotFound)

	_, err = g.GetIssue(context.Background(), 401)
	require.ErrorIs(t, err, entities.ErrUnauthorized)

	_, err = g.GetIssue(context.Background(), 500)
	var upstream *entities.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, "boom", upstream.Message)
}

func TestListLabels(t *testing.T) {
	rest := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/squareup/developer-programs/labels", r.URL.Path)
		_, _ = io.WriteString(w, `[{"name":"blog","color":"ff0000","description":"Posts"},{"name":"talk","color":"00ff00"}]`)
	})
	g := newTestGitHub(t, noGraphQL, rest)

	labels, err := g.ListLabels(context.Background())
	require.NoError(t, err)
	require.Equal(t, []entities.RepoLabel{
		{Name: "blog", Color: "ff0000", Description: "Posts"},
		{Name: "talk", Color: "00ff00"},
	}, labels)
}

func TestFindProjectItem(t *testing.T) {
	body := `{"data":{"repository":{"issue":{"id":"I_1","number":12,"projectItems":{"nodes":[
		{"id":"PVTI_other","project":{"id":"PVT_9","title":"Other","number":9}},
		{"id":"PVTI_1","project":{"id":"PVT_1","title":"DevRel","number":333}}
	]}}}}}`
	g := newTestGitHub(t, func(t *testing.T, query string, vars map[string]any) (int, string) {
		require.Contains(t, query, "projectItems")
		require.EqualValues(t, 12, vars["issueNumber"])
		return http.StatusOK, body
	}, nil)

	ref, err := g.FindProjectItem(context.Background(), 12)
	require.NoError(t, err)
	require.Equal(t, &entities.ProjectItemRef{
		ItemID: "PVTI_1", ProjectID: "PVT_1", ProjectNumber: 333, ProjectTitle: "DevRel",
	}, ref)
}

func TestFindProjectItemNotLinked(t *testing.T) {
	g := newTestGitHub(t, func(*testing.T, string, map[string]any) (int, string) {
		return http.StatusOK, `{"data":{"repository":{"issue":{"id":"I_1","number":12,"projectItems":{"nodes":[]}}}}}`
	}, nil)

	_, err := g.FindProjectItem(context.Background(), 12)
	require.ErrorIs(t, err, entities.ErrNotInProject)
	require.ErrorIs(t, err, entities.ErrNotFound)
}

func TestFindProjectItemMissingIssue(t *testing.T) {
	g := newTestGitHub(t, func(*testing.T, string, map[string]any) (int, string) {
		return http.StatusOK, `{"data":{"repository":{"issue":null}},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to an Issue"}]}`
	}, nil)

	_, err := g.FindProjectItem(context.Background(), 999)
	require.ErrorIs(t, err, entities.ErrIssueNotFound)
}

func TestProjectIDFromConfig(t *testing.T) {
	g := newTestGitHub(t, noGraphQL, nil)
	g.cfg.ProjectID = "PVT_cfg"

	id, err := g.ProjectID(context.Background())
	require.NoError(t, err)
	require.Equal(t, "PVT_cfg", id)
}

func TestProjectIDLookup(t *testing.T) {
	g := newTestGitHub(t, func(*testing.T, string, map[string]any) (int, string) {
		return http.StatusOK, `{"data":{"organization":{"projectV2":{"id":"PVT_1"}}}}`
	}, nil)

	id, err := g.ProjectID(context.Background())
	require.NoError(t, err)
	require.Equal(t, "PVT_1", id)
}

func TestListProjectFields(t *testing.T) {
	g := newTestGitHub(t, func(t *testing.T, _ string, vars map[string]any) (int, string) {
		require.Equal(t, "PVT_1", vars["projectId"])
		return http.StatusOK, `{"data":{"node":{"id":"PVT_1","fields":{"nodes":[
			{"__typename":"ProjectV2Field","id":"F_start","name":"Start Date","dataType":"DATE"},
			{"__typename":"ProjectV2SingleSelectField","id":"F_status","name":"Status","dataType":"SINGLE_SELECT",
			 "options":[{"id":"o1","name":"Todo","color":"GRAY"}]},
			{"__typename":"ProjectV2IterationField"}
		]}}}}`
	}, nil)

	fields, err := g.ListProjectFields(context.Background(), "PVT_1")
	require.NoError(t, err)
	require.Len(t, fields, 2)
	require.Equal(t, "DATE", fields[0].DataType)
	require.Equal(t, []entities.ProjectFieldOption{{ID: "o1", Name: "Todo", Color: "GRAY"}}, fields[1].Options)
}

func TestSetDateField(t *testing.T) {
	g := newTestGitHub(t, func(t *testing.T, query string, vars map[string]any) (int, string) {
		require.Contains(t, query, "updateProjectV2ItemFieldValue(input: $input)")
		require.Contains(t, query, "$input:UpdateProjectV2ItemFieldValueInput!")
		input, ok := vars["input"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "PVT_1", input["projectId"])
		require.Equal(t, "PVTI_1", input["itemId"])
		require.Equal(t, "F_start", input["fieldId"])
		value, ok := input["value"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "2025-08-05T00:00:00Z", value["date"])
		require.Len(t, value, 1)
		return http.StatusOK, `{"data":{"updateProjectV2ItemFieldValue":{"projectV2Item":{"id":"PVTI_1"}}}}`
	}, nil)

	err := g.SetDateField(context.Background(), "PVT_1", "PVTI_1", "F_start", time.Date(2025, 8, 5, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
}

func TestSetDateFieldUnknownItem(t *testing.T) {
	g := newTestGitHub(t, func(*testing.T, string, map[string]any) (int, string) {
		return http.StatusOK, `{"data":{"updateProjectV2ItemFieldValue":null},
			"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a node with the global id of 'PVTI_x'"}]}`
	}, nil)

	err := g.SetDateField(context.Background(), "PVT_1", "PVTI_x", "F_start", time.Now())
	require.ErrorIs(t, err, entities.ErrNotInProject)
}

func TestGraphQLErrorClassification(t *testing.T) {
	err := graphQLError("op", errors.New("Something went wrong while executing your query"), entities.ErrNotFound)
	var upstream *entities.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, "Something went wrong while executing your query", upstream.Message)

	err = graphQLError("op", errors.New("Could not resolve to a Repository with the name 'x/y'."), entities.ErrIssueNotFound)
	require.ErrorIs(t, err, entities.ErrIssueNotFound)

	err = graphQLError("op", &url.Error{Op: "Post", URL: "u", Err: context.DeadlineExceeded}, entities.ErrNotFound)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGraphQLRequestsCarryToken(t *testing.T) {
	var auth string
	var query string
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		var req graphQLBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		query = req.Query
		_, _ = io.WriteString(w, `{"data":{"viewer":{"login":"octocat"}}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := newGraphQLClient(&http.Client{Timeout: time.Second}, srv.URL+"/graphql", "secret")
	var q struct {
		Viewer struct {
			Login string
		}
	}
	require.NoError(t, client.Query(context.Background(), &q, nil))
	require.Equal(t, "Bearer secret", auth)
	require.Equal(t, "{viewer{login}}", query)
	require.Equal(t, "octocat", q.Viewer.Login)
}
