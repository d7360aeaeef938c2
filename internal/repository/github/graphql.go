package github

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/blackgirlbytes/github-calendar-next/internal/entities"

	"github.com/shurcooL/githubv4"
)

// graphQLTransport authenticates GraphQL calls and maps non-200 replies to
// entities errors.
type graphQLTransport struct {
	token string
	base  http.RoundTripper
}

func (t *graphQLTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Accept", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, entities.ErrUnauthorized
	}
	return nil, &entities.UpstreamError{Status: resp.StatusCode, Message: upstreamMessage(body)}
}

func newGraphQLClient(client *http.Client, endpoint, token string) *githubv4.Client {
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	gqlHTTP := &http.Client{
		Timeout:   client.Timeout,
		Transport: &graphQLTransport{token: token, base: base},
	}
	if endpoint == "" {
		return githubv4.NewClient(gqlHTTP)
	}
	return githubv4.NewEnterpriseClient(endpoint, gqlHTTP)
}

// upstreamMessage extracts GitHub's {"message": ...} or falls back to the raw body.
func upstreamMessage(body []byte) string {
	var m struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &m); err == nil && m.Message != "" {
		return m.Message
	}
	return strings.TrimSpace(string(body))
}
