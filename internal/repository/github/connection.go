// Package github implements the tracker repository against the GitHub REST
// and GraphQL APIs.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/blackgirlbytes/github-calendar-next/config"
	"github.com/blackgirlbytes/github-calendar-next/internal/entities"

	gh "github.com/google/go-github/v66/github"
	"github.com/shurcooL/githubv4"
	"go.uber.org/zap"
)

// GitHub wraps the REST and GraphQL clients and board configuration.
type GitHub struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.GitHubConfig
	http    *http.Client
	rest    *gh.Client
	gql     *githubv4.Client
}

// New creates a GitHub repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *GitHub {
	return &GitHub{
		baseCtx: ctx,
		log:     log.Named("repo.github"),
		cfg:     cfg.GitHub,
	}
}

// OnStart builds the API clients and checks the token.
func (g *GitHub) OnStart(_ context.Context) error {
	httpClient := &http.Client{Timeout: g.cfg.ClientTimeout}

	rest := gh.NewClient(httpClient).WithAuthToken(g.cfg.Token)
	if g.cfg.APIURL != "" {
		base, err := url.Parse(withTrailingSlash(g.cfg.APIURL))
		if err != nil {
			return fmt.Errorf("parse api url: %w", err)
		}
		rest.BaseURL = base
	}

	g.http = httpClient
	g.rest = rest
	g.gql = newGraphQLClient(httpClient, g.cfg.GraphQLURL, g.cfg.Token)

	login, err := g.viewer(g.baseCtx)
	if err != nil {
		g.log.Warnw("github token check failed", "error", err)
	} else {
		g.log.Infow("github ready", "viewer", login, "repo", g.cfg.Owner+"/"+g.cfg.Repo,
			"org", g.cfg.Org, "project", g.cfg.ProjectNumber)
	}
	return nil
}

// OnStop releases idle connections.
func (g *GitHub) OnStop(_ context.Context) error {
	if g.http != nil {
		g.http.CloseIdleConnections()
	}
	return nil
}

func (g *GitHub) viewer(ctx context.Context) (string, error) {
	var q struct {
		Viewer struct {
			Login string
		}
	}
	if err := g.gql.Query(ctx, &q, nil); err != nil {
		return "", graphQLError("viewer", err, entities.ErrNotFound)
	}
	return q.Viewer.Login, nil
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
