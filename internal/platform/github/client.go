package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	gh "github.com/google/go-github/v72/github"
	"github.com/phrazzld/readme-api/internal/config"
	"github.com/phrazzld/readme-api/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrRepoNotFound is returned when the repository does not exist or is not visible.
	ErrRepoNotFound = domain.ErrRepoNotFound

	// ErrFetchFailed is returned when the repository record could not be fetched.
	ErrFetchFailed = errors.New("failed to fetch repository")
)

// Client reads repository metadata from GitHub.
type Client struct {
	gh          *gh.Client
	logger      *slog.Logger
	commitLimit int
}

// NewClient creates a Client from configuration. When cfg.Token is set every
// request is authenticated with it; otherwise requests are anonymous and
// subject to GitHub's lower rate limit.
//
// base is the HTTP client to build on; nil means http.DefaultClient.
func NewClient(logger *slog.Logger, cfg config.GitHubConfig, base *http.Client) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if base == nil {
		base = http.DefaultClient
	}

	httpClient := base
	if cfg.Token != "" {
		httpClient = &http.Client{
			Timeout: base.Timeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
				Base:   base.Transport,
			},
		}
	}

	client := gh.NewClient(httpClient)
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github base url: %w", err)
		}
		client.BaseURL = baseURL
	}

	return &Client{
		gh:          client,
		logger:      logger.With("component", "github_client"),
		commitLimit: cfg.CommitLimit,
	}, nil
}

// FetchRepository gathers metadata for ref.
//
// The repository record is required: a 404 yields ErrRepoNotFound and any
// other failure ErrFetchFailed. The remaining lookups run concurrently and
// only contribute what they manage to fetch.
func (c *Client) FetchRepository(ctx context.Context, ref domain.RepoRef) (*domain.Repository, error) {
	log := c.logger.With("repo", ref.String())

	repo, _, err := c.gh.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		var ghErr *gh.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrRepoNotFound, ref)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, ref, err)
	}

	result := &domain.Repository{
		Ref:           ref,
		Description:   repo.GetDescription(),
		HTMLURL:       repo.GetHTMLURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		Homepage:      repo.GetHomepage(),
		License:       repo.GetLicense().GetSPDXID(),
		Stars:         repo.GetStargazersCount(),
	}

	// Each goroutine writes a distinct field of result, so no lock is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Readme = c.fetchReadme(gctx, log, ref)
		return nil
	})
	g.Go(func() error {
		result.Package = c.fetchPackage(gctx, log, ref)
		return nil
	})
	g.Go(func() error {
		result.Languages = c.fetchLanguages(gctx, log, ref)
		return nil
	})
	g.Go(func() error {
		result.Topics = c.fetchTopics(gctx, log, ref)
		return nil
	})
	if c.commitLimit > 0 {
		g.Go(func() error {
			result.Commits = c.fetchCommits(gctx, log, ref)
			return nil
		})
	}
	_ = g.Wait()

	log.DebugContext(ctx, "Fetched repository context",
		"has_readme", result.Readme != "",
		"has_package", result.Package != nil,
		"commits", len(result.Commits))

	return result, nil
}

func (c *Client) fetchReadme(ctx context.Context, log *slog.Logger, ref domain.RepoRef) string {
	file, _, err := c.gh.Repositories.GetReadme(ctx, ref.Owner, ref.Name, nil)
	if err != nil {
		log.DebugContext(ctx, "README unavailable", "error", err)
		return ""
	}
	content, err := file.GetContent()
	if err != nil {
		log.DebugContext(ctx, "README could not be decoded", "error", err)
		return ""
	}
	return content
}

func (c *Client) fetchPackage(ctx context.Context, log *slog.Logger, ref domain.RepoRef) *domain.PackageManifest {
	file, _, _, err := c.gh.Repositories.GetContents(ctx, ref.Owner, ref.Name, "package.json", nil)
	if err != nil || file == nil {
		return nil
	}
	content, err := file.GetContent()
	if err != nil {
		log.DebugContext(ctx, "package.json could not be decoded", "error", err)
		return nil
	}

	var manifest domain.PackageManifest
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		log.DebugContext(ctx, "package.json is not valid JSON", "error", err)
		return nil
	}
	return &manifest
}

func (c *Client) fetchLanguages(ctx context.Context, log *slog.Logger, ref domain.RepoRef) []string {
	langs, _, err := c.gh.Repositories.ListLanguages(ctx, ref.Owner, ref.Name)
	if err != nil {
		log.DebugContext(ctx, "Languages unavailable", "error", err)
		return nil
	}

	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if langs[names[i]] != langs[names[j]] {
			return langs[names[i]] > langs[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func (c *Client) fetchTopics(ctx context.Context, log *slog.Logger, ref domain.RepoRef) []string {
	topics, _, err := c.gh.Repositories.ListAllTopics(ctx, ref.Owner, ref.Name)
	if err != nil {
		log.DebugContext(ctx, "Topics unavailable", "error", err)
		return nil
	}
	return topics
}

func (c *Client) fetchCommits(ctx context.Context, log *slog.Logger, ref domain.RepoRef) []string {
	commits, _, err := c.gh.Repositories.ListCommits(ctx, ref.Owner, ref.Name, &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{PerPage: c.commitLimit},
	})
	if err != nil {
		log.DebugContext(ctx, "Commits unavailable", "error", err)
		return nil
	}

	messages := make([]string, 0, len(commits))
	for _, commit := range commits {
		first, _, _ := strings.Cut(commit.GetCommit().GetMessage(), "\n")
		if first = strings.TrimSpace(first); first != "" {
			messages = append(messages, first)
		}
		if len(messages) == c.commitLimit {
			break
		}
	}
	return messages
}
