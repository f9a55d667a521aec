package githubapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/interfaces"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/logging"
)

// perPage is the page size of every listing call. Only the first page is
// fetched; accounts with more than 100 records per listing are a known
// scale limit of this control surface.
const perPage = 100

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client)

// WithBaseURL points the client at a different API root, used by tests to
// target a local server. The URL must end with a trailing slash.
func WithBaseURL(raw string) Option {
	return func(x *Client) {
		if u, err := url.Parse(raw); err == nil {
			x.baseURL = u
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(options ...Option) *Client {
	client := &Client{}
	for _, opt := range options {
		opt(client)
	}
	return client
}

// newAPIClient builds a go-github client authenticated with the given
// bearer token. Clients are built per call: tokens are request-scoped and
// nothing is shared between requests.
func (x *Client) newAPIClient(ctx context.Context, token string) *github.Client {
	if x.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, x.httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

// wrapAPIError normalizes a failed GitHub API call into an error carrying
// the endpoint, the HTTP status and the token's granted OAuth scopes. The
// scopes come from the X-OAuth-Scopes response header and default to
// "unknown" when the header is absent.
func wrapAPIError(err error, resp *github.Response, endpoint string) error {
	scopes := "unknown"
	statusCode := 0
	if resp != nil {
		if v := resp.Header.Get("X-OAuth-Scopes"); v != "" {
			scopes = v
		}
		statusCode = resp.StatusCode
	}
	return goerr.Wrap(err, "github api request failed",
		goerr.V("endpoint", endpoint),
		goerr.V("status_code", statusCode),
		goerr.V("scopes", scopes),
	)
}

func (x *Client) ListOrgs(ctx context.Context, token types.GitHubToken) ([]string, error) {
	client := x.newAPIClient(ctx, string(token))

	orgs, resp, err := client.Organizations.List(ctx, "", &github.ListOptions{PerPage: perPage})
	if err != nil {
		return nil, wrapAPIError(err, resp, "/user/orgs")
	}

	logins := make([]string, 0, len(orgs))
	for _, org := range orgs {
		if login := org.GetLogin(); login != "" {
			logins = append(logins, login)
		}
	}

	return logins, nil
}

func (x *Client) ListUserRepos(ctx context.Context, token types.GitHubToken) ([]*model.RepositorySummary, error) {
	client := x.newAPIClient(ctx, string(token))

	repos, resp, err := client.Repositories.List(ctx, "", &github.RepositoryListOptions{
		Sort:        "updated",
		Affiliation: "owner,collaborator,organization_member",
		ListOptions: github.ListOptions{PerPage: perPage},
	})
	if err != nil {
		return nil, wrapAPIError(err, resp, "/user/repos")
	}

	summaries := make([]*model.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, mapRepository(repo))
	}

	return summaries, nil
}

func (x *Client) GetRepo(ctx context.Context, token types.GitHubToken, owner, repo string) error {
	client := x.newAPIClient(ctx, string(token))

	_, resp, err := client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return wrapAPIError(err, resp, "/repos/"+owner+"/"+repo)
	}

	return nil
}

func containerPackageOptions() *github.PackageListOptions {
	return &github.PackageListOptions{
		PackageType: github.String("container"),
		ListOptions: github.ListOptions{PerPage: perPage},
	}
}

func (x *Client) ListUserPackages(ctx context.Context, token types.GitHubToken) ([]*model.ContainerPackageSummary, error) {
	client := x.newAPIClient(ctx, string(token))

	packages, resp, err := client.Users.ListPackages(ctx, "", containerPackageOptions())
	if err != nil {
		return nil, wrapAPIError(err, resp, "/user/packages")
	}

	return mapPackages(packages, ""), nil
}

func (x *Client) ListOrgPackages(ctx context.Context, token types.GitHubToken, org string) ([]*model.ContainerPackageSummary, error) {
	client := x.newAPIClient(ctx, string(token))

	packages, resp, err := client.Organizations.ListPackages(ctx, org, containerPackageOptions())
	if err != nil {
		return nil, wrapAPIError(err, resp, "/orgs/"+org+"/packages")
	}

	return mapPackages(packages, org), nil
}

func (x *Client) ListPackageVersionTags(ctx context.Context, token types.GitHubToken, owner, pkg string, userScoped bool) ([][]string, error) {
	client := x.newAPIClient(ctx, string(token))

	var (
		versions []*github.PackageVersion
		resp     *github.Response
		err      error
		endpoint string
	)

	opts := containerPackageOptions()
	if userScoped {
		endpoint = "/user/packages/container/" + pkg + "/versions"
		versions, resp, err = client.Users.PackageGetAllVersions(ctx, "", "container", pkg, opts)
	} else {
		endpoint = "/orgs/" + owner + "/packages/container/" + pkg + "/versions"
		versions, resp, err = client.Organizations.PackageGetAllVersions(ctx, owner, "container", pkg, opts)
	}
	if err != nil {
		return nil, wrapAPIError(err, resp, endpoint)
	}

	tagLists := make([][]string, 0, len(versions))
	for _, version := range versions {
		tagLists = append(tagLists, version.GetMetadata().GetContainer().Tags)
	}

	return tagLists, nil
}

func (x *Client) DispatchWorkflow(ctx context.Context, cfg *model.DispatchConfig, inputs map[string]string) error {
	client := x.newAPIClient(ctx, string(cfg.Token))

	dispatchInputs := make(map[string]interface{}, len(inputs))
	for k, v := range inputs {
		dispatchInputs[k] = v
	}

	logging.From(ctx).Info("dispatching workflow",
		slog.Any("config", cfg),
		slog.Any("inputs", inputs),
	)

	resp, err := client.Actions.CreateWorkflowDispatchEventByFileName(ctx,
		cfg.RepoOwner, cfg.RepoName, cfg.WorkflowFile,
		github.CreateWorkflowDispatchEventRequest{
			Ref:    cfg.WorkflowRef,
			Inputs: dispatchInputs,
		},
	)
	if err != nil {
		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}
		return goerr.Wrap(types.ErrDispatchRejected, "workflow dispatch request failed",
			goerr.V("workflow", cfg.WorkflowFile),
			goerr.V("status_code", statusCode),
			goerr.V("detail", err.Error()),
		)
	}

	return nil
}

func mapRepository(repo *github.Repository) *model.RepositorySummary {
	owner := repo.GetOwner().GetLogin()
	if owner == "" {
		owner = "unknown"
	}

	visibility := repo.GetVisibility()
	if visibility == "" {
		if repo.GetPrivate() {
			visibility = "private"
		} else {
			visibility = "public"
		}
	}

	defaultBranch := repo.GetDefaultBranch()
	if defaultBranch == "" {
		defaultBranch = "main"
	}

	summary := &model.RepositorySummary{
		Name:          repo.GetName(),
		Owner:         owner,
		FullName:      repo.GetFullName(),
		Private:       repo.GetPrivate(),
		Visibility:    visibility,
		DefaultBranch: defaultBranch,
	}

	if repo.PushedAt != nil {
		t := repo.PushedAt.Time
		summary.PushedAt = &t
	} else if repo.UpdatedAt != nil {
		t := repo.UpdatedAt.Time
		summary.PushedAt = &t
	}

	return summary
}

func mapPackages(packages []*github.Package, fallbackOwner string) []*model.ContainerPackageSummary {
	summaries := make([]*model.ContainerPackageSummary, 0, len(packages))
	for _, pkg := range packages {
		owner := pkg.GetOwner().GetLogin()
		if owner == "" {
			owner = fallbackOwner
		}
		summaries = append(summaries, &model.ContainerPackageSummary{
			Name:       pkg.GetName(),
			Visibility: pkg.GetVisibility(),
			Owner:      owner,
		})
	}
	return summaries
}
