package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient IdentityClient

import (
	"context"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
)

// GitHubClient covers the GitHub REST endpoints this system reads, plus the
// workflow-dispatch call. All listing calls fetch a single page of up to 100
// records; further pages are intentionally not followed.
type GitHubClient interface {
	// ListOrgs returns the logins of organizations the token's user belongs to.
	ListOrgs(ctx context.Context, token types.GitHubToken) ([]string, error)

	// ListUserRepos returns repositories where the token holder has owner,
	// collaborator or organization-member affiliation, most recently updated
	// first, mapped with the summary defaulting rules applied.
	ListUserRepos(ctx context.Context, token types.GitHubToken) ([]*model.RepositorySummary, error)

	// GetRepo probes whether owner/repo is reachable with the given token.
	GetRepo(ctx context.Context, token types.GitHubToken, owner, repo string) error

	ListUserPackages(ctx context.Context, token types.GitHubToken) ([]*model.ContainerPackageSummary, error)
	ListOrgPackages(ctx context.Context, token types.GitHubToken, org string) ([]*model.ContainerPackageSummary, error)

	// ListPackageVersionTags returns the container tags of each package
	// version in the API's version order, one tag list per version.
	ListPackageVersionTags(ctx context.Context, token types.GitHubToken, owner, pkg string, userScoped bool) ([][]string, error)

	// DispatchWorkflow issues a workflow-dispatch POST to the CI repository
	// named by cfg. Inputs are string-typed by convention of the target.
	DispatchWorkflow(ctx context.Context, cfg *model.DispatchConfig, inputs map[string]string) error
}

// IdentityClient resolves an inbound session token into a Principal.
// "No session" and "session without a linked GitHub identity" are distinct
// failures (types.ErrNoSession vs types.ErrIdentityUnlinked).
type IdentityClient interface {
	Authenticate(ctx context.Context, sessionToken string) (*model.Principal, error)
}
