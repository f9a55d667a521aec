package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/logging"
)

// Deploy validates and authorizes a deploy request, then triggers the CI
// deploy workflow. The pipeline is strictly linear with no retries:
// validate payload, authorize owner, verify the repository is reachable,
// resolve dispatch config, issue the dispatch. No network call happens
// before validation passes, and once the dispatch is issued there is no
// rollback; dispatch acceptance is the only completion signal observed.
func (x *UseCase) Deploy(ctx context.Context, principal *model.Principal, req *model.DeployRequest) (*model.DeployResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	owners := x.resolveOwners(ctx, principal)
	if !owners.Contains(req.SourceOwner) {
		return nil, goerr.Wrap(types.ErrOwnerForbidden,
			"repository owner is not accessible for the signed-in user",
			goerr.V("owner", req.SourceOwner),
		)
	}

	// Any failure here counts as "not accessible", 404 and 403 alike.
	if err := x.clients.GitHub().GetRepo(ctx, principal.Token, req.SourceOwner, req.SourceRepo); err != nil {
		return nil, goerr.Wrap(types.ErrRepoNotAccessible, "repository probe failed",
			goerr.V("repo", req.SourceOwner+"/"+req.SourceRepo),
			goerr.V("detail", err.Error()),
		)
	}

	cfg := model.ResolveDispatchConfig(x.envLookup)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Workflow dispatch inputs are string-typed by GitHub Actions
	// convention, including the port.
	inputs := map[string]string{
		"app_slug":      req.AppSlug,
		"source_owner":  req.SourceOwner,
		"source_repo":   req.SourceRepo,
		"source_ref":    req.SourceRef,
		"internal_port": strconv.Itoa(req.InternalPort),
	}

	if err := x.clients.GitHub().DispatchWorkflow(ctx, cfg, inputs); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("deploy workflow dispatched",
		slog.String("app_slug", req.AppSlug),
		slog.String("source", req.SourceOwner+"/"+req.SourceRepo),
		slog.String("ref", req.SourceRef),
		slog.Any("dispatch", cfg),
	)

	return &model.DeployResult{
		Status:      "queued",
		WorkflowURL: cfg.WorkflowURL(),
	}, nil
}
