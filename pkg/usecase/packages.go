package usecase

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/logging"
)

// ListContainerPackages aggregates container packages across every owner the
// principal can access. User-scoped packages are fetched first and must
// succeed; per-organization fetches run concurrently and a failed
// organization contributes nothing instead of failing the request.
//
// Results are merged by owner/name key with last-writer-wins semantics. The
// merge walks user packages first, then organizations in OwnerSet order
// regardless of fetch completion order, so collisions resolve the same way
// on every run.
func (x *UseCase) ListContainerPackages(ctx context.Context, principal *model.Principal) ([]*model.ContainerPackageSummary, error) {
	owners := x.resolveOwners(ctx, principal)

	userPkgs, err := x.clients.GitHub().ListUserPackages(ctx, principal.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list user packages",
			goerr.V("login", principal.Login),
		)
	}
	for _, pkg := range userPkgs {
		if pkg.Owner == "" {
			pkg.Owner = principal.Login
		}
	}

	orgs := lo.Filter(owners.Logins(), func(login string, _ int) bool {
		return login != principal.Login
	})

	// Fetches run in parallel but land in submission-order slots, which
	// keeps the merge below deterministic.
	results := make([]mo.Result[[]*model.ContainerPackageSummary], len(orgs))
	var wg sync.WaitGroup
	for i, org := range orgs {
		wg.Add(1)
		go func(i int, org string) {
			defer wg.Done()
			pkgs, err := x.clients.GitHub().ListOrgPackages(ctx, principal.Token, org)
			if err != nil {
				results[i] = mo.Err[[]*model.ContainerPackageSummary](err)
				return
			}
			results[i] = mo.Ok(pkgs)
		}(i, org)
	}
	wg.Wait()

	merged := make(map[string]*model.ContainerPackageSummary, len(userPkgs))
	for _, pkg := range userPkgs {
		merged[pkg.Key()] = pkg
	}

	for i, result := range results {
		pkgs, err := result.Get()
		if err != nil {
			logging.From(ctx).Warn("failed to list organization packages, skipping",
				slog.String("org", orgs[i]),
				slog.Any("error", err),
			)
			continue
		}
		for _, pkg := range pkgs {
			if pkg.Owner == "" {
				pkg.Owner = orgs[i]
			}
			merged[pkg.Key()] = pkg
		}
	}

	keys := lo.Keys(merged)
	sort.Strings(keys)

	packages := make([]*model.ContainerPackageSummary, 0, len(keys))
	for _, key := range keys {
		packages = append(packages, merged[key])
	}

	logging.From(ctx).Debug("listed container packages",
		slog.String("login", principal.Login),
		slog.Int("owners", owners.Len()),
		slog.Int("count", len(packages)),
	)

	return packages, nil
}
