package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/logging"
)

// ListPackageTags returns the container tags of one package, deduplicated in
// first-seen order. The order follows the API's version ordering (commonly
// most recent first) and is intentionally not sorted: callers rely on "most
// relevant tag first".
//
// The owner check runs before any package read so that a forbidden owner
// cannot learn which packages exist.
func (x *UseCase) ListPackageTags(ctx context.Context, principal *model.Principal, owner, pkg string) ([]string, error) {
	owners := x.resolveOwners(ctx, principal)
	if !owners.Contains(owner) {
		return nil, goerr.Wrap(types.ErrOwnerForbidden, "not allowed to read packages from this owner",
			goerr.V("owner", owner),
		)
	}

	tagLists, err := x.clients.GitHub().ListPackageVersionTags(ctx, principal.Token, owner, pkg, owner == principal.Login)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list package versions",
			goerr.V("owner", owner),
			goerr.V("package", pkg),
		)
	}

	tags := lo.Uniq(lo.Flatten(tagLists))

	logging.From(ctx).Debug("listed package tags",
		slog.String("owner", owner),
		slog.String("package", pkg),
		slog.Int("count", len(tags)),
	)

	return tags, nil
}
