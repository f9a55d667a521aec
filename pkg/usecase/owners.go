package usecase

import (
	"context"
	"log/slog"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/logging"
)

// resolveOwners derives the set of owners the principal may act upon: their
// own login plus the organizations the token can see. This is the single
// authorization gate used before any cross-owner read or deploy.
//
// The org lookup fetches one page of up to 100 organizations. A failed
// lookup degrades to the singleton set of the principal's own login instead
// of failing the request; the failure is still logged so "no orgs" and
// "org lookup failed" stay distinguishable in operation.
func (x *UseCase) resolveOwners(ctx context.Context, principal *model.Principal) *model.OwnerSet {
	owners := model.NewOwnerSet(principal.Login)

	orgs, err := x.clients.GitHub().ListOrgs(ctx, principal.Token)
	if err != nil {
		logging.From(ctx).Warn("failed to list organizations, degrading to own login only",
			slog.Any("principal", principal),
			slog.Any("error", err),
		)
		return owners
	}

	for _, org := range orgs {
		owners.Add(org)
	}

	return owners
}
