package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/utils/logging"
)

// ListRepositories returns up to 100 most-recently-updated repositories the
// principal's token can see, sorted ascending by full name. No owner
// filtering happens here: the API already scopes results to the token
// holder.
func (x *UseCase) ListRepositories(ctx context.Context, principal *model.Principal) ([]*model.RepositorySummary, error) {
	repos, err := x.clients.GitHub().ListUserRepos(ctx, principal.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories",
			goerr.V("login", principal.Login),
		)
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].FullName < repos[j].FullName
	})

	logging.From(ctx).Debug("listed repositories",
		slog.String("login", principal.Login),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}
