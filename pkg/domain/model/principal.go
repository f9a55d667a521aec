package model

import (
	"log/slog"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
)

// Principal is the authenticated user of one request: the identity-provider
// user ID plus the linked GitHub login and OAuth token. It is constructed per
// request and never outlives it.
type Principal struct {
	UserID string
	Login  string
	Token  types.GitHubToken `masq:"secret"`
}

func (x *Principal) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user_id", x.UserID),
		slog.String("login", x.Login),
		slog.Int("token.len", len(x.Token)),
	)
}
