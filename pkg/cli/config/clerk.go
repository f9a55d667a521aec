package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/types"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/infra/clerkauth"
)

type Clerk struct {
	secretKey types.ClerkSecretKey `masq:"secret"`
}

func (x *Clerk) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "clerk-secret-key",
			Usage:       "Clerk secret key for session verification",
			Category:    "Clerk",
			Destination: (*string)(&x.secretKey),
			Sources:     cli.EnvVars("ORCHESTRATOR_CLERK_SECRET_KEY"),
			Required:    true,
		},
	}
}

func (x Clerk) New() (*clerkauth.Client, error) {
	return clerkauth.New(x.secretKey)
}

func (x Clerk) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("secretKey.len", len(x.secretKey)),
	)
}
