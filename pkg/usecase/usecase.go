package usecase

import (
	"os"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/interfaces"
	"github.com/oskaripessinen/vps-container-orchestrator/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	// envLookup feeds dispatch config resolution. Overridable for tests.
	envLookup func(string) string
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithEnvLookup(lookup func(string) string) Option {
	return func(x *UseCase) {
		x.envLookup = lookup
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:   clients,
		envLookup: os.Getenv,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
