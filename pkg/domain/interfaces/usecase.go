package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
)

type UseCase interface {
	ListRepositories(ctx context.Context, principal *model.Principal) ([]*model.RepositorySummary, error)
	ListContainerPackages(ctx context.Context, principal *model.Principal) ([]*model.ContainerPackageSummary, error)
	ListPackageTags(ctx context.Context, principal *model.Principal, owner, pkg string) ([]string, error)
	Deploy(ctx context.Context, principal *model.Principal, req *model.DeployRequest) (*model.DeployResult, error)
}
