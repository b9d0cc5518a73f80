package usecase

import (
	"context"

	"github.com/google/uuid"

	"portfolio-builder/pkg/generator"
)

// Interfaces are declared here, at the consumer, so the pipelines can be
// exercised against fakes without the real adapters.

// SiteCache holds generated file maps keyed by a content hash. Both
// methods are best-effort: a miss or a failed store never fails an
// export.
type SiteCache interface {
	Get(ctx context.Context, key string) (generator.FileMap, bool)
	Set(ctx context.Context, key string, files generator.FileMap)
}

// DeployResult is what the hosting provider hands back for a deployment.
type DeployResult struct {
	URL       string
	ProjectID string
}

// DeployClient is the deployment collaborator: it accepts a file map
// keyed by relative path plus a project name, and supports deleting a
// project by its opaque identifier.
type DeployClient interface {
	CreateDeployment(ctx context.Context, name string, files generator.FileMap) (DeployResult, error)
	DeleteProject(ctx context.Context, projectID string) error
}

// DeploymentStore persists deployment metadata back onto a portfolio.
type DeploymentStore interface {
	UpdateDeployment(ctx context.Context, id uuid.UUID, projectID, domain string) error
}
