package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"portfolio-builder/internal/domain"
	"portfolio-builder/pkg/generator"
)

// Deploy steps, reported on partial failure so the user knows what to
// retry.
const (
	StepDeleteStale = "delete-stale"
	StepCreate      = "create"
	StepPersist     = "persist"
)

// DeployStepError wraps a failure with the pipeline step it happened in.
// Replacing a renamed deployment is two sequential provider calls with no
// rollback; the step name makes each independently retriable.
type DeployStepError struct {
	Step string
	Err  error
}

func (e *DeployStepError) Error() string {
	return fmt.Sprintf("deploy step %s: %v", e.Step, e.Err)
}

func (e *DeployStepError) Unwrap() error { return e.Err }

// Deployer pushes a generated site to the hosting provider and records
// the resulting project id and domain on the portfolio.
type Deployer struct {
	client   DeployClient
	store    DeploymentStore
	exporter *Exporter
	log      *logrus.Entry
}

func NewDeployer(client DeployClient, store DeploymentStore, exporter *Exporter) *Deployer {
	return &Deployer{
		client:   client,
		store:    store,
		exporter: exporter,
		log:      logrus.WithField("component", "deployer"),
	}
}

// staleProject reports whether p carries a deployment whose name no
// longer matches the current project slug. The provider keys projects by
// name, so a rename needs the old project deleted first.
func staleProject(p *domain.Portfolio) bool {
	c := p.Content
	if c.VercelProjectID == "" || c.VercelDomain == "" {
		return false
	}
	return !strings.HasPrefix(c.VercelDomain, generator.ProjectName(c)+".") &&
		!strings.HasPrefix(c.VercelDomain, generator.ProjectName(c)+"-")
}

// Deploy generates the site for p and ships it. On success p.Content's
// deployment metadata is updated in place and persisted. On failure the
// returned error is a *DeployStepError naming the failed step; the
// portfolio content itself is never corrupted.
func (d *Deployer) Deploy(ctx context.Context, p *domain.Portfolio) (DeployResult, error) {
	name := generator.ProjectName(p.Content)
	log := d.log.WithFields(logrus.Fields{"portfolio": p.ID, "project": name})

	files, err := d.exporter.Files(ctx, p.Content)
	if err != nil {
		return DeployResult{}, &DeployStepError{Step: StepCreate, Err: err}
	}

	// A renamed portfolio leaves a provider project under the old name.
	// Delete it first; the two steps are sequential and there is no
	// rollback, so persist the cleared id immediately after the delete
	// succeeds to keep the record honest if the create step fails.
	if staleProject(p) {
		log.WithField("stale_project", p.Content.VercelProjectID).Info("deleting stale deployment")
		if err := d.client.DeleteProject(ctx, p.Content.VercelProjectID); err != nil {
			return DeployResult{}, &DeployStepError{Step: StepDeleteStale, Err: err}
		}
		p.Content.VercelProjectID = ""
		p.Content.VercelDomain = ""
		if d.store != nil {
			if err := d.store.UpdateDeployment(ctx, p.ID, "", ""); err != nil {
				log.WithError(err).Warn("failed to persist cleared deployment metadata")
			}
		}
	}

	res, err := d.client.CreateDeployment(ctx, name, files)
	if err != nil {
		return DeployResult{}, &DeployStepError{Step: StepCreate, Err: err}
	}

	p.Content.VercelProjectID = res.ProjectID
	p.Content.VercelDomain = res.URL

	if d.store != nil {
		if err := d.store.UpdateDeployment(ctx, p.ID, res.ProjectID, res.URL); err != nil {
			// the deployment is live; report the persist step so a retry
			// just rewrites metadata
			return res, &DeployStepError{Step: StepPersist, Err: err}
		}
	}

	log.WithField("url", res.URL).Info("site deployed")
	return res, nil
}
