package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/model"
	"portfolio-builder/pkg/generator"
)

type fakeDeployClient struct {
	created   []string
	deleted   []string
	createErr error
	deleteErr error
	result    DeployResult
}

func (c *fakeDeployClient) CreateDeployment(_ context.Context, name string, files generator.FileMap) (DeployResult, error) {
	if c.createErr != nil {
		return DeployResult{}, c.createErr
	}
	c.created = append(c.created, name)
	if c.result.ProjectID == "" {
		return DeployResult{URL: name + "-x1y2.vercel.app", ProjectID: "prj_" + name}, nil
	}
	return c.result, nil
}

func (c *fakeDeployClient) DeleteProject(_ context.Context, projectID string) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.deleted = append(c.deleted, projectID)
	return nil
}

type fakeDeploymentStore struct {
	updates []struct {
		ID        uuid.UUID
		ProjectID string
		Domain    string
	}
	err error
}

func (s *fakeDeploymentStore) UpdateDeployment(_ context.Context, id uuid.UUID, projectID, domain string) error {
	if s.err != nil {
		return s.err
	}
	s.updates = append(s.updates, struct {
		ID        uuid.UUID
		ProjectID string
		Domain    string
	}{id, projectID, domain})
	return nil
}

func deployablePortfolio() *domain.Portfolio {
	m := model.NewContentModel(model.TemplateModern)
	m.Name = "Ada Lovelace"
	return &domain.Portfolio{ID: uuid.New(), UserID: uuid.New(), Content: m}
}

func TestDeployer_FirstDeployCreatesOnly(t *testing.T) {
	client := &fakeDeployClient{}
	store := &fakeDeploymentStore{}
	d := NewDeployer(client, store, NewExporter(nil))

	p := deployablePortfolio()
	res, err := d.Deploy(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, []string{"ada-lovelace"}, client.created)
	assert.Empty(t, client.deleted)
	assert.Equal(t, "prj_ada-lovelace", res.ProjectID)
	assert.Equal(t, res.ProjectID, p.Content.VercelProjectID)
	assert.Equal(t, res.URL, p.Content.VercelDomain)

	require.Len(t, store.updates, 1)
	assert.Equal(t, p.ID, store.updates[0].ID)
	assert.Equal(t, res.ProjectID, store.updates[0].ProjectID)
}

func TestDeployer_RenameDeletesStaleProjectFirst(t *testing.T) {
	client := &fakeDeployClient{}
	store := &fakeDeploymentStore{}
	d := NewDeployer(client, store, NewExporter(nil))

	p := deployablePortfolio()
	p.Content.VercelProjectID = "prj_old"
	p.Content.VercelDomain = "grace-hopper-a1b2.vercel.app"

	_, err := d.Deploy(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, []string{"prj_old"}, client.deleted)
	assert.Equal(t, []string{"ada-lovelace"}, client.created)
	// cleared metadata persisted between the two steps, then the new one
	require.Len(t, store.updates, 2)
	assert.Equal(t, "", store.updates[0].ProjectID)
	assert.Equal(t, "prj_ada-lovelace", store.updates[1].ProjectID)
}

func TestDeployer_UnchangedNameSkipsDelete(t *testing.T) {
	client := &fakeDeployClient{}
	d := NewDeployer(client, &fakeDeploymentStore{}, NewExporter(nil))

	p := deployablePortfolio()
	p.Content.VercelProjectID = "prj_ada-lovelace"
	p.Content.VercelDomain = "ada-lovelace-a1b2.vercel.app"

	_, err := d.Deploy(context.Background(), p)
	require.NoError(t, err)
	assert.Empty(t, client.deleted)
}

func TestDeployer_DeleteFailureReportsStep(t *testing.T) {
	client := &fakeDeployClient{deleteErr: errors.New("provider down")}
	d := NewDeployer(client, &fakeDeploymentStore{}, NewExporter(nil))

	p := deployablePortfolio()
	p.Content.VercelProjectID = "prj_old"
	p.Content.VercelDomain = "grace-hopper-a1b2.vercel.app"

	_, err := d.Deploy(context.Background(), p)
	var step *DeployStepError
	require.ErrorAs(t, err, &step)
	assert.Equal(t, StepDeleteStale, step.Step)
	// nothing was created and the old metadata is untouched
	assert.Empty(t, client.created)
	assert.Equal(t, "prj_old", p.Content.VercelProjectID)
}

func TestDeployer_CreateFailureAfterDeleteLeavesClearedMetadata(t *testing.T) {
	client := &fakeDeployClient{createErr: errors.New("quota exceeded")}
	store := &fakeDeploymentStore{}
	d := NewDeployer(client, store, NewExporter(nil))

	p := deployablePortfolio()
	p.Content.VercelProjectID = "prj_old"
	p.Content.VercelDomain = "grace-hopper-a1b2.vercel.app"

	_, err := d.Deploy(context.Background(), p)
	var step *DeployStepError
	require.ErrorAs(t, err, &step)
	assert.Equal(t, StepCreate, step.Step)

	// the stale project is gone and the record says so: retrying is a
	// plain create
	assert.Equal(t, []string{"prj_old"}, client.deleted)
	assert.Equal(t, "", p.Content.VercelProjectID)
	require.Len(t, store.updates, 1)
	assert.Equal(t, "", store.updates[0].ProjectID)
}

func TestDeployer_PersistFailureStillReturnsDeployment(t *testing.T) {
	client := &fakeDeployClient{}
	store := &fakeDeploymentStore{err: errors.New("db down")}
	d := NewDeployer(client, store, NewExporter(nil))

	p := deployablePortfolio()
	res, err := d.Deploy(context.Background(), p)

	var step *DeployStepError
	require.ErrorAs(t, err, &step)
	assert.Equal(t, StepPersist, step.Step)
	assert.NotEmpty(t, res.ProjectID, "the deployment is live even though persisting failed")
}

func TestDeployer_UnknownTemplateFailsBeforeAnyProviderCall(t *testing.T) {
	client := &fakeDeployClient{}
	d := NewDeployer(client, &fakeDeploymentStore{}, NewExporter(nil))

	p := deployablePortfolio()
	p.Content.Template = "retro"

	_, err := d.Deploy(context.Background(), p)
	require.Error(t, err)
	assert.Empty(t, client.created)
	assert.Empty(t, client.deleted)
}
