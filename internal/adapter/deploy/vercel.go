// Package deploy implements the deployment collaborator client. The
// provider accepts a file map keyed by relative path plus a project name,
// returns a live URL and an opaque project identifier, and supports
// delete-by-identifier.
package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"portfolio-builder/internal/usecase"
	"portfolio-builder/pkg/generator"
)

// Config captures the subset of the hosting API behaviour we need.
type Config struct {
	BaseURL    string
	Token      string
	TeamID     string
	Timeout    time.Duration
	RetryLimit int
	Client     *http.Client
}

type Client struct {
	baseURL    string
	token      string
	teamID     string
	retryLimit int
	client     *http.Client
}

// NewClient builds a hosting API client. Callers should pass a validated
// config.
func NewClient(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("deploy token is required")
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = "https://api.vercel.com"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	retries := cfg.RetryLimit
	if retries < 0 {
		retries = 0
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    base,
		token:      token,
		teamID:     strings.TrimSpace(cfg.TeamID),
		retryLimit: retries,
		client:     hc,
	}, nil
}

type deploymentFile struct {
	File string `json:"file"`
	Data string `json:"data"`
}

type createDeploymentRequest struct {
	Name   string           `json:"name"`
	Files  []deploymentFile `json:"files"`
	Target string           `json:"target"`
}

type createDeploymentResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	ProjectID string `json:"projectId"`
}

// CreateDeployment uploads the file map under the given project name and
// returns the resulting URL and project identifier.
func (c *Client) CreateDeployment(ctx context.Context, name string, files generator.FileMap) (usecase.DeployResult, error) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	req := createDeploymentRequest{Name: name, Target: "production"}
	for _, p := range paths {
		req.Files = append(req.Files, deploymentFile{File: p, Data: files[p]})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return usecase.DeployResult{}, fmt.Errorf("encode deployment: %w", err)
	}

	var resp createDeploymentResponse
	if err := c.do(ctx, http.MethodPost, "/v13/deployments", body, &resp); err != nil {
		return usecase.DeployResult{}, err
	}
	if resp.URL == "" || resp.ProjectID == "" {
		return usecase.DeployResult{}, fmt.Errorf("provider returned incomplete deployment: id=%q url=%q", resp.ProjectID, resp.URL)
	}
	return usecase.DeployResult{URL: resp.URL, ProjectID: resp.ProjectID}, nil
}

// DeleteProject removes a project by its opaque identifier. A 404 is
// treated as success so a retried delete stays idempotent.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	if strings.TrimSpace(projectID) == "" {
		return errors.New("project id is required")
	}
	return c.do(ctx, http.MethodDelete, "/v9/projects/"+url.PathEscape(projectID), nil, nil)
}

// do issues one API call with auth and retry on transient failures.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	u := c.baseURL + path
	if c.teamID != "" {
		u += "?teamId=" + url.QueryEscape(c.teamID)
	}

	attempts := c.retryLimit + 1
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(time.Duration(i) * 500 * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		switch {
		case resp.StatusCode == http.StatusNotFound && method == http.MethodDelete:
			return nil
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("provider %s %s: status %d", method, path, resp.StatusCode)
			continue
		case resp.StatusCode >= 400:
			return fmt.Errorf("provider %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(respBody)))
		}

		if out != nil {
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("decode provider response: %w", err)
			}
		}
		return nil
	}
	return lastErr
}
