package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	api "github.com/mateim4/archer-capacity-planner/api/v1alpha1"
	"github.com/mateim4/archer-capacity-planner/pkg/requestid"
)

// PlannerClient is an HTTP client for the capacity planner service
type PlannerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPlannerClient(baseURL string, timeout time.Duration) *PlannerClient {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &PlannerClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreatePlan submits the workload and cluster inventory and returns the
// placement report. A report is returned even when some clusters were
// rejected; callers should inspect InvalidClusters.
func (c *PlannerClient) CreatePlan(ctx context.Context, req *api.CapacityPlanRequest) (*api.CapacityPlanReport, error) {
	url := fmt.Sprintf("%s/api/v1/capacity/plan", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-request-id", requestid.Generate())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call planner service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return nil, fmt.Errorf("planner service returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	// A 400 body is either a rejection message or a report carrying
	// rejected clusters. Only the former has a message field.
	var errResp api.Error
	if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Message != "" {
		return nil, fmt.Errorf("planner service rejected the request: %s", errResp.Message)
	}

	var report api.CapacityPlanReport
	if err := json.Unmarshal(bodyBytes, &report); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &report, nil
}

// GetInfo returns the service version information.
func (c *PlannerClient) GetInfo(ctx context.Context) (*api.Info, error) {
	url := fmt.Sprintf("%s/api/v1/info", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call planner service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planner service returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var info api.Info
	if err := json.Unmarshal(bodyBytes, &info); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &info, nil
}

func (c *PlannerClient) HealthCheck(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call planner service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Drain body to enable connection reuse
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("planner service health check returned status %d", resp.StatusCode)
	}

	return nil
}
