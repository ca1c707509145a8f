// Package client fetches customer records from the dashboard API.
package client

import (
	"context"
	"customer-dashboard/internal/domain/customer"
	"customer-dashboard/internal/pkg/apperrors"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
	// Origin is sent as the Origin header so the API's CORS allow-list
	// treats the client like the browser dashboard.
	Origin string
}

type CustomerClient struct {
	baseURL    string
	origin     string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *CustomerClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		origin:     cfg.Origin,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "CustomerClient"),
	}
}

// ListCustomers performs GET /customers. Every failure, including a non-2xx
// status, is reported as apperrors.ErrNetworkFailure.
func (c *CustomerClient) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	url := c.baseURL + "/customers"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.WrapNetworkError(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
	}

	c.logger.DebugContext(ctx, "Fetching customers", slog.String("url", url))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.WrapNetworkError(err, "failed to send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.WrapNetworkError(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.WrapNetworkError(
			fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body))),
			"request failed",
		)
	}

	var customers []*customer.Customer
	if err := json.Unmarshal(body, &customers); err != nil {
		return nil, apperrors.WrapNetworkError(err, "failed to decode response")
	}
	if customers == nil {
		customers = make([]*customer.Customer, 0)
	}
	for i, cust := range customers {
		if cust == nil {
			return nil, apperrors.WrapNetworkError(fmt.Errorf("element %d is null", i), "failed to decode response")
		}
	}

	c.logger.DebugContext(ctx, "Fetched customers", slog.Int("count", len(customers)))
	return customers, nil
}
