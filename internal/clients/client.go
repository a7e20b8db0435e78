package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// envelope is the response wrapper used by the backend for every endpoint.
type envelope struct {
	Status  string          `json:"Status"`
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"Data,omitempty"`
}

// baseClient carries the pieces shared by the product, category and dashboard
// clients.
type baseClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
	name    string
}

func newBaseClient(baseURL string, timeout time.Duration, logger *logrus.Logger, name string) baseClient {
	return baseClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		log:    logger,
		name:   name,
	}
}

// doJSON issues a request with an optional JSON body and decodes the backend
// envelope into out (when out is non-nil). Non-2xx statuses become errors
// carrying the backend's message so the caller can surface the likely cause.
func (c *baseClient) doJSON(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			c.log.Errorf("%s: Failed to marshal request body for %s %s: %v", c.name, method, url, err)
			return fmt.Errorf("failed to prepare request data: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.log.Errorf("%s: Failed to create %s request for %s: %v", c.name, method, url, err)
		return fmt.Errorf("failed to create backend request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("%s: Failed to execute %s request for %s: %v", c.name, method, url, err)
		return fmt.Errorf("failed to communicate with backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, _ := io.ReadAll(resp.Body)
		msg := backendMessage(bodyBytes)
		c.log.Warnf("%s: %s %s failed with status %d: %s", c.name, method, url, resp.StatusCode, msg)
		if msg != "" {
			return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Errorf("%s: Failed to decode response for %s %s: %v", c.name, method, url, err)
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		c.log.Errorf("%s: Failed to unmarshal response data for %s %s: %v", c.name, method, url, err)
		return fmt.Errorf("failed to decode backend response data: %w", err)
	}
	return nil
}

// backendMessage pulls the Message field out of an error envelope. Falls back
// to the raw body when the backend did not wrap the error.
func backendMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return string(bytes.TrimSpace(body))
}
