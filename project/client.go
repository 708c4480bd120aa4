package project

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/dummyhome/controller/schema"
	"io"
	"net/http"
)

type TransportError string

func (e TransportError) Error() string {
	return string(e)
}

const (
	ErrUnexpectedStatus = TransportError("unexpected status from remote endpoint")
	ErrRemoteRejected   = TransportError("remote endpoint did not acknowledge the project file")
)

// Client talks to the remote building-automation project endpoint. It
// moves bytes only, tolerant decoding of fetched data is the schema
// package's job.
type Client struct {
	BaseURL    string
	ProjectID  string
	HTTPClient *http.Client
}

type statusReply struct {
	Code string `json:"code"`
}

// Fetch retrieves the raw remote project file.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	url := fmt.Sprintf("%s/project/%s/json", c.BaseURL, c.ProjectID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to construct fetch request: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file body: %w", err)
	}

	return body, nil
}

// Put uploads a project file, succeeding only when the endpoint
// replies with code "OK".
func (c *Client) Put(ctx context.Context, file schema.ProjectFile) error {
	payload, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal project file: %w", err)
	}

	url := fmt.Sprintf("%s/project/%s", c.BaseURL, c.ProjectID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to construct upload request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload project file: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read endpoint reply: %w", err)
	}

	var reply statusReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return fmt.Errorf("failed to parse endpoint reply: %w", err)
	}

	if reply.Code != "OK" {
		return fmt.Errorf("%w: code %q", ErrRemoteRejected, reply.Code)
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	return http.DefaultClient
}
