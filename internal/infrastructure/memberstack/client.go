package memberstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gdugdh24/mentor-directory/internal/config"
	"github.com/gdugdh24/mentor-directory/internal/domain"
)

// Client talks to the Memberstack admin REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.MemberstackConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type updateMemberRequest struct {
	CustomFields map[string]any `json:"customFields"`
}

type memberResponse struct {
	Data map[string]any `json:"data"`
}

// UpdateMember patches the custom fields of a member and returns the member
// record Memberstack sends back. Any failure wraps domain.ErrRemoteService.
func (c *Client) UpdateMember(ctx context.Context, memberID string, customFields map[string]any) (domain.Document, error) {
	if customFields == nil {
		customFields = map[string]any{}
	}
	payload, err := json.Marshal(updateMemberRequest{CustomFields: customFields})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", domain.ErrRemoteService, err)
	}

	endpoint := c.baseURL + "/members/" + url.PathEscape(memberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrRemoteService, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to make request: %v", domain.ErrRemoteService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrRemoteService, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: memberstack returned status %d: %s", domain.ErrRemoteService, resp.StatusCode, truncate(body, 200))
	}

	var out memberResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrRemoteService, err)
	}
	if out.Data == nil {
		return nil, fmt.Errorf("%w: response has no member data", domain.ErrRemoteService)
	}

	return domain.Document(out.Data), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
