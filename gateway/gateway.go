// Package gateway is the HTTP client for the platform gateway sidecar,
// the process that holds the actual chat-platform connection. It serves
// live invite and member state and performs role grants and channel
// messages on our behalf.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

// Client talks to the platform gateway. It implements the tracker's
// LiveStateProvider, GrantActuator and Messenger interfaces.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a Client for the gateway at baseURL
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchInvites returns the live invite list for a space
func (c *Client) FetchInvites(ctx context.Context, spaceID string) ([]models.Invite, error) {
	var invites []models.Invite
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/spaces/%s/invites", spaceID), nil, &invites)
	if err != nil {
		return nil, err
	}
	return invites, nil
}

// FetchMembers returns the live member list for a space
func (c *Client) FetchMembers(ctx context.Context, spaceID string) ([]models.Member, error) {
	var members []models.Member
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/spaces/%s/members", spaceID), nil, &members)
	if err != nil {
		return nil, err
	}
	return members, nil
}

// GrantRole assigns a role to a member. The gateway treats an
// already-held role as a no-op, so replays are safe.
func (c *Client) GrantRole(ctx context.Context, spaceID, userID, grantID string) error {
	path := fmt.Sprintf("/spaces/%s/members/%s/roles/%s", spaceID, userID, grantID)
	return c.do(ctx, http.MethodPut, path, nil, nil)
}

// SendWelcome posts a message to a space channel
func (c *Client) SendWelcome(ctx context.Context, spaceID, channelID, text string) error {
	body := map[string]string{"content": text}
	path := fmt.Sprintf("/spaces/%s/channels/%s/messages", spaceID, channelID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway returned status %d for %s %s", resp.StatusCode, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}
	return nil
}
