package identityprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"event-checkout/internal/domain/identity"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"
)

// Client provisions identities in the external identity service.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

var _ commands.IdentityProvisioner = (*Client)(nil)

type provisionRequest struct {
	Email   string           `json:"email"`
	Name    string           `json:"name"`
	Role    string           `json:"role"`
	Profile identity.Profile `json:"profile"`
}

type provisionResponse struct {
	ID string `json:"id"`
}

// Provision returns the provider's id for the new identity, or
// commands.ErrIdentityAlreadyExists when the email is taken.
func (c *Client) Provision(ctx context.Context, req commands.ProvisionRequest) (string, error) {
	body, err := json.Marshal(provisionRequest{
		Email:   req.Email,
		Name:    req.Name,
		Role:    req.Role,
		Profile: req.Profile,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode provision request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/identities", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to create provision request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", errs.Wrap(err, "identity provider unreachable")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
	case http.StatusConflict:
		return "", commands.ErrIdentityAlreadyExists
	default:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errs.Newf("identity provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var out provisionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "failed to decode provision response")
	}
	if out.ID == "" {
		return "", errs.Newf("identity provider returned no id for %s", req.Email)
	}
	return out.ID, nil
}
