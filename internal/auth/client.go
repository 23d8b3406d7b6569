// Package auth wraps the user service: login, registration and profile
// retrieval.
package auth

import (
	"context"
	"net/url"
	"time"

	"github.com/u-share/sortflow/internal/api"
	"github.com/u-share/sortflow/internal/model"
)

const requestTimeout = 10 * time.Second

// Client calls the user service through the shared adapter.
type Client struct {
	api *api.Client
}

// NewClient creates an auth client on top of the shared adapter.
func NewClient(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// Login exchanges credentials for an access token. The token endpoint takes
// form-encoded fields, not JSON.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (string, error) {
	const operation = "login"

	if creds.Username == "" {
		return "", api.ValidationError(operation, "username is required")
	}
	if creds.Password == "" {
		return "", api.ValidationError(operation, "password is required")
	}

	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.api.PostForm(ctx, "/token", form, &resp, api.WithTimeout(requestTimeout)); err != nil {
		return "", api.Normalize(operation, err)
	}
	if resp.AccessToken == "" {
		return "", api.SemanticError(operation, "login response did not include an access token")
	}
	return resp.AccessToken, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, creds model.Credentials) (model.User, error) {
	const operation = "register"

	if creds.Username == "" {
		return model.User{}, api.ValidationError(operation, "username is required")
	}
	if creds.Password == "" {
		return model.User{}, api.ValidationError(operation, "password is required")
	}

	body := map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	}
	var user model.User
	if err := c.api.PostJSON(ctx, "/users/", body, &user, api.WithTimeout(requestTimeout)); err != nil {
		return model.User{}, api.Normalize(operation, err)
	}
	return user, nil
}

// Profile fetches the current user. The adapter attaches the bearer token.
func (c *Client) Profile(ctx context.Context) (model.User, error) {
	const operation = "fetch profile"

	var user model.User
	if err := c.api.GetJSON(ctx, "/users/me/", nil, &user, api.WithTimeout(requestTimeout)); err != nil {
		return model.User{}, api.Normalize(operation, err)
	}
	return user, nil
}
