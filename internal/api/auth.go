package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/teamops-io/personnel-cli/pkg/errors"
)

// Login exchanges email/password credentials for a bearer token. The login
// endpoint lives at the API root, outside the personnel-management base path.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	status, body, err := c.do(ctx, http.MethodPost, "/login", payload)
	if err != nil {
		return "", errors.WrapAPIError("log in", "login", err)
	}
	if status < 200 || status >= 300 {
		return "", errors.WrapAPIError("log in", "login", errorFromBody(status, body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Token == "" {
		return "", errors.WrapAPIError("log in", "login",
			fmt.Errorf("invalid authentication response"))
	}

	return resp.Token, nil
}
