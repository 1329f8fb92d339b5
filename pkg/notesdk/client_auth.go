package notesdk

import (
	"context"
	"net/http"
)

// Login exchanges credentials for an access token. Use WithToken to attach
// it to subsequent requests.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login",
		LoginRequest{Username: username, Password: password}, nil)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
