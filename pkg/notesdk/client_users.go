package notesdk

import (
	"context"
	"net/http"
)

// ListUsers returns every user.
func (c *SDKClient) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users", nil, nil)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *SDKClient) CreateUser(ctx context.Context, req CreateUserRequest) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/users", req, nil)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusCreated); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *SDKClient) UpdateUser(ctx context.Context, req UpdateUserRequest) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/users", req, nil)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteUser deletes the user and returns the server's confirmation string.
func (c *SDKClient) DeleteUser(ctx context.Context, id string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/users", DeleteRequest{ID: id}, nil)
	if err != nil {
		return "", err
	}

	var confirmation string
	if err := decodeJSON(resp, &confirmation, http.StatusOK); err != nil {
		return "", err
	}
	return confirmation, nil
}
