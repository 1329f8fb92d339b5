package notesdk

import (
	"context"
	"net/http"
)

// ListNotes returns every note with its owner's username.
func (c *SDKClient) ListNotes(ctx context.Context) ([]Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/notes", nil, nil)
	if err != nil {
		return nil, err
	}

	var notes []Note
	if err := decodeJSON(resp, &notes, http.StatusOK); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *SDKClient) CreateNote(ctx context.Context, req CreateNoteRequest) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/notes", req, nil)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusCreated); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *SDKClient) UpdateNote(ctx context.Context, req UpdateNoteRequest) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/notes", req, nil)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteNote deletes the note and returns the server's confirmation string.
func (c *SDKClient) DeleteNote(ctx context.Context, id string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/notes", DeleteRequest{ID: id}, nil)
	if err != nil {
		return "", err
	}

	var confirmation string
	if err := decodeJSON(resp, &confirmation, http.StatusOK); err != nil {
		return "", err
	}
	return confirmation, nil
}
